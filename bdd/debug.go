// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug

package bdd

import (
	"log"
	"os"
)

func initDebugLog(b *BDD) {
	b.logger = log.New(os.Stdout, "bdd: ", log.Lmicroseconds)
}

func (b *BDD) debugf(format string, args ...interface{}) {
	b.logger.Printf(format, args...)
}
