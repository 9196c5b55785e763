// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build !debug

package bdd

func initDebugLog(b *BDD) {}

func (b *BDD) debugf(format string, args ...interface{}) {}
