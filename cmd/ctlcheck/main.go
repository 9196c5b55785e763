package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"ctlcheck/checker"
	"ctlcheck/ctl"
	"ctlcheck/ts"
)

var cli struct {
	File string `arg:"" help:"Input file (states/init/transitions/labels/formula)."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("ctlcheck"),
		kong.Description("Evaluate a CTL formula against a transition system read from a text file."))

	os.Exit(run(cli.File))
}

func run(path string) int {
	f, err := os.Open(path)
	if err != nil {
		color.Red("ctlcheck: %s", err)
		return 2
	}
	defer f.Close()

	p, err := parseProblem(f)
	if err != nil {
		color.Red("ctlcheck: malformed input: %s", err)
		return 2
	}

	system, err := ts.New(p.numStates, p.transitions, p.labeling, ts.WithInit(p.init))
	if err != nil {
		color.Red("ctlcheck: %s", err)
		return 2
	}

	formula, err := ctl.Parse(p.formula)
	if err != nil {
		ctl.ReportSyntaxError(p.formula, err)
		return 2
	}

	result, err := checker.New(system).Satisfies(formula)
	if err != nil {
		color.Red("ctlcheck: %s", err)
		return 2
	}
	fmt.Println(result)
	if result {
		return 0
	}
	return 1
}
