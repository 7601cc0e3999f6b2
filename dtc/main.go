package main

import (
	"os"
)

// Created: Sat Oct 21 19:02:11 2023

const progName = "dtc"

func main() {
	prog := newProg()
	ps := makeParamSet(prog)

	if err := prog.parseCmdLine(ps, os.Args[1:]); err != nil {
		reportErr(os.Stderr, err)
		os.Exit(1)
	}

	if err := prog.run(os.Stdout); err != nil {
		reportErr(os.Stderr, err)
		os.Exit(1)
	}
}
