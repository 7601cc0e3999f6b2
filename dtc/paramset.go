package main

import (
	"github.com/nickwells/dtc/internal/stdparams"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/nickwells/versionparams.mod/versionparams"
)

// makeParamSet generates the param set ready for parsing
func makeParamSet(prog *prog) *param.PSet {
	return paramset.NewOrPanic(
		verbose.AddParams,
		versionparams.AddParams,

		addParams(prog),
		stdparams.AddTiming(&prog.cs),

		addExamples,

		param.SetProgramDescription(
			"this will convert the passed date and time into the"+
				" equivalent time in the given timezone."+
				"\n\n"+
				"The date and time may be given as the first argument"+
				" and the timezone to convert to as the second. If no"+
				" timezone is given in the date and time then UTC is"+
				" used and if no timezone to convert to is given then"+
				" UTC is used. If no date is given the current date is"+
				" used and if no date or time is given then the"+
				" current time is used."+
				"\n\n"+
				"The arguments may come before or after any parameters"+
				" but not on both sides of them. An argument starting"+
				" with '-' and a digit (such as '-05:00') is taken as"+
				" an argument rather than a parameter. The arguments"+
				" may also follow the terminal parameter ('"+
				param.DfltTerminalParam+"')."),
	)
}
