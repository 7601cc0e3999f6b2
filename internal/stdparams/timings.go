package stdparams

import (
	"github.com/nickwells/dtc/internal/callstack"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
)

// ParamNameShowTimings is the name of the parameter added by AddTiming
const ParamNameShowTimings = "show-timings"

// AddTiming returns a PSetOptFunc which adds the show-timing parameter
// used to set the ShowTimings field in the callstack.Stack
func AddTiming(cs *callstack.Stack, opt ...param.OptFunc) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		opt = append(opt,
			param.Attrs(param.DontShowInStdUsage|param.CommandLineOnly),
			param.AltNames("show-timing", "show-times"))

		ps.Add(ParamNameShowTimings, psetter.Bool{Value: &cs.ShowTimings},
			"report the time taken for the stages of the conversion."+
				" The timings are written to standard error.",
			opt...)

		return nil
	}
}
