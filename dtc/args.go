package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/param.mod/v6/param"
)

// isPositional returns true if the argument does not look like a parameter
// name. Values such as '-05:00' start with a '-' but are taken to be
// positional arguments if the next character is a digit.
func isPositional(arg string) bool {
	if !strings.HasPrefix(arg, "-") || arg == "-" {
		return true
	}

	c := arg[1]

	return c >= '0' && c <= '9'
}

// reorderArgs moves any leading positional arguments to the end of the
// argument list after the terminal parameter so that they are left in the
// remainder when the parameters are parsed. It returns the new list and the
// number of arguments moved. If the terminal parameter is already present
// the arguments are returned unchanged.
func reorderArgs(args []string) ([]string, int) {
	if slices.Contains(args, param.DfltTerminalParam) {
		return args, 0
	}

	i := 0
	for i < len(args) && isPositional(args[i]) {
		i++
	}

	if i == 0 {
		return args, 0
	}

	reordered := make([]string, 0, len(args)+1)
	reordered = append(reordered, args[i:]...)
	reordered = append(reordered, param.DfltTerminalParam)
	reordered = append(reordered, args[:i]...)

	return reordered, i
}

// parseCmdLine parses the parameters and then sets the positional
// arguments from what remains. The arguments must all come before the
// parameters or all after them.
func (prog *prog) parseCmdLine(ps *param.PSet, args []string) error {
	reordered, moved := reorderArgs(args)

	if errs := ps.Parse(reordered); len(errs) != 0 {
		return errors.New("the parameters could not be parsed")
	}

	rem := ps.Remainder()
	if moved > 0 && len(rem) != moved {
		var extra []string

		for _, s := range rem {
			if s != param.DfltTerminalParam && !slices.Contains(args[:moved], s) {
				extra = append(extra, s)
			}
		}

		return fmt.Errorf(
			"arguments have been given both before and after the"+
				" parameters: '%s' and '%s'. The date and time and the"+
				" target timezone must be given together",
			english.Join(args[:moved], "', '", "' and '"),
			english.Join(extra, "', '", "' and '"))
	}

	return prog.setArgs(rem)
}
