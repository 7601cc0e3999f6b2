package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/nickwells/dtc/internal/callstack"
	"github.com/nickwells/dtc/internal/dtparse"
	"github.com/nickwells/dtc/internal/tzdb"
	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/twrap.mod/twrap"
	"github.com/nickwells/verbose.mod/verbose"
)

const (
	tsNow = iota
	tsDateTimeStr
)

const (
	dfltDateFmt = "2006-01-02"
	dfltTimeFmt = "15:04:05"
	dfltZoneFmt = "MST"
	dfltFormat  = dfltDateFmt + " " + dfltTimeFmt + " " + dfltZoneFmt

	dfltFromZone = "UTC"
	dfltToZone   = "UTC"

	maxArgs = 2
)

// prog holds program parameters and status
type prog struct {
	fromZone    string
	toZone      string
	fromZoneSet bool
	toZoneSet   bool

	outFormat string

	useUSDateOrder bool
	noSecs         bool
	noCentury      bool
	showDate       bool
	showTimezone   bool
	showAMPM       bool
	showMonthName  bool

	dateTimeSep string
	datePartSep string
	dtStr       string
	timeSource  int

	tzNames     []string
	listTZNames bool

	cs  callstack.Stack
	now func() time.Time
}

// newProg returns a new Prog instance with the default values set
func newProg() *prog {
	return &prog{
		fromZone:     dfltFromZone,
		toZone:       dfltToZone,
		showDate:     true,
		showTimezone: true,
		dateTimeSep:  " ",
		datePartSep:  "-",
		outFormat:    dfltFormat,
		timeSource:   tsNow,
		now:          time.Now,
	}
}

// setArgs records the positional arguments: the date and time to convert
// and the timezone to convert to
func (prog *prog) setArgs(args []string) error {
	if len(args) > maxArgs {
		return fmt.Errorf(
			"too many arguments, at most %d may be given"+
				" (the date and time and the target timezone): '%s'",
			maxArgs, english.Join(args, "', '", "' and '"))
	}

	if len(args) == maxArgs {
		if prog.toZoneSet {
			return fmt.Errorf(
				"the target timezone has been given both as an argument (%q)"+
					" and by the %q parameter (%q)",
				args[1], paramNameToZone, prog.toZone)
		}

		prog.toZone = args[1]
	}

	if len(args) > 0 {
		if prog.timeSource == tsDateTimeStr {
			return fmt.Errorf(
				"the date and time have been given both as an argument (%q)"+
					" and by the %q parameter (%q)",
				args[0], paramNameDateTime, prog.dtStr)
		}

		prog.dtStr = args[0]
		prog.timeSource = tsDateTimeStr
	}

	if prog.fromZoneSet && prog.timeSource == tsNow {
		return fmt.Errorf(
			"if you have specified %q you must give the date and time",
			paramNameFromZone)
	}

	return nil
}

// makeDB builds the timezone table
func (prog *prog) makeDB(now time.Time) *tzdb.DB {
	defer prog.cs.Start("tzdb", "building the timezone table")()

	if prog.tzNames == nil {
		return tzdb.Default(now)
	}

	return tzdb.New(now, prog.tzNames)
}

// getTime returns the time according to the parameters given
func (prog *prog) getTime(db *tzdb.DB, now time.Time) (time.Time, error) {
	defer prog.cs.Start("parse", "parsing the date and time")()

	switch prog.timeSource {
	case tsNow:
		return now, nil
	case tsDateTimeStr:
		from, err := db.Interpret(prog.fromZone)
		if err != nil {
			return time.Time{},
				fmt.Errorf("bad %q value: %w", paramNameFromZone, err)
		}

		p := dtparse.New(db)
		p.Now = func() time.Time { return now }
		p.Default = from
		p.Prefer = []*time.Location{from}

		// an abbreviation used by the target zone is read as that zone's
		if to, err := db.Target(prog.toZone); err == nil {
			p.Prefer = append([]*time.Location{to}, p.Prefer...)
		}

		if verbose.IsOn() {
			p.Trace = prog.cs.Writer()
		}

		return p.Parse(prog.dtStr)
	}

	return time.Time{}, fmt.Errorf("unknown time source: %d", prog.timeSource)
}

// convert returns the time in the target timezone. Only the location
// changes, the instant is the same.
func (prog *prog) convert(db *tzdb.DB, t time.Time) (time.Time, error) {
	defer prog.cs.Start("convert", "converting to "+prog.toZone)()

	to, err := db.Target(prog.toZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad target timezone: %w", err)
	}

	return t.In(to), nil
}

// run converts the date and time and writes the result to w
func (prog *prog) run(w io.Writer) error {
	defer prog.cs.Start(progName, "starting")()

	now := prog.now()
	db := prog.makeDB(now)

	if prog.listTZNames {
		prog.listTimezones(w, db)
		return nil
	}

	tIn, err := prog.getTime(db, now)
	if err != nil {
		return err
	}

	tOut, err := prog.convert(db, tIn)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, tOut.Format(prog.outFormat))

	return err
}

// listTimezones displays the timezone abbreviations
func (prog *prog) listTimezones(w io.Writer, db *tzdb.DB) {
	entries := db.Entries()

	maxLen := 0
	for _, e := range entries {
		maxLen = max(maxLen, len(e.Abbrev))
	}

	for _, e := range entries {
		fmt.Fprintf(w, "%-*s %s %s\n",
			maxLen, e.Abbrev, tzdb.FormatOffset(e.Offset), e.Zone)
	}

	twc := twrap.NewTWConfOrPanic(twrap.SetWriter(w))

	fmt.Fprintln(w)
	twc.Wrap(fmt.Sprintf("An abbreviation in the date and time stands for"+
		" the offset shown. As the timezone to convert to it stands for"+
		" the zone shown so that daylight saving time is followed."+
		" Any of the %d zone names (such as 'Europe/Paris') or a numeric"+
		" offset (such as '+05:30') may also be used.", db.ZoneCount()), 0)
}

// reportErr writes the error to w with a hint if the error is due to an
// unknown timezone
func reportErr(w io.Writer, err error) {
	fmt.Fprintln(w, progName+":", err)

	if errors.Is(err, tzdb.ErrUnknownZone) {
		twc := twrap.NewTWConfOrPanic(twrap.SetWriter(w))
		twc.Wrap("Use the '-"+paramNameListTimezones+"' parameter"+
			" to see the timezone abbreviations available.", 4)
	}
}

// makeTimePart constructs the time part of the output format
func (prog prog) makeTimePart() string {
	hourPart := "15"
	AMPMsuffix := ""

	if prog.showAMPM {
		hourPart = "03"
		AMPMsuffix = " PM"
	}

	secsPart := ":05"

	if prog.noSecs {
		secsPart = ""
	}

	TZPart := ""

	if prog.showTimezone {
		TZPart = " " + dfltZoneFmt
	}

	return hourPart + ":" + "04" + secsPart + AMPMsuffix + TZPart
}

// makeDatePart makes the datepart of the format string
func (prog prog) makeDatePart() string {
	monthPart := "01"

	if prog.showMonthName {
		monthPart = "Jan"
	}

	yearPart := "2006"

	if prog.noCentury {
		yearPart = "06"
	}

	if prog.useUSDateOrder {
		return monthPart + prog.datePartSep + "02" + prog.datePartSep + yearPart
	}

	return yearPart + prog.datePartSep + monthPart + prog.datePartSep + "02"
}

// setOutputFormat sets the output format in accordance with the format
// specifications
func (prog *prog) setOutputFormat() {
	prog.outFormat = ""

	if prog.showDate {
		prog.outFormat = prog.makeDatePart() + prog.dateTimeSep
	}

	prog.outFormat += prog.makeTimePart()
}
