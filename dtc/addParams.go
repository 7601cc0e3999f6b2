package main

import (
	"errors"
	"fmt"

	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/location.mod/location"
	"github.com/nickwells/param.mod/v6/paction"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
	"github.com/nickwells/tempus.mod/tempus"
)

const (
	paramNameDateTime      = "date-time"
	paramNameFromZone      = "from-zone"
	paramNameToZone        = "to-zone"
	paramNameListTimezones = "list-timezones"

	paramNameFormat        = "format"
	paramNameFormatTS      = "format-timestamp"
	paramNameFormatISO     = "format-iso8601"
	paramNameFormatRFC3339 = "format-rfc3339"
	paramNameFormatHTTP    = "format-http"
	paramNameUSDateOrder   = "us-date-order"
	paramNameNoSeconds     = "no-seconds"
	paramNameNoCentury     = "no-century"
	paramNameNoDate        = "no-date"
	paramNameNoTimezone    = "no-timezone"
	paramNameShowAMPM      = "show-ampm"
	paramNameShowMonthName = "show-month-name"
	paramNameDatePartSep   = "date-part-sep"
	paramNameDateTimeSep   = "date-time-sep"

	groupNameTimezone   = param.DfltGroupName + "-timezone"
	groupNameSetting    = param.DfltGroupName + "-setting"
	groupNameFormatting = param.DfltGroupName + "-formatting"
)

const formatRFC3339 = "2006-01-02T15:04:05Z07:00"

const (
	timezoneDescIntro       = "The timezone may be given as an abbreviation"
	timezoneDescAlternative = " (such as 'CEST' or 'JST'), as a zone name" +
		" (such as 'Europe/Paris') or as a numeric offset" +
		" (such as '+02:00' or 'Z')."
)

// setFormat returns an action func that will set the output format (and, if
// zone is not empty, the toZone)
func setFormat(prog *prog, fmt, zone string) param.ActionFunc {
	return func(_ location.L, _ *param.ByName, _ []string) error {
		prog.outFormat = fmt
		if zone != "" {
			prog.toZone = zone
		}

		return nil
	}
}

// addParams adds the parameters for this program
func addParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		// the date and time and the target timezone may follow the params
		err := ps.SetRemHandler(param.NullRemHandler{})
		if err != nil {
			return err
		}

		if err := addSettingParams(prog)(ps); err != nil {
			return err
		}

		if err := addTimezoneParams(prog)(ps); err != nil {
			return err
		}

		return addFormattingParams(prog)(ps)
	}
}

// addSettingParams adds the parameters which set the time to be converted
func addSettingParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(groupNameSetting, "time-setting parameters\n\n"+
			"These allow you to set the time to be converted."+
			" The default is to use the current time."+
			" The date and time can also be given as the first"+
			" argument to the program.")

		ps.Add(paramNameDateTime,
			psetter.String[string]{Value: &prog.dtStr},
			"the date and time to be converted."+
				"\n\n"+
				"The date is given as the year (including the century),"+
				" the month number and the day of the month, separated"+
				" by '-' as in '2023-10-01'. The time follows after a"+
				" space or a 'T' and is given in 24-hour form with a"+
				" colon (':') between the hours, minutes and"+
				" seconds as in '11:20:00'. If no seconds are given they"+
				" are taken to be zero."+
				"\n\n"+
				"The time may be followed by a timezone. "+
				timezoneDescIntro+timezoneDescAlternative+
				" If no timezone is given the time is taken to be in the"+
				" timezone given by the '"+paramNameFromZone+"' parameter."+
				"\n\n"+
				"If only a time is given the date is the current"+
				" date in the timezone of the time which could be"+
				" a day before or after the current date in your timezone.",
			param.AltNames("dt"),
			param.GroupName(groupNameSetting),
			param.PostAction(paction.SetVal(&prog.timeSource, tsDateTimeStr)),
		)

		ps.Add(paramNameFromZone,
			psetter.String[string]{
				Value: &prog.fromZone,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"the timezone in which to interpret the supplied date and"+
				" time if it does not give a timezone itself. "+
				timezoneDescIntro+timezoneDescAlternative,
			param.AltNames("from-timezone", "from-tz"),
			param.GroupName(groupNameSetting),
			param.PostAction(paction.SetVal(&prog.fromZoneSet, true)),
		)

		return nil
	}
}

// addTimezoneParams adds the parameters which set the target timezone
func addTimezoneParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(groupNameTimezone, "time-zone parameters")

		toZoneParam := ps.Add(paramNameToZone,
			psetter.String[string]{
				Value: &prog.toZone,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"the timezone in which to present the supplied date and time."+
				" This can also be given as the second argument to the"+
				" program. "+
				timezoneDescIntro+timezoneDescAlternative,
			param.AltNames("to-timezone", "to-tz"),
			param.GroupName(groupNameTimezone),
			param.PostAction(paction.SetVal(&prog.toZoneSet, true)),
		)

		ps.Add(paramNameListTimezones,
			psetter.Bool{Value: &prog.listTZNames},
			"list the timezone abbreviations with the offsets"+
				" and zones that they stand for",
			param.Attrs(param.CommandLineOnly|param.DontShowInStdUsage),
			param.AltNames("list-tz", "list-timezone-names"),
			param.GroupName(groupNameTimezone))

		return param.SeeAlso(paramNameListTimezones)(toZoneParam)
	}
}

// addFormattingParams adds the parameters which control the appearance
// of the converted time
//
//nolint:cyclop
func addFormattingParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		var fmtFlagCounter,
			fmtCounter,
			dateFmtFlagCounter,
			noDateCounter paction.Counter

		fmtFlagCounterAF := (&fmtFlagCounter).MakeActionFunc()
		fmtCounterAF := (&fmtCounter).MakeActionFunc()
		dateFmtFlagCounterAF := (&dateFmtFlagCounter).MakeActionFunc()
		noDateCounterAF := (&noDateCounter).MakeActionFunc()

		ps.AddGroup(groupNameFormatting, "formatting parameters\n\n"+
			"These are used to control how the resulting date and"+
			" time are shown to the user. You can either set the output"+
			" format directly or else give parameters to control the"+
			" appearance of different parts of the formatted time."+
			" By default the date, time and timezone are shown as: "+
			dfltFormat)

		ps.Add(paramNameFormat,
			psetter.String[string]{
				Value: &prog.outFormat,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"the format in which to display the resulting date and time."+
				" Note that this format uses the Go programming language"+
				" time formatting specification.\n\n"+
				"You can specify precisely how the time should appear"+
				" as follows:\n\n"+
				"for the year use '06' (or '2006' for the century as well)\n"+
				"for the month use '1', '01', 'Jan' or 'January'\n"+
				"for the day of the month use '2' or '02'\n"+
				"to show the day of the week use 'Mon' or 'Monday'\n"+
				"for the hour use '03' (or '15' for a 24-hour clock)\n"+
				"for the minute and second use '04' and '05'\n"+
				"for fractions of a second add '.' followed by 1-9 zeroes\n"+
				"to show AM or PM use 'PM'\n"+
				"to show the timezone use 'MST'\n"+
				"to show the offset from UTC use '-07:00'\n\n"+
				"unrecognised strings will appear as given",
			param.AltNames("fmt"),
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtCounterAF),
		)

		ps.Add(paramNameFormatTS,
			psetter.Nil{},
			"set the output format to one suitable for use as a timestamp:"+
				"\n\n"+
				tempus.FormatTimestamp,
			param.AltNames("fmt-ts"),
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtCounterAF),
			param.PostAction(setFormat(prog, tempus.FormatTimestamp, "")),
		)

		ps.Add(paramNameFormatISO,
			psetter.Nil{},
			"set the output format to that given by ISO 8601:"+
				"\n\n"+
				tempus.FormatISO8601,
			param.AltNames("fmt-iso"),
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtCounterAF),
			param.PostAction(setFormat(prog, tempus.FormatISO8601, "")),
		)

		ps.Add(paramNameFormatRFC3339,
			psetter.Nil{},
			"set the output format to that given by RFC 3339, this shows"+
				" the offset from UTC rather than the timezone:"+
				"\n\n"+
				formatRFC3339,
			param.AltNames("fmt-rfc3339"),
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtCounterAF),
			param.PostAction(setFormat(prog, formatRFC3339, "")),
		)

		ps.Add(paramNameFormatHTTP,
			psetter.Nil{},
			"set the output format to the preferred HTTP format:"+
				"\n\n"+
				tempus.FormatHTTP+
				"\n\n"+
				"This will also set the output timezone to UTC (GMT)"+
				" but this can be overridden by following parameters"+
				" or by the target timezone argument in which case the"+
				" format will not be HTTP standard compliant. Also, be"+
				" aware that the GMT at the end of the displayed time is"+
				" a fixed string and will not change to reflect any"+
				" change in timezone.",
			param.AltNames("fmt-http"),
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtCounterAF),
			param.PostAction(setFormat(prog, tempus.FormatHTTP, "UTC")),
		)

		ps.Add(paramNameUSDateOrder,
			psetter.Bool{Value: &prog.useUSDateOrder},
			`display the date in US format: month day year`,
			param.AltNames("us-date-fmt", "us-format", "us-fmt"),
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtFlagCounterAF),
			param.PostAction(dateFmtFlagCounterAF),
		)

		ps.Add(paramNameNoSeconds,
			psetter.Bool{Value: &prog.noSecs},
			`display the time without showing the seconds`,
			param.AltNames("no-secs", "dont-show-seconds", "dont-show-secs"),
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtFlagCounterAF),
		)

		ps.Add(paramNameNoCentury,
			psetter.Bool{Value: &prog.noCentury},
			`display the date without showing the century`,
			param.AltNames("dont-show-century"),
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtFlagCounterAF),
			param.PostAction(dateFmtFlagCounterAF),
		)

		ps.Add(paramNameNoDate,
			psetter.Bool{Value: &prog.showDate, Invert: true},
			`don't display the date; just show the time`,
			param.AltNames("dont-show-date"),
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtFlagCounterAF),
			param.PostAction(noDateCounterAF),
		)

		ps.Add(paramNameNoTimezone,
			psetter.Bool{Value: &prog.showTimezone, Invert: true},
			`don't display the timezone abbreviation after the time`,
			param.AltNames("no-tz", "no-zone", "dont-show-timezone"),
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtFlagCounterAF),
		)

		ps.Add(paramNameShowAMPM,
			psetter.Bool{Value: &prog.showAMPM},
			`display the time in AM/PM format not 24 hour`,
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtFlagCounterAF),
		)

		ps.Add(paramNameShowMonthName,
			psetter.Bool{Value: &prog.showMonthName},
			`display the month name rather than the number`,
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtFlagCounterAF),
			param.PostAction(dateFmtFlagCounterAF),
		)

		ps.Add(paramNameDatePartSep,
			psetter.String[string]{Value: &prog.datePartSep},
			`separate the parts of the date with the given value`,
			param.AltNames("date-part-separator"),
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtFlagCounterAF),
			param.PostAction(dateFmtFlagCounterAF),
		)

		ps.Add(paramNameDateTimeSep,
			psetter.String[string]{Value: &prog.dateTimeSep},
			`separate the date from the time with the given value`,
			param.AltNames("date-time-separator"),
			param.GroupName(groupNameFormatting),
			param.PostAction(fmtFlagCounterAF),
			param.PostAction(dateFmtFlagCounterAF),
		)

		// Final checks
		ps.AddFinalCheck(func() error {
			if fmtFlagCounter.Count() >= 1 && fmtCounter.Count() >= 1 {
				return fmt.Errorf(
					"the output format has been set (%s)"+
						" and so have the format flags (%s)",
					fmtCounter.SetBy(), fmtFlagCounter.SetBy())
			}

			return nil
		})

		ps.AddFinalCheck(func() error {
			if noDateCounter.Count() >= 1 && dateFmtFlagCounter.Count() >= 1 {
				return fmt.Errorf("you've set the date format and"+
					" chosen not to display the date:\n\n%s\n\n%s",
					dateFmtFlagCounter.SetBy(),
					noDateCounter.SetBy(),
				)
			}

			return nil
		})

		ps.AddFinalCheck(func() error {
			if fmtFlagCounter.Count() >= 1 {
				prog.setOutputFormat()
			}

			return nil
		})

		ps.AddFinalCheck(func() error {
			if fmtCounter.Count() > 1 {
				return errors.New(
					"the output format has been set multiple times: " +
						fmtCounter.SetBy())
			}

			return nil
		})

		return nil
	}
}
