package main

import "github.com/nickwells/param.mod/v6/param"

// addExamples adds examples to the usage message.
func addExamples(ps *param.PSet) error {
	ps.AddExample(progName+` "2023-10-01 11:20:00 cest" utc`,
		"This will show the time in UTC: '2023-10-01 09:20:00 UTC'")
	ps.AddExample(progName+` "2023-05-07 09:13:03" Asia/Tokyo`,
		"No timezone is given for the time so it is taken to be in UTC."+
			" This will show: '2023-05-07 18:13:03 JST'")
	ps.AddExample(progName+` "11:20 jst" cest`,
		"This will show 11:20 today, Japan time,"+
			" as the equivalent time in Central Europe."+
			"\n\n"+
			"Note that 'today' is the current date in Japan which"+
			" may not be the current date where you are.")
	ps.AddExample(progName+` "2023-10-22T10:34:16+01:00" -`+
		paramNameFormatRFC3339,
		"This will show the time in UTC with the offset rather than"+
			" the timezone: '2023-10-22T09:34:16Z'")
	ps.AddExample(progName+" -"+paramNameToZone+" America/New_York",
		"This will show the current time in New York.")
	ps.AddExample(progName+" -"+paramNameListTimezones,
		"This will list the timezone abbreviations that can be used.")

	return nil
}
