package main

import (
	"errors"
	"testing"

	"github.com/nickwells/errutil.mod/errutil"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/param.mod/v6/paramtest"
	"github.com/nickwells/tempus.mod/tempus"
	"github.com/nickwells/testhelper.mod/v2/testhelper"
)

// cmpProgStruct compares the value with the expected value and returns
// an error if they differ
func cmpProgStruct(iVal, iExpVal any) error {
	val, ok := iVal.(*prog)
	if !ok {
		return errors.New("Bad value: not a pointer to a Prog struct")
	}

	expVal, ok := iExpVal.(*prog)
	if !ok {
		return errors.New("Bad expected value: not a pointer to a Prog struct")
	}

	return testhelper.DiffVals(val, expVal, []string{"now"})
}

// mkTestParser populates and returns a paramtest.Parser ready to be added to
// the testcases.
func mkTestParser(
	errs errutil.ErrMap, id testhelper.ID,
	progSetter func(prog *prog),
	args ...string,
) paramtest.Parser {
	actVal := newProg()
	ps := paramset.NewNoHelpNoExitNoErrRptOrPanic(
		addParams(actVal),
	)

	expVal := newProg()
	if progSetter != nil {
		progSetter(expVal)
	}

	return paramtest.Parser{
		ID:             id,
		ExpParseErrors: errs,
		Val:            actVal,
		Ps:             ps,
		ExpVal:         expVal,
		Args:           args,
		CheckFunc:      cmpProgStruct,
	}
}

// TestParseParams will use the paramtest.Parser to make sure the
// behaviour of the parameter setting is as expected.
func TestParseParams(t *testing.T) {
	testCases := []paramtest.Parser{}

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: no params, no change"), nil))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: date-time"),
			func(prog *prog) {
				prog.dtStr = "2023-10-01 11:20:00 CEST"
				prog.timeSource = tsDateTimeStr
			},
			"-"+paramNameDateTime, "2023-10-01 11:20:00 CEST"))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: from-zone"),
			func(prog *prog) {
				prog.fromZone = "Asia/Tokyo"
				prog.fromZoneSet = true
			},
			"-"+paramNameFromZone, "Asia/Tokyo"))
	{
		parseErrs := errutil.ErrMap{}
		parseErrs.AddError(
			paramNameFromZone,
			errors.New("the length of the string (0) is incorrect:"+
				" the value (0) must be greater than 0\n"+
				"At: [command line]:"+
				` Supplied Parameter:2: "-from-zone" ""`))

		testCases = append(testCases,
			mkTestParser(parseErrs, testhelper.MkID("bad: from-zone"),
				nil,
				"-"+paramNameFromZone, ""))
	}

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: to-zone"),
			func(prog *prog) {
				prog.toZone = "jst"
				prog.toZoneSet = true
			},
			"-"+paramNameToZone, "jst"))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: list-timezones"),
			func(prog *prog) { prog.listTZNames = true },
			"-"+paramNameListTimezones))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: format-iso8601"),
			func(prog *prog) { prog.outFormat = tempus.FormatISO8601 },
			"-"+paramNameFormatISO))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: format-http"),
			func(prog *prog) {
				prog.outFormat = tempus.FormatHTTP
				prog.toZone = "UTC"
			},
			"-"+paramNameFormatHTTP))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: format-rfc3339"),
			func(prog *prog) { prog.outFormat = formatRFC3339 },
			"-"+paramNameFormatRFC3339))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: no-seconds"),
			func(prog *prog) {
				prog.noSecs = true
				prog.outFormat = "2006-01-02 15:04 MST"
			},
			"-"+paramNameNoSeconds))

	testCases = append(testCases,
		mkTestParser(nil,
			testhelper.MkID("good: no-timezone, show-month-name"),
			func(prog *prog) {
				prog.showTimezone = false
				prog.showMonthName = true
				prog.outFormat = "2006-Jan-02 15:04:05"
			},
			"-"+paramNameNoTimezone, "-"+paramNameShowMonthName))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: no-date"),
			func(prog *prog) {
				prog.showDate = false
				prog.outFormat = "15:04:05 MST"
			},
			"-"+paramNameNoDate))

	testCases = append(testCases,
		mkTestParser(nil,
			testhelper.MkID("good: us-date-order, date-part-sep"),
			func(prog *prog) {
				prog.useUSDateOrder = true
				prog.datePartSep = "/"
				prog.outFormat = "01/02/2006 15:04:05 MST"
			},
			"-"+paramNameUSDateOrder, "-"+paramNameDatePartSep, "/"))

	for _, tc := range testCases {
		_ = tc.Test(t)
	}
}
