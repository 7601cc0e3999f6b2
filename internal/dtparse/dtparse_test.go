package dtparse_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nickwells/dtc/internal/dtparse"
	"github.com/nickwells/dtc/internal/tzdb"
	"github.com/nickwells/testhelper.mod/v2/testhelper"
)

var testNow = time.Date(2023, time.October, 22, 12, 0, 0, 0, time.UTC)

// mkTestParser returns a Parser with a small timezone DB and a fixed
// current time
func mkTestParser() *dtparse.Parser {
	db := tzdb.New(testNow, []string{
		"UTC",
		"Europe/Paris",
		"Europe/London",
		"Asia/Tokyo",
		"America/New_York",
	})
	p := dtparse.New(db)
	p.Now = func() time.Time { return testNow }

	return p
}

func TestParse(t *testing.T) {
	p := mkTestParser()

	testCases := []struct {
		testhelper.ID
		testhelper.ExpErr
		s      string
		expUTC string
	}{
		{
			ID:     testhelper.MkID("RFC 3339"),
			s:      "2023-10-22T10:34:16+01:00",
			expUTC: "2023-10-22T09:34:16Z",
		},
		{
			ID:     testhelper.MkID("RFC 3339 with fraction"),
			s:      "2023-10-22T10:34:16.25Z",
			expUTC: "2023-10-22T10:34:16.25Z",
		},
		{
			ID:     testhelper.MkID("abbreviation"),
			s:      "2023-10-22 10:34:16 jst",
			expUTC: "2023-10-22T01:34:16Z",
		},
		{
			ID:     testhelper.MkID("summer abbreviation"),
			s:      "2023-10-01 11:20:00 cest",
			expUTC: "2023-10-01T09:20:00Z",
		},
		{
			ID:     testhelper.MkID("no timezone"),
			s:      "2023-10-22 10:34:16",
			expUTC: "2023-10-22T10:34:16Z",
		},
		{
			ID:     testhelper.MkID("leading and trailing space"),
			s:      "  2023-05-07 09:13:03  ",
			expUTC: "2023-05-07T09:13:03Z",
		},
		{
			ID:     testhelper.MkID("glued offset, space separated date"),
			s:      "2023-10-22 10:34:16-0500",
			expUTC: "2023-10-22T15:34:16Z",
		},
		{
			ID:     testhelper.MkID("zone name"),
			s:      "2023-01-15 08:00 America/New_York",
			expUTC: "2023-01-15T13:00:00Z",
		},
		{
			ID:     testhelper.MkID("compact date"),
			s:      "20190321 15:10:30",
			expUTC: "2019-03-21T15:10:30Z",
		},
		{
			ID:     testhelper.MkID("HTTP style"),
			s:      "Sun, 22 Oct 2023 10:34:16 GMT",
			expUTC: "2023-10-22T10:34:16Z",
		},
		{
			ID:     testhelper.MkID("time only, zone ahead of UTC"),
			s:      "11:20:00 jst",
			expUTC: "2023-10-22T02:20:00Z",
		},
		{
			ID:     testhelper.MkID("time only, no seconds, no zone"),
			s:      "09:15",
			expUTC: "2023-10-22T09:15:00Z",
		},
		{
			ID:     testhelper.MkID("time only, AM/PM"),
			s:      "3:04PM EDT",
			expUTC: "2023-10-22T19:04:00Z",
		},
		{
			ID:     testhelper.MkID("date only"),
			s:      "2023-05-07",
			expUTC: "2023-05-07T00:00:00Z",
		},
		{
			ID:     testhelper.MkID("now"),
			s:      "NOW",
			expUTC: "2023-10-22T12:00:00Z",
		},
		{
			ID:     testhelper.MkID("empty"),
			s:      "   ",
			ExpErr: testhelper.MkExpErr("no date or time was given"),
		},
		{
			ID:     testhelper.MkID("bad month"),
			s:      "2023-13-45 10:00:00",
			ExpErr: testhelper.MkExpErr(`cannot parse "2023-13-45 10:00:00"`),
		},
		{
			ID:     testhelper.MkID("gibberish"),
			s:      "the day after tomorrow",
			ExpErr: testhelper.MkExpErr("not in a recognised form"),
		},
		{
			ID:     testhelper.MkID("unknown timezone"),
			s:      "2023-10-01 11:20:00 xyz",
			ExpErr: testhelper.MkExpErr("unknown timezone", `"xyz"`),
		},
	}

	for _, tc := range testCases {
		tm, err := p.Parse(tc.s)
		if testhelper.CheckExpErr(t, err, tc) && err == nil {
			testhelper.DiffString(t, tc.IDStr(), "instant",
				tm.UTC().Format(time.RFC3339Nano), tc.expUTC)
		}

		if err != nil && !dtparse.IsParseError(err) {
			t.Log(tc.IDStr())
			t.Errorf("\t: the error should be a ParseError: %v", err)
		}
	}
}

func TestParseDefaultZone(t *testing.T) {
	p := mkTestParser()
	p.Default = time.FixedZone("CET", 3600)

	tm, err := p.Parse("2023-02-01 10:00")
	if err != nil {
		t.Fatal("unexpected error: ", err)
	}

	testhelper.DiffString(t, "default zone", "instant",
		tm.UTC().Format(time.RFC3339), "2023-02-01T09:00:00Z")

	tm, err = p.Parse("2023-02-01 10:00 UTC")
	if err != nil {
		t.Fatal("unexpected error: ", err)
	}

	testhelper.DiffString(t, "explicit zone", "instant",
		tm.UTC().Format(time.RFC3339), "2023-02-01T10:00:00Z")
}

func TestParseErrorUnwrap(t *testing.T) {
	p := mkTestParser()

	_, err := p.Parse("2023-10-01 11:20:00 xyz")
	if !errors.Is(err, tzdb.ErrUnknownZone) {
		t.Errorf("the error should wrap tzdb.ErrUnknownZone: %v", err)
	}

	_, err = p.Parse("")
	if !errors.Is(err, dtparse.ErrEmpty) {
		t.Errorf("the error should wrap dtparse.ErrEmpty: %v", err)
	}

	var dtErr dtparse.Error
	if !errors.As(err, &dtErr) {
		t.Errorf("the error should satisfy dtparse.Error: %v", err)
	}
}

func TestParsePrefer(t *testing.T) {
	db := tzdb.New(testNow, []string{
		"UTC",
		"America/Chicago",
		"Asia/Kolkata",
		"Asia/Shanghai",
		"Europe/Dublin",
	})

	mustLoad := func(name string) *time.Location {
		loc, err := time.LoadLocation(name)
		if err != nil {
			t.Fatalf("cannot load %q: %v", name, err)
		}

		return loc
	}

	testCases := []struct {
		testhelper.ID
		prefer []*time.Location
		s      string
		expUTC string
	}{
		{
			ID:     testhelper.MkID("CST, no preference"),
			s:      "2023-07-01 17:20:00 CST",
			expUTC: "2023-07-01T23:20:00Z",
		},
		{
			ID:     testhelper.MkID("CST, prefer China"),
			prefer: []*time.Location{mustLoad("Asia/Shanghai")},
			s:      "2023-07-01 17:20:00 CST",
			expUTC: "2023-07-01T09:20:00Z",
		},
		{
			ID: testhelper.MkID("CST, second preference used"),
			prefer: []*time.Location{
				time.UTC,
				mustLoad("Asia/Shanghai"),
			},
			s:      "2023-07-01 17:20:00 cst",
			expUTC: "2023-07-01T09:20:00Z",
		},
		{
			ID:     testhelper.MkID("IST, prefer Ireland in summer"),
			prefer: []*time.Location{mustLoad("Europe/Dublin")},
			s:      "2023-07-01 10:20:00 IST",
			expUTC: "2023-07-01T09:20:00Z",
		},
		{
			ID:     testhelper.MkID("IST, Ireland not in summer time"),
			prefer: []*time.Location{mustLoad("Europe/Dublin")},
			s:      "2023-01-15 10:20:00 IST",
			expUTC: "2023-01-15T04:50:00Z",
		},
		{
			ID:     testhelper.MkID("offset, preference ignored"),
			prefer: []*time.Location{mustLoad("Asia/Shanghai")},
			s:      "2023-07-01 17:20:00 -06:00",
			expUTC: "2023-07-01T23:20:00Z",
		},
	}

	for _, tc := range testCases {
		p := dtparse.New(db)
		p.Now = func() time.Time { return testNow }
		p.Prefer = tc.prefer

		tm, err := p.Parse(tc.s)
		if err != nil {
			t.Log(tc.IDStr())
			t.Errorf("\t: unexpected error: %v", err)

			continue
		}

		testhelper.DiffString(t, tc.IDStr(), "instant",
			tm.UTC().Format(time.RFC3339Nano), tc.expUTC)
	}
}

func TestParseTrace(t *testing.T) {
	p := mkTestParser()

	var buf bytes.Buffer

	p.Trace = &buf

	if _, err := p.Parse("2023-10-22 10:34:16 jst"); err != nil {
		t.Fatal("unexpected error: ", err)
	}

	for _, exp := range []string{
		"dtparse: trying timezone: jst\n",
		"dtparse: matched: 2023-10-22T10:34:16+09:00\n",
	} {
		if !strings.Contains(buf.String(), exp) {
			t.Errorf("the trace should contain %q, got:\n%s",
				exp, buf.String())
		}
	}
}
