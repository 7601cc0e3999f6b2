package dtparse

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/nickwells/dtc/internal/tzdb"
)

const (
	nowWord = "now"
	intro   = "dtparse:"
)

// gluedZoneRE matches a numeric offset (or 'Z') immediately following the
// last digit of the time, as in '10:34:16+01:00'
var gluedZoneRE = regexp.MustCompile(`^(.*\d)\s*(Z|z|[+-]\d{2}(?::?\d{2})?)$`)

// Parser converts strings into instants. Timezones given in the string are
// looked up in the DB; if no timezone is given the Default location is
// used. A string giving only a time is taken to be on the current day (as
// given by the Now func) in the timezone of the time.
//
// An abbreviation is first checked against the Prefer locations: if one of
// them uses the abbreviation at the given wall-clock time then its offset
// is used rather than the one in the DB. If Trace is not nil the layouts
// tried are reported to it.
type Parser struct {
	DB      *tzdb.DB
	Now     func() time.Time
	Default *time.Location
	Prefer  []*time.Location
	Trace   io.Writer
}

// New returns a Parser using the given DB, the current time and UTC as the
// default location
func New(db *tzdb.DB) *Parser {
	return &Parser{
		DB:      db,
		Now:     time.Now,
		Default: time.UTC,
	}
}

// candidate is one way of splitting the input into the date and time and
// the timezone
type candidate struct {
	body string
	zone string
}

// candidates returns the ways the string might be split. The whole string
// comes first, then with a trailing glued offset taken as the zone, then
// with the last word taken as the zone.
func candidates(s string) []candidate {
	cands := []candidate{{body: s}}

	if parts := gluedZoneRE.FindStringSubmatch(s); parts != nil {
		cands = append(cands, candidate{
			body: strings.TrimSpace(parts[1]),
			zone: parts[2],
		})
	}

	if i := strings.LastIndexAny(s, " \t"); i > 0 {
		cands = append(cands, candidate{
			body: strings.TrimSpace(s[:i]),
			zone: s[i+1:],
		})
	}

	return cands
}

// Parse returns the instant given by the string. It returns a *ParseError
// if the string cannot be recognised.
func (p *Parser) Parse(s string) (time.Time, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return time.Time{}, &ParseError{Input: s, Err: ErrEmpty}
	}

	if strings.EqualFold(in, nowWord) {
		return p.Now(), nil
	}

	p.trace("trying layout:", time.RFC3339Nano)

	if t, err := time.Parse(time.RFC3339Nano, in); err == nil {
		return t, nil
	}

	for _, c := range candidates(in) {
		loc := p.Default
		if c.zone != "" {
			p.trace("trying timezone:", c.zone)

			if t, ok := p.parsePreferred(c); ok {
				return t, nil
			}

			var err error

			loc, err = p.DB.Interpret(c.zone)
			if err != nil {
				// only blame the zone if the rest makes sense
				if _, ok := p.parseBody(c.body, time.UTC); ok {
					return time.Time{}, &ParseError{Input: s, Err: err}
				}

				continue
			}
		}

		if t, ok := p.parseBody(c.body, loc); ok {
			return t, nil
		}
	}

	return time.Time{}, &ParseError{Input: s, Err: ErrNoLayout}
}

// parseBody tries each of the layouts in turn, returning the first
// successfully parsed time
func (p *Parser) parseBody(body string, loc *time.Location) (time.Time, bool) {
	if body == "" {
		return time.Time{}, false
	}

	for _, l := range layouts {
		p.trace("trying layout:", l.format)

		t, err := time.ParseInLocation(l.format, body, loc)
		if err != nil {
			continue
		}

		if l.kind == lkTimeOnly {
			y, m, d := p.Now().In(loc).Date()
			t = time.Date(y, m, d,
				t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
		}

		p.trace("matched:", t.Format(time.RFC3339Nano))

		return t, true
	}

	return time.Time{}, false
}

// parsePreferred returns the time if one of the preferred locations uses
// the candidate's zone as its abbreviation at the parsed time
func (p *Parser) parsePreferred(c candidate) (time.Time, bool) {
	for _, loc := range p.Prefer {
		if loc == nil {
			continue
		}

		t, ok := p.parseBody(c.body, loc)
		if !ok {
			return time.Time{}, false
		}

		if abbrev, _ := t.Zone(); strings.EqualFold(abbrev, c.zone) {
			p.trace("preferring:", loc.String())
			return t, true
		}
	}

	return time.Time{}, false
}

// trace reports the progress of the parse if tracing is on
func (p *Parser) trace(args ...any) {
	if p.Trace == nil {
		return
	}

	fmt.Fprintln(p.Trace, append([]any{intro}, args...)...)
}

// IsParseError returns true if the error is (or wraps) a ParseError
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
