package tzdb

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	_ "time/tzdata" // zone names must load even without a system database

	"github.com/nickwells/tempus.mod/tempus"
)

// LocalName is the name used to refer to the local timezone
const LocalName = "local"

// ErrUnknownZone is wrapped by the errors returned when a timezone cannot
// be found
var ErrUnknownZone = errors.New("unknown timezone")

// Entry records an abbreviation, the offset it denotes and the name of
// the zone that owns it
type Entry struct {
	Abbrev string
	Offset int // seconds east of UTC
	Zone   string
}

// DB holds the zones and the abbreviation table
type DB struct {
	abbrevs map[string]Entry
	zones   map[string]*time.Location
	lcNames map[string]string
}

// Default returns a DB populated from all the zone names available on this
// machine.
func Default(ref time.Time) *DB {
	return New(ref, tempus.TimezoneNames())
}

// New returns a DB built from the named zones. Names which cannot be
// loaded are ignored. The abbreviations are those in use at the start of
// the year of the reference time, half way through that year and at the
// reference time itself.
func New(ref time.Time, names []string) *DB {
	db := &DB{
		abbrevs: map[string]Entry{},
		zones:   map[string]*time.Location{},
		lcNames: map[string]string{},
	}

	db.addZone("UTC", time.UTC)
	db.addAbbrev("UTC", 0, "UTC")

	sorted := slices.Clone(names)
	slices.Sort(sorted)

	for _, name := range sorted {
		if _, ok := db.zones[name]; ok {
			continue
		}

		loc, err := time.LoadLocation(name)
		if err != nil || name == "" || name == "Local" {
			continue
		}

		db.addZone(name, loc)
	}

	samples := sampleTimes(ref)

	// a zone with the same name as the abbreviation has first claim on it
	for _, name := range sorted {
		loc, ok := db.zones[name]
		if !ok {
			continue
		}

		for _, t := range samples {
			abbrev, offset := t.In(loc).Zone()
			if strings.EqualFold(abbrev, name) {
				db.addAbbrev(abbrev, offset, name)
			}
		}
	}

	for _, name := range sorted {
		loc, ok := db.zones[name]
		if !ok {
			continue
		}

		for _, t := range samples {
			abbrev, offset := t.In(loc).Zone()
			db.addAbbrev(abbrev, offset, name)
		}
	}

	return db
}

// sampleTimes returns the instants at which the abbreviations are recorded
func sampleTimes(ref time.Time) []time.Time {
	year := ref.UTC().Year()

	return []time.Time{
		time.Date(year, time.January, 1, 12, 0, 0, 0, time.UTC),
		time.Date(year, time.July, 1, 12, 0, 0, 0, time.UTC),
		ref,
	}
}

// addZone records the zone under its name
func (db *DB) addZone(name string, loc *time.Location) {
	db.zones[name] = loc

	lcName := strings.ToLower(name)
	if _, ok := db.lcNames[lcName]; !ok {
		db.lcNames[lcName] = name
	}
}

// addAbbrev adds the abbreviation to the table unless it is already
// present. Numeric abbreviations (such as '+03') are not recorded as they
// are handled as offsets.
func (db *DB) addAbbrev(abbrev string, offset int, zone string) {
	if abbrev == "" ||
		strings.HasPrefix(abbrev, "+") ||
		strings.HasPrefix(abbrev, "-") {
		return
	}

	key := strings.ToLower(abbrev)
	if _, ok := db.abbrevs[key]; ok {
		return
	}

	db.abbrevs[key] = Entry{
		Abbrev: strings.ToUpper(abbrev),
		Offset: offset,
		Zone:   zone,
	}
}

// Abbrev returns the table entry for the abbreviation, the comparison is
// case-blind.
func (db *DB) Abbrev(s string) (Entry, bool) {
	e, ok := db.abbrevs[strings.ToLower(s)]
	return e, ok
}

// zone finds the named zone, the name is first looked for as given and
// then case-blind
func (db *DB) zone(s string) (*time.Location, bool) {
	if strings.EqualFold(s, LocalName) {
		return time.Local, true
	}

	if loc, ok := db.zones[s]; ok {
		return loc, true
	}

	if name, ok := db.lcNames[strings.ToLower(s)]; ok {
		return db.zones[name], true
	}

	if s == "" || strings.HasPrefix(s, "/") || strings.Contains(s, "..") {
		return nil, false
	}

	loc, err := time.LoadLocation(s)
	if err != nil {
		return nil, false
	}

	return loc, true
}

// unknownZone returns the error for a timezone that cannot be found
func unknownZone(s string) error {
	return fmt.Errorf("%w: %q", ErrUnknownZone, s)
}

// Interpret returns the location in which to interpret a wall-clock time
// given with the timezone reference. An abbreviation gives a fixed zone at
// the offset the abbreviation denotes.
func (db *DB) Interpret(s string) (*time.Location, error) {
	s = strings.TrimSpace(s)

	if loc, ok := ParseOffset(s); ok {
		return loc, nil
	}

	if e, ok := db.Abbrev(s); ok {
		return time.FixedZone(e.Abbrev, e.Offset), nil
	}

	if loc, ok := db.zone(s); ok {
		return loc, nil
	}

	return nil, unknownZone(s)
}

// Target returns the location in which to render a time. An abbreviation
// gives the zone that owns it.
func (db *DB) Target(s string) (*time.Location, error) {
	s = strings.TrimSpace(s)

	if loc, ok := ParseOffset(s); ok {
		return loc, nil
	}

	if loc, ok := db.zone(s); ok {
		return loc, nil
	}

	if e, ok := db.Abbrev(s); ok {
		return db.zones[e.Zone], nil
	}

	return nil, unknownZone(s)
}

// Entries returns the abbreviation table sorted by abbreviation
func (db *DB) Entries() []Entry {
	entries := make([]Entry, 0, len(db.abbrevs))
	for _, e := range db.abbrevs {
		entries = append(entries, e)
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Abbrev, b.Abbrev)
	})

	return entries
}

// ZoneCount returns the number of named zones in the DB
func (db *DB) ZoneCount() int {
	return len(db.zones)
}
