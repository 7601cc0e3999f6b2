package dtparse

// layoutKind says which parts of the instant a layout supplies
type layoutKind int

const (
	lkDateTime layoutKind = iota
	lkTimeOnly
	lkDateOnly
)

type layout struct {
	kind   layoutKind
	format string
}

// layouts lists the recognised forms in the order they are tried. Go's
// time parsing accepts fractional seconds following the seconds field so
// there is no need for separate layouts with fractions.
var layouts = []layout{
	{lkDateTime, "2006-01-02 15:04:05"},
	{lkDateTime, "2006-01-02T15:04:05"},
	{lkDateTime, "2006-01-02 15:04"},
	{lkDateTime, "2006-01-02T15:04"},
	{lkDateTime, "20060102 15:04:05"},
	{lkDateTime, "20060102 15:04"},
	{lkDateTime, "20060102.150405"},
	{lkDateTime, "2006/01/02 15:04:05"},
	{lkDateTime, "2006/01/02 15:04"},
	{lkDateTime, "Mon, 02 Jan 2006 15:04:05"},
	{lkDateTime, "Mon, 2 Jan 2006 15:04:05"},
	{lkDateTime, "02 Jan 2006 15:04:05"},
	{lkDateTime, "2 Jan 2006 15:04"},
	{lkDateTime, "Jan 2 2006 15:04:05"},
	{lkDateTime, "Jan 2, 2006 15:04:05"},
	{lkDateTime, "Mon Jan 2 15:04:05 2006"},

	{lkTimeOnly, "15:04:05"},
	{lkTimeOnly, "15:04"},
	{lkTimeOnly, "3:04:05PM"},
	{lkTimeOnly, "3:04PM"},
	{lkTimeOnly, "3:04:05 PM"},
	{lkTimeOnly, "3:04 PM"},

	{lkDateOnly, "2006-01-02"},
	{lkDateOnly, "20060102"},
	{lkDateOnly, "2006/01/02"},
	{lkDateOnly, "02 Jan 2006"},
	{lkDateOnly, "Jan 2 2006"},
}
