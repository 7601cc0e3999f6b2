/*
The tzdb package provides a table of timezone references. A timezone can be
given as a numeric offset ('+02:00', 'Z'), as an abbreviation ('CEST',
'JST') or as a zone name from the timezone database ('Europe/Paris').

The abbreviation table is built by loading every named zone and recording
the abbreviations it uses at a few sample instants around a reference
time. An abbreviation belongs to the first zone (in sorted name order) that
uses it unless there is a zone with the same name as the abbreviation in
which case that zone owns it.

When interpreting a wall-clock time an abbreviation stands for the fixed
offset it denotes. When rendering a time an abbreviation stands for the
zone that owns it so that daylight saving rules are followed.
*/
package tzdb
