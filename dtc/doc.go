/*
The dtc command converts a date and time into the equivalent date and time
in another timezone.

The date and time are given as the first argument and may carry a timezone
as an abbreviation (such as 'CEST' or 'JST'), as a zone name (such as
'Europe/Paris') or as a numeric offset (such as '+02:00'). If no timezone
is given the time is taken to be in UTC. If only a time is given the date
is the current day in the timezone of the time. If no date or time is
given the current time is used.

The timezone to convert to is given as the second argument and is UTC if
not given.

	dtc "2023-10-01 11:20:00 cest" utc

will print

	2023-10-01 09:20:00 UTC
*/
package main
