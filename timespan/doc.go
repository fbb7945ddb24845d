// Package timespan renders the distance between two instants the way a feed
// or a comment thread does: "a few seconds ago", "5 minutes ago", "a year ago".
//
// Thresholds (absolute difference):
//
//	0 to 45 seconds            a few seconds ago
//	45 to 90 seconds           a minute ago
//	90 seconds to 45 minutes   2 minutes ago ... 45 minutes ago
//	45 to 90 minutes           an hour ago
//	90 minutes to 22 hours     2 hours ago ... 22 hours ago
//	22 to 36 hours             a day ago
//	36 hours to 25 days        2 days ago ... 25 days ago
//	25 to 45 days              a month ago
//	45 to 345 days             2 months ago ... 11 months ago
//	345 to 545 days            a year ago
//	546 days+                  2 years ago ...
//
// Upper bounds are inclusive. Counts round half down and never drop below 2;
// a month is 30 days and a year 365.
//
// Phrases come from an x/text message catalog holding English and German;
// WithLanguage picks the closest supported language and falls back to English.
package timespan
