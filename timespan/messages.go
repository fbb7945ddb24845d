package timespan

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. Keys ending in "n" take the count as their only argument.
const (
	keySeconds = "timespan.seconds"
	keyMinute  = "timespan.minute"
	keyMinutes = "timespan.minutes.n"
	keyHour    = "timespan.hour"
	keyHours   = "timespan.hours.n"
	keyDay     = "timespan.day"
	keyDays    = "timespan.days.n"
	keyMonth   = "timespan.month"
	keyMonths  = "timespan.months.n"
	keyYear    = "timespan.year"
	keyYears   = "timespan.years.n"
)

// supported lists catalog languages; the first is the fallback.
var supported = []language.Tag{language.English, language.German}

var (
	matcher = language.NewMatcher(supported)
	phrases = mustCatalog()
)

func mustCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	tables := map[language.Tag]map[string]string{
		language.English: {
			keySeconds: "a few seconds ago",
			keyMinute:  "a minute ago",
			keyMinutes: "%d minutes ago",
			keyHour:    "an hour ago",
			keyHours:   "%d hours ago",
			keyDay:     "a day ago",
			keyDays:    "%d days ago",
			keyMonth:   "a month ago",
			keyMonths:  "%d months ago",
			keyYear:    "a year ago",
			keyYears:   "%d years ago",
		},
		language.German: {
			keySeconds: "vor ein paar Sekunden",
			keyMinute:  "vor einer Minute",
			keyMinutes: "vor %d Minuten",
			keyHour:    "vor einer Stunde",
			keyHours:   "vor %d Stunden",
			keyDay:     "vor einem Tag",
			keyDays:    "vor %d Tagen",
			keyMonth:   "vor einem Monat",
			keyMonths:  "vor %d Monaten",
			keyYear:    "vor einem Jahr",
			keyYears:   "vor %d Jahren",
		},
	}
	for tag, msgs := range tables {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("timespan: register %s %q: %v", tag, key, err))
			}
		}
	}

	return b
}

// printer returns a message printer for the supported language closest to tag.
func printer(tag language.Tag) *message.Printer {
	_, idx, _ := matcher.Match(tag)

	return message.NewPrinter(supported[idx], message.Catalog(phrases))
}
