package taskparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Month and day capture groups shared by the date patterns.
const monthAlternation = `january|february|march|april|may|june|july|august|september|october|november|december`

var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// Named day periods resolve to a representative hour.
var periodHours = map[string]int{
	"morning":   9,
	"noon":      12,
	"afternoon": 14,
	"evening":   18,
	"night":     20,
	"midnight":  0,
}

// Extractor scans free text for date and time references using ordered
// pattern matching. It carries no state across calls.
type Extractor struct {
	datePatterns []datePattern
	timePatterns []timePattern
}

type datePattern struct {
	re      *regexp.Regexp
	resolve func(match []string, now time.Time) *time.Time
}

type timePattern struct {
	re      *regexp.Regexp
	resolve func(match []string) *ClockTime
}

// NewExtractor creates an Extractor with the default pattern set.
func NewExtractor() *Extractor {
	return &Extractor{
		datePatterns: []datePattern{
			// "january 15th", "january 15"
			{
				re:      regexp.MustCompile(`(` + monthAlternation + `)\s+(\d{1,2})(?:st|nd|rd|th)?`),
				resolve: resolveMonthDay(1, 2),
			},
			// "15th january", "15 january"
			{
				re:      regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthAlternation + `)`),
				resolve: resolveMonthDay(2, 1),
			},
			// "jan 15"
			{
				re:      regexp.MustCompile(`(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s+(\d{1,2})`),
				resolve: resolveMonthDay(1, 2),
			},
			// "15/01/2024", "15-01-2024", day-month-year by convention
			{
				re:      regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`),
				resolve: resolveNumericDate,
			},
		},
		timePatterns: []timePattern{
			// "3:30pm", "3:30 pm"
			{
				re:      regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(am|pm)`),
				resolve: resolveTwelveHour(1, 2, 3),
			},
			// "3pm", "3 pm"
			{
				re:      regexp.MustCompile(`(\d{1,2})\s*(am|pm)`),
				resolve: resolveTwelveHour(1, -1, 2),
			},
			// "15:30" 24-hour
			{
				re:      regexp.MustCompile(`(\d{1,2}):(\d{2})`),
				resolve: resolveTwentyFourHour,
			},
			// "morning", "noon", ...
			{
				re:      regexp.MustCompile(`(morning|afternoon|evening|night|noon|midnight)`),
				resolve: resolvePeriod,
			},
		},
	}
}

// Extract scans text for date and time references relative to now.
// First match wins within each category. Relative date keywords
// ("today", "tomorrow", ...) are checked after the date patterns and
// override any pattern match.
func (e *Extractor) Extract(text string, now time.Time) ExtractedDateTime {
	lower := strings.ToLower(text)

	var out ExtractedDateTime

	for _, p := range e.datePatterns {
		if m := p.re.FindStringSubmatch(lower); m != nil {
			if d := p.resolve(m, now); d != nil {
				out.Date = d
				break
			}
		}
	}

	for _, p := range e.timePatterns {
		if m := p.re.FindStringSubmatch(lower); m != nil {
			if t := p.resolve(m); t != nil {
				out.Time = t
				break
			}
		}
	}

	// Relative keywords win over any pattern match above.
	if d := resolveRelativeDate(lower, now); d != nil {
		out.Date = d
	}

	if strings.Contains(lower, "due") || strings.Contains(lower, "deadline") {
		out.DeadlineHint = true
	}

	return out
}

// resolveRelativeDate handles the fixed relative keywords. "this week" and
// "this month" resolve to today.
func resolveRelativeDate(lower string, now time.Time) *time.Time {
	switch {
	case strings.Contains(lower, "today"):
		return datePtr(startOfDay(now))
	case strings.Contains(lower, "tomorrow"):
		return datePtr(startOfDay(now).AddDate(0, 0, 1))
	case strings.Contains(lower, "next week"):
		return datePtr(startOfDay(now).AddDate(0, 0, 7))
	case strings.Contains(lower, "next month"):
		return datePtr(addMonthClamped(startOfDay(now)))
	case strings.Contains(lower, "this week"), strings.Contains(lower, "this month"):
		return datePtr(startOfDay(now))
	}
	return nil
}

func resolveMonthDay(monthIdx, dayIdx int) func([]string, time.Time) *time.Time {
	return func(match []string, now time.Time) *time.Time {
		month, ok := monthsByName[match[monthIdx]]
		if !ok {
			return nil
		}
		day, err := strconv.Atoi(match[dayIdx])
		if err != nil || day < 1 || day > 31 {
			return nil
		}
		// Year is always the reference year; no rollover across year
		// boundaries.
		d := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
		return &d
	}
}

func resolveNumericDate(match []string, now time.Time) *time.Time {
	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	year, _ := strconv.Atoi(match[3])
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return nil
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	return &d
}

func resolveTwelveHour(hourIdx, minuteIdx, periodIdx int) func([]string) *ClockTime {
	return func(match []string) *ClockTime {
		hour, err := strconv.Atoi(match[hourIdx])
		if err != nil || hour < 1 || hour > 12 {
			return nil
		}
		minute := 0
		if minuteIdx > 0 {
			minute, err = strconv.Atoi(match[minuteIdx])
			if err != nil || minute > 59 {
				return nil
			}
		}
		if match[periodIdx] == "pm" && hour != 12 {
			hour += 12
		}
		if match[periodIdx] == "am" && hour == 12 {
			hour = 0
		}
		return &ClockTime{Hour: hour, Minute: minute}
	}
}

func resolveTwentyFourHour(match []string) *ClockTime {
	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])
	if hour > 23 || minute > 59 {
		return nil
	}
	return &ClockTime{Hour: hour, Minute: minute}
}

func resolvePeriod(match []string) *ClockTime {
	hour, ok := periodHours[match[1]]
	if !ok {
		return nil
	}
	return &ClockTime{Hour: hour, Minute: 0}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// addMonthClamped advances t by one calendar month, clamping the day to the
// last day of the target month instead of letting it roll over.
func addMonthClamped(t time.Time) time.Time {
	year, month, day := t.Date()
	firstOfNext := time.Date(year, month+1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := firstOfNext.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func datePtr(t time.Time) *time.Time { return &t }
