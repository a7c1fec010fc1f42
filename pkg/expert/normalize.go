package expert

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// MaxQueryBytes caps untrusted input carried into pattern matching and
// collaborator payloads.
const MaxQueryBytes = 8 * 1024

// Sanitize trims whitespace and caps the input at 8KB without splitting a
// multi-byte rune.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= MaxQueryBytes {
		return s
	}
	cut := MaxQueryBytes
	for cut > 0 && !utf8Start(s[cut]) {
		cut--
	}
	return s[:cut]
}

func utf8Start(b byte) bool { return b&0xC0 != 0x80 }

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a name and collapses every non-alphanumeric run to a
// single underscore, yielding [a-z0-9_]+ as device IDs require.
func Slugify(name string) string {
	slug := slugStripRe.ReplaceAllString(strings.ToLower(name), "_")
	return strings.Trim(slug, "_")
}

// TitleWords renders a slug or phrase with each word capitalized, for
// user-facing summaries ("living_room" -> "Living Room").
func TitleWords(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// When is a resolved schedule expression: a calendar date plus an optional
// wall-clock time, both in the user's timezone.
type When struct {
	Date    time.Time // midnight of the resolved day
	HasTime bool
	Hour    int
	Minute  int
}

// DateString renders the date part as YYYY-MM-DD.
func (w When) DateString() string {
	return w.Date.Format("2006-01-02")
}

// Clock renders the time part as HH:MM. Empty when no time was found.
func (w When) Clock() string {
	if !w.HasTime {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", w.Hour, w.Minute)
}

// ClockSeconds renders the time part as HH:MM:SS. Empty when no time was
// found.
func (w When) ClockSeconds() string {
	if !w.HasTime {
		return ""
	}
	return fmt.Sprintf("%02d:%02d:00", w.Hour, w.Minute)
}

var (
	clockRe    = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm)?\b`)
	meridiemRe = regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`)
	bareHourRe = regexp.MustCompile(`\b(?:at|around|by|tomorrow|today)\s+(\d{1,2})\b`)
	namedRe    = regexp.MustCompile(`\b(morning|midday|afternoon|noon|evening|tonight|night|midnight)\b`)
)

var namedClock = map[string][2]int{
	"morning":   {9, 0},
	"noon":      {12, 0},
	"midday":    {12, 0},
	"afternoon": {15, 0},
	"evening":   {19, 0},
	"tonight":   {21, 0},
	"night":     {21, 0},
	"midnight":  {0, 0},
}

// FindWhen scans a query for a schedule expression. Recognized forms:
// "3pm", "3 pm", "3:30pm", "15:00", "at 9", "tomorrow 9", and the named
// times of day ("morning" 09:00, "noon" 12:00, "afternoon" 15:00,
// "evening" 19:00, "night" 21:00). "tomorrow" resolves against now in the
// user's timezone; without a day keyword the date is today. Returns false
// when the query carries neither a day nor a time.
func FindWhen(query string, now time.Time, loc *time.Location) (When, bool) {
	if loc == nil {
		loc = time.UTC
	}
	q := strings.ToLower(query)
	local := now.In(loc)

	w := When{}
	foundTime := false

	if m := clockRe.FindStringSubmatch(q); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if h, ok := applyMeridiem(hour, m[3]); ok && minute <= 59 {
			w.Hour, w.Minute, w.HasTime = h, minute, true
			foundTime = true
		}
	}
	if !foundTime {
		if m := meridiemRe.FindStringSubmatch(q); m != nil {
			hour, _ := strconv.Atoi(m[1])
			if h, ok := applyMeridiem(hour, m[2]); ok {
				w.Hour, w.HasTime = h, true
				foundTime = true
			}
		}
	}
	if !foundTime {
		if m := bareHourRe.FindStringSubmatch(q); m != nil {
			hour, _ := strconv.Atoi(m[1])
			if hour <= 23 {
				w.Hour, w.HasTime = hour, true
				foundTime = true
			}
		}
	}
	if !foundTime {
		if m := namedRe.FindStringSubmatch(q); m != nil {
			clock := namedClock[m[1]]
			w.Hour, w.Minute, w.HasTime = clock[0], clock[1], true
			foundTime = true
		}
	}

	foundDay := true
	day := local
	switch {
	case strings.Contains(q, "day after tomorrow"):
		day = local.AddDate(0, 0, 2)
	case strings.Contains(q, "tomorrow"):
		day = local.AddDate(0, 0, 1)
	case strings.Contains(q, "today"), strings.Contains(q, "tonight"):
	default:
		foundDay = false
	}
	w.Date = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)

	return w, foundDay || foundTime
}

// applyMeridiem converts a 12-hour reading to 24-hour. Without a meridiem
// the hour is taken literally (0-23).
func applyMeridiem(hour int, meridiem string) (int, bool) {
	switch meridiem {
	case "am":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			return 0, true
		}
		return hour, true
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			return 12, true
		}
		return hour + 12, true
	default:
		if hour > 23 {
			return 0, false
		}
		return hour, true
	}
}

var monthDayRe = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// FindMonthDay resolves a "March 15" style expression to its next
// occurrence: this year if the date has not passed yet, otherwise next
// year.
func FindMonthDay(query string, now time.Time, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	m := monthDayRe.FindStringSubmatch(strings.ToLower(query))
	if m == nil {
		return time.Time{}, false
	}
	month := monthsByName[m[1]]
	day, _ := strconv.Atoi(m[2])
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	local := now.In(loc)
	date := time.Date(local.Year(), month, day, 0, 0, 0, 0, loc)
	if date.Month() != month {
		return time.Time{}, false
	}
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	if date.Before(today) {
		date = date.AddDate(1, 0, 0)
	}
	return date, true
}

var quantityRe = regexp.MustCompile(`^(\d{1,4})\s*x?\s+(.+)$`)

// SplitQuantity separates a leading count from an item phrase
// ("2 apples" -> "apples", 2). Items without a count report quantity 0.
func SplitQuantity(item string) (string, int) {
	m := quantityRe.FindStringSubmatch(strings.TrimSpace(item))
	if m == nil {
		return strings.TrimSpace(item), 0
	}
	qty, err := strconv.Atoi(m[1])
	if err != nil || qty <= 0 {
		return strings.TrimSpace(item), 0
	}
	return strings.TrimSpace(m[2]), qty
}

// InferListType picks the target list from the query wording. Shopping is
// the default; "todo"/"task" wording selects the todo list.
func InferListType(query string) string {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "todo") || strings.Contains(q, "to-do") ||
		strings.Contains(q, "task list"):
		return "todo"
	default:
		return "shopping"
	}
}

var itemSplitRe = regexp.MustCompile(`\s*,\s*|\s+and\s+`)

// SplitItems breaks a phrase like "milk, eggs and bread" into individual
// items.
func SplitItems(phrase string) []string {
	parts := itemSplitRe.Split(phrase, -1)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}
