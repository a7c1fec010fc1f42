package expert

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindWhenForms(t *testing.T) {
	now := fixedNow() // Tuesday 2025-06-10 14:30 UTC

	tests := []struct {
		name     string
		query    string
		wantDate string
		wantTime string
	}{
		{"meridiem compact", "call me at 3pm", "2025-06-10", "15:00:00"},
		{"meridiem spaced", "call me at 3 pm", "2025-06-10", "15:00:00"},
		{"twenty four hour", "meet at 15:00", "2025-06-10", "15:00:00"},
		{"clock with meridiem", "alarm for 3:30pm", "2025-06-10", "15:30:00"},
		{"tomorrow bare hour", "remind me tomorrow 9", "2025-06-11", "09:00:00"},
		{"tomorrow meridiem", "remind me tomorrow at 9am", "2025-06-11", "09:00:00"},
		{"morning", "do it in the morning", "2025-06-10", "09:00:00"},
		{"noon", "lunch at noon", "2025-06-10", "12:00:00"},
		{"afternoon", "sometime in the afternoon", "2025-06-10", "15:00:00"},
		{"evening", "this evening please", "2025-06-10", "19:00:00"},
		{"night", "tonight works", "2025-06-10", "21:00:00"},
		{"midnight meridiem", "at 12am sharp", "2025-06-10", "00:00:00"},
		{"noon meridiem", "at 12pm sharp", "2025-06-10", "12:00:00"},
		{"day after tomorrow", "day after tomorrow at 8am", "2025-06-12", "08:00:00"},
		{"date only", "sometime tomorrow", "2025-06-11", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			when, ok := FindWhen(tc.query, now, time.UTC)
			require.True(t, ok)
			assert.Equal(t, tc.wantDate, when.DateString())
			assert.Equal(t, tc.wantTime, when.ClockSeconds())
		})
	}
}

func TestFindWhenNothing(t *testing.T) {
	_, ok := FindWhen("add milk to my shopping list", fixedNow(), time.UTC)
	assert.False(t, ok)
}

func TestFindWhenUserTimezone(t *testing.T) {
	// 2025-06-10 23:30 UTC is already 2025-06-11 in Tokyo, so "tomorrow"
	// must resolve against the user's local date.
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	now := time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC)

	when, ok := FindWhen("remind me tomorrow at 9am", now, tokyo)
	require.True(t, ok)
	assert.Equal(t, "2025-06-12", when.DateString())
	assert.Equal(t, "09:00:00", when.ClockSeconds())
}

func TestFindWhenRejectsNonsenseClock(t *testing.T) {
	// 25:99 is not a time; the bare-hour fallback must not fire either
	// because 25 > 23.
	_, ok := FindWhen("at 25:99", fixedNow(), time.UTC)
	assert.False(t, ok)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Living Room", "living_room"},
		{"living  room ", "living_room"},
		{"Kid's Bedroom #2", "kid_s_bedroom_2"},
		{"office", "office"},
		{"--", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "Living Room", TitleWords("living_room"))
	assert.Equal(t, "Living Room", TitleWords("living room"))
	assert.Equal(t, "Office", TitleWords("office"))
}

func TestSanitizeCapsAtEightKB(t *testing.T) {
	long := strings.Repeat("a", MaxQueryBytes+100)
	got := Sanitize(long)
	assert.Len(t, got, MaxQueryBytes)

	// Multi-byte runes are never split.
	runes := strings.Repeat("é", MaxQueryBytes) // 2 bytes each
	got = Sanitize(runes)
	assert.LessOrEqual(t, len(got), MaxQueryBytes)
	assert.True(t, strings.HasSuffix(got, "é"))
}

func TestSplitQuantity(t *testing.T) {
	tests := []struct {
		in       string
		wantText string
		wantQty  int
	}{
		{"2 apples", "apples", 2},
		{"3x eggs", "eggs", 3},
		{"milk", "milk", 0},
		{"12 eggs", "eggs", 12},
		{"0 things", "0 things", 0},
	}
	for _, tc := range tests {
		text, qty := SplitQuantity(tc.in)
		assert.Equal(t, tc.wantText, text, "SplitQuantity(%q)", tc.in)
		assert.Equal(t, tc.wantQty, qty, "SplitQuantity(%q)", tc.in)
	}
}

func TestSplitItems(t *testing.T) {
	assert.Equal(t, []string{"milk", "eggs"}, SplitItems("milk and eggs"))
	assert.Equal(t, []string{"milk", "eggs", "bread"}, SplitItems("milk, eggs and bread"))
	assert.Equal(t, []string{"bananas"}, SplitItems("bananas"))
	assert.Empty(t, SplitItems("  "))
}

func TestInferListType(t *testing.T) {
	assert.Equal(t, "shopping", InferListType("add milk to my shopping list"))
	assert.Equal(t, "shopping", InferListType("add milk to my grocery list"))
	assert.Equal(t, "todo", InferListType("add taxes to my todo list"))
	assert.Equal(t, "shopping", InferListType("add milk to my list"))
}

func TestFindMonthDay(t *testing.T) {
	now := fixedNow() // 2025-06-10

	date, ok := FindMonthDay("Sarah's birthday is March 15", now, time.UTC)
	require.True(t, ok)
	assert.Equal(t, "2026-03-15", date.Format("2006-01-02"), "past date rolls to next year")

	date, ok = FindMonthDay("the party is on July 4th", now, time.UTC)
	require.True(t, ok)
	assert.Equal(t, "2025-07-04", date.Format("2006-01-02"))

	_, ok = FindMonthDay("no date here", now, time.UTC)
	assert.False(t, ok)

	_, ok = FindMonthDay("February 31", now, time.UTC)
	assert.False(t, ok, "impossible day is rejected")
}
