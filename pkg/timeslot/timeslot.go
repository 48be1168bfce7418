// Package timeslot ranks candidate hourly scheduling slots against a user's
// busy hours and preferred productivity hours.
package timeslot

import "time"

// Default working-hours window, inclusive on both ends.
const (
	DefaultWindowStartHour = 9
	DefaultWindowEndHour   = 17
)

// MaxSuggestions caps how many slots a single call returns.
const MaxSuggestions = 3

// SuggestionReason annotates why a slot was suggested.
const SuggestionReason = "Optimal productivity hour"

// SuggestionConfidence is the fixed confidence for a preferred, free slot.
const SuggestionConfidence = 0.9

// Slot is a candidate hour of day.
type Slot struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// Suggestion is a ranked slot with its reason and confidence.
type Suggestion struct {
	Hour       int     `json:"hour"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

// Context bundles the caller-supplied schedule data. Read-only to this
// package.
type Context struct {
	BusyHours      map[int]bool
	PreferredHours []int
}

// AvailableSlots enumerates the hours in [startHour, endHour] that are not
// busy. Hours outside 0-23 are skipped. A zero window falls back to the
// default working hours.
func AvailableSlots(busy map[int]bool, startHour, endHour int) []Slot {
	if startHour == 0 && endHour == 0 {
		startHour, endHour = DefaultWindowStartHour, DefaultWindowEndHour
	}

	var slots []Slot
	for hour := startHour; hour <= endHour; hour++ {
		if hour < 0 || hour > 23 {
			continue
		}
		if busy[hour] {
			continue
		}
		slots = append(slots, Slot{Hour: hour, Available: true})
	}
	return slots
}

// Suggest returns up to MaxSuggestions free slots that fall on preferred
// hours, in ascending hour order. An empty result means no slot matched;
// callers fall back to their own default scheduling.
func Suggest(ctx Context, startHour, endHour int) []Suggestion {
	preferred := make(map[int]bool, len(ctx.PreferredHours))
	for _, hour := range ctx.PreferredHours {
		preferred[hour] = true
	}

	var suggestions []Suggestion
	for _, slot := range AvailableSlots(ctx.BusyHours, startHour, endHour) {
		if !preferred[slot.Hour] {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Hour:       slot.Hour,
			Reason:     SuggestionReason,
			Confidence: SuggestionConfidence,
		})
		if len(suggestions) == MaxSuggestions {
			break
		}
	}
	return suggestions
}

// BusyHoursFromEvents maps event start instants to their hour of day.
func BusyHoursFromEvents(starts []time.Time) map[int]bool {
	busy := make(map[int]bool, len(starts))
	for _, start := range starts {
		busy[start.Hour()] = true
	}
	return busy
}
