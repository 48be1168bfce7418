package taskparse_test

import (
	"testing"

	"smartplan/pkg/taskparse"
)

func TestEstimateMinutes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "Hours", text: "deep work for 2 hours", want: 120},
		{name: "Single hour", text: "1 hour review", want: 60},
		{name: "Minutes", text: "quick 15 minutes standup", want: 15},
		{name: "Days", text: "offsite for 2 days", want: 2880},
		{name: "Day outranks minute wording", text: "1 day of back-to-back minutes", want: 1440},
		{name: "No duration defaults to an hour", text: "buy milk", want: 60},
		{name: "Unit without number defaults", text: "sometime this hour", want: 60},
		{name: "Empty text", text: "", want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := taskparse.EstimateMinutes(tt.text); got != tt.want {
				t.Errorf("EstimateMinutes(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
