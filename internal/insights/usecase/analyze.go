package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"smartplan/internal/insights"
	"smartplan/internal/model"
)

// Analyze computes completion and productivity metrics from the supplied
// snapshots. The analysis is deterministic; ties in peak-hour frequency are
// broken by the earlier hour.
func (uc *implUseCase) Analyze(ctx context.Context, input insights.AnalyzeInput) (insights.AnalyzeOutput, error) {
	if len(input.Tasks) == 0 {
		return insights.AnalyzeOutput{}, insights.ErrNoTasks
	}

	analysis := insights.Analysis{
		CompletionRate:     completionRate(input.Tasks),
		AverageTaskMinutes: averageTaskMinutes(input.Tasks),
		PeakHours:          peakHours(input.Tasks),
		Distractions:       distractions(input.Tasks),
	}

	uc.l.Infof(ctx, "Analyze: %d tasks, completion %.1f%%, %d peak hours",
		len(input.Tasks), analysis.CompletionRate, len(analysis.PeakHours))

	return insights.AnalyzeOutput{
		Analysis:        analysis,
		Recommendations: recommendations(analysis),
		Insights:        readInsights(analysis),
	}, nil
}

// completionRate returns the completed share of tasks as a percentage.
func completionRate(tasks []model.TaskRecord) float64 {
	completed := 0
	for _, task := range tasks {
		if task.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(tasks)) * 100
}

// averageTaskMinutes is the mean creation-to-completion span of the completed
// tasks. Tasks without a completion instant are skipped.
func averageTaskMinutes(tasks []model.TaskRecord) float64 {
	var total float64
	count := 0
	for _, task := range tasks {
		if !task.Completed || task.CompletedAt == nil {
			continue
		}
		total += task.CompletedAt.Sub(task.CreatedAt).Minutes()
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// peakHours returns the up-to-three completion hours with the most completed
// tasks, most frequent first.
func peakHours(tasks []model.TaskRecord) []int {
	counts := make(map[int]int)
	for _, task := range tasks {
		if !task.Completed || task.CompletedAt == nil {
			continue
		}
		counts[task.CompletedAt.Hour()]++
	}

	hours := make([]int, 0, len(counts))
	for hour := range counts {
		hours = append(hours, hour)
	}
	sort.Slice(hours, func(i, j int) bool {
		if counts[hours[i]] != counts[hours[j]] {
			return counts[hours[i]] > counts[hours[j]]
		}
		return hours[i] < hours[j]
	})

	if len(hours) > maxPeakHours {
		hours = hours[:maxPeakHours]
	}
	return hours
}

// distractions flags unproductive patterns: frequent category switching in
// the task sequence, and a large share of incomplete tasks.
func distractions(tasks []model.TaskRecord) []string {
	var found []string

	if switchingRate(tasks) > switchingRateThreshold {
		found = append(found, "Frequent task switching")
	}

	incomplete := 0
	for _, task := range tasks {
		if !task.Completed {
			incomplete++
		}
	}
	if float64(incomplete) > float64(len(tasks))*incompleteShareThreshold {
		found = append(found, "Too many incomplete tasks")
	}

	return found
}

// switchingRate is the share of adjacent task pairs whose categories differ.
func switchingRate(tasks []model.TaskRecord) float64 {
	switches := 0
	for i := 1; i < len(tasks); i++ {
		if tasks[i].Category != tasks[i-1].Category {
			switches++
		}
	}
	denom := len(tasks) - 1
	if denom < 1 {
		denom = 1
	}
	return float64(switches) / float64(denom)
}

// readInsights renders the analysis as human-readable messages.
func readInsights(analysis insights.Analysis) []insights.Insight {
	var out []insights.Insight

	if analysis.CompletionRate < lowCompletionRateThreshold {
		out = append(out, insights.Insight{
			Type:  "warning",
			Title: "Task Completion Rate",
			Message: fmt.Sprintf("Your task completion rate is %.1f%%. Consider breaking down complex tasks into smaller, manageable pieces.",
				analysis.CompletionRate),
			Priority: "high",
		})
	}

	if len(analysis.PeakHours) > 0 {
		out = append(out, insights.Insight{
			Type:  "info",
			Title: "Peak Productivity Hours",
			Message: fmt.Sprintf("You're most productive during hours: %s. Schedule important tasks during these times.",
				joinHours(analysis.PeakHours)),
			Priority: "medium",
		})
	}

	if len(analysis.Distractions) > 0 {
		out = append(out, insights.Insight{
			Type:  "warning",
			Title: "Potential Distractions",
			Message: fmt.Sprintf("Common distractions identified: %s. Consider using focus techniques.",
				strings.Join(analysis.Distractions, ", ")),
			Priority: "medium",
		})
	}

	return out
}

func joinHours(hours []int) string {
	parts := make([]string, len(hours))
	for i, hour := range hours {
		parts[i] = strconv.Itoa(hour)
	}
	return strings.Join(parts, ", ")
}

func recommendations(analysis insights.Analysis) []insights.Recommendation {
	var recs []insights.Recommendation

	if analysis.CompletionRate < lowCompletionRateThreshold {
		recs = append(recs, insights.Recommendation{
			Type:        "productivity",
			Title:       "Improve Task Completion Rate",
			Description: "Consider breaking down complex tasks into smaller, manageable pieces",
			Priority:    "high",
		})
	}

	if len(analysis.PeakHours) < minPeakHours {
		recs = append(recs, insights.Recommendation{
			Type:        "schedule",
			Title:       "Optimize Your Schedule",
			Description: "Schedule important tasks during your peak productivity hours",
			Priority:    "medium",
		})
	}

	return recs
}
