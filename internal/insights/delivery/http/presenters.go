package http

import (
	"smartplan/internal/insights"
	"smartplan/internal/model"
)

// --- Request DTOs ---

type analyzeProductivityReq struct {
	Tasks  []model.TaskRecord  `json:"tasks" binding:"required"`
	Events []model.EventRecord `json:"events" binding:"omitempty"`
}

func (r analyzeProductivityReq) toInput() insights.AnalyzeInput {
	return insights.AnalyzeInput{
		Tasks:  r.Tasks,
		Events: r.Events,
	}
}

// --- Response DTOs ---

type analysisResp struct {
	CompletionRate        float64  `json:"completion_rate"`
	AverageTaskTime       float64  `json:"average_task_time"`
	PeakProductivityHours []int    `json:"peak_productivity_hours"`
	CommonDistractions    []string `json:"common_distractions"`
}

type recommendationResp struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type insightResp struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

type analyzeProductivityResp struct {
	Analysis        analysisResp         `json:"analysis"`
	Recommendations []recommendationResp `json:"recommendations"`
	Insights        []insightResp        `json:"insights"`
}

func (h *handler) newAnalyzeProductivityResp(out insights.AnalyzeOutput) analyzeProductivityResp {
	resp := analyzeProductivityResp{
		Analysis: analysisResp{
			CompletionRate:        out.Analysis.CompletionRate,
			AverageTaskTime:       out.Analysis.AverageTaskMinutes,
			PeakProductivityHours: out.Analysis.PeakHours,
			CommonDistractions:    out.Analysis.Distractions,
		},
		Recommendations: make([]recommendationResp, 0, len(out.Recommendations)),
		Insights:        make([]insightResp, 0, len(out.Insights)),
	}
	for _, rec := range out.Recommendations {
		resp.Recommendations = append(resp.Recommendations, recommendationResp{
			Type:        rec.Type,
			Title:       rec.Title,
			Description: rec.Description,
			Priority:    rec.Priority,
		})
	}
	for _, ins := range out.Insights {
		resp.Insights = append(resp.Insights, insightResp{
			Type:     ins.Type,
			Title:    ins.Title,
			Message:  ins.Message,
			Priority: ins.Priority,
		})
	}
	return resp
}
