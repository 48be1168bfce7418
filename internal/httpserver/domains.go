package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	insightsHTTP "smartplan/internal/insights/delivery/http"
	insightsUC "smartplan/internal/insights/usecase"
	notificationHTTP "smartplan/internal/notification/delivery/http"
	notificationRepo "smartplan/internal/notification/repository/memory"
	notificationUC "smartplan/internal/notification/usecase"
	plannerHTTP "smartplan/internal/planner/delivery/http"
	plannerUC "smartplan/internal/planner/usecase"
	scheduleHTTP "smartplan/internal/schedule/delivery/http"
	scheduleUC "smartplan/internal/schedule/usecase"
)

// Pattern for each domain:
//  1. Create Repository (when the domain has storage)
//  2. Create UseCase
//  3. Create HTTP Handler
//  4. Register Routes
func (srv *HTTPServer) setupPlannerDomain(ctx context.Context, ai *gin.RouterGroup) {
	uc := plannerUC.New(srv.l, srv.classifier, plannerUC.Config{
		ReminderAdvanceMinutes: srv.planner.ReminderAdvanceMinutes,
		ClassifierCacheSize:    srv.planner.ClassifierCacheSize,
	})

	h := plannerHTTP.New(srv.l, uc)
	plannerHTTP.RegisterRoutes(ai, h)

	srv.l.Infof(ctx, "Planner domain registered")
}

func (srv *HTTPServer) setupScheduleDomain(ctx context.Context, ai *gin.RouterGroup) {
	uc := scheduleUC.New(srv.l, srv.calendar, scheduleUC.Config{
		WorkHoursStart:         srv.planner.WorkHoursStart,
		WorkHoursEnd:           srv.planner.WorkHoursEnd,
		PreferredHours:         srv.planner.PreferredHours,
		ReminderAdvanceMinutes: srv.planner.ReminderAdvanceMinutes,
		CalendarID:             srv.calendarID,
	})

	h := scheduleHTTP.New(srv.l, uc)
	scheduleHTTP.RegisterRoutes(ai, h)

	srv.l.Infof(ctx, "Schedule domain registered")
}

func (srv *HTTPServer) setupInsightsDomain(ctx context.Context, ai *gin.RouterGroup) {
	uc := insightsUC.New(srv.l)

	h := insightsHTTP.New(srv.l, uc)
	insightsHTTP.RegisterRoutes(ai, h)

	srv.l.Infof(ctx, "Insights domain registered")
}

func (srv *HTTPServer) setupNotificationDomain(ctx context.Context, ai *gin.RouterGroup) {
	repo := notificationRepo.New(srv.l)

	uc := notificationUC.New(srv.l, repo, notificationUC.Config{
		AdvanceMinutes: srv.planner.ReminderAdvanceMinutes,
	})

	h := notificationHTTP.New(srv.l, uc)
	notificationHTTP.RegisterRoutes(ai, h)

	srv.l.Infof(ctx, "Notification domain registered")
}
