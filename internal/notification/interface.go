package notification

import "context"

// UseCase defines the business logic interface for the notification domain.
type UseCase interface {
	// Schedule stores a reminder that fires before the task start instant.
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)

	// List returns the stored notifications, soonest first.
	List(ctx context.Context) (ListOutput, error)
}
