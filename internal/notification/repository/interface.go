package repository

import (
	"context"

	"smartplan/internal/model"
)

// Repository is the interface for notification storage.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Notification, error)
	List(ctx context.Context) ([]model.Notification, error)
}
