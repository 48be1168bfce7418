package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"smartplan/internal/model"
	"smartplan/internal/notification/repository"
)

// Create stores a notification and assigns it an ID.
func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Notification, error) {
	n := model.Notification{
		ID:               uuid.NewString(),
		TaskID:           opt.TaskID,
		NotificationTime: opt.NotificationTime,
		Message:          opt.Message,
		Type:             opt.Type,
		Status:           opt.Status,
		CreatedAt:        r.clock(),
	}

	r.mu.Lock()
	r.items[n.ID] = n
	r.mu.Unlock()

	r.l.Debugf(ctx, "notification/repository/memory.Create: stored %s for task %s", n.ID, n.TaskID)
	return n, nil
}

// List returns all stored notifications ordered by notification time,
// soonest first.
func (r *implRepository) List(ctx context.Context) ([]model.Notification, error) {
	r.mu.RLock()
	out := make([]model.Notification, 0, len(r.items))
	for _, n := range r.items {
		out = append(out, n)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].NotificationTime.Equal(out[j].NotificationTime) {
			return out[i].NotificationTime.Before(out[j].NotificationTime)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
