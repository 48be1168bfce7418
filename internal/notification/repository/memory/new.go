package memory

import (
	"sync"
	"time"

	"smartplan/internal/model"
	"smartplan/internal/notification/repository"
	"smartplan/pkg/log"
)

type implRepository struct {
	l log.Logger

	mu    sync.RWMutex
	items map[string]model.Notification

	clock func() time.Time
}

// New creates an in-memory Repository for the notification domain. Contents
// are lost on restart.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		l:     l,
		items: make(map[string]model.Notification),
		clock: time.Now,
	}
}
