package usecase

import (
	"smartplan/internal/notification/repository"
	pkgLog "smartplan/pkg/log"
)

const (
	defaultAdvanceMinutes = 30
	defaultType           = "reminder"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository

	advanceMinutes int
}

// Config tunes the notification usecase defaults.
type Config struct {
	AdvanceMinutes int
}

// New creates a new notification UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, cfg Config) *implUseCase {
	advance := cfg.AdvanceMinutes
	if advance <= 0 {
		advance = defaultAdvanceMinutes
	}

	return &implUseCase{
		l:              l,
		repo:           repo,
		advanceMinutes: advance,
	}
}
