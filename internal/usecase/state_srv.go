package usecase

import (
	"context"

	"cinema-showtime/internal/data/repository"
	"cinema-showtime/pkg/database"

	"go.uber.org/zap"
)

type StateService interface {
	// Save writes the full in-memory state to storage.
	Save(ctx context.Context) error
}

type stateService struct {
	repo    *repository.Repository
	storage database.Storage
	log     *zap.Logger
}

func NewStateService(repo *repository.Repository, storage database.Storage, log *zap.Logger) StateService {
	return &stateService{
		repo:    repo,
		storage: storage,
		log:     log.With(zap.String("service", "state")),
	}
}

func (s *stateService) Save(ctx context.Context) error {
	snapshot := s.repo.Snapshot()

	if err := s.storage.Save(ctx, snapshot); err != nil {
		s.log.Error("Failed to save state", zap.Error(err))
		return err
	}

	s.log.Info("State saved",
		zap.Int("movies", len(snapshot.Movies)),
		zap.Int("showtimes", len(snapshot.Showtimes)),
		zap.Int("bookings", len(snapshot.Bookings)),
	)
	return nil
}
