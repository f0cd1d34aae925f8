package service

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"

	"loja-service/internal/database"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// store is what every repository in this service offers.
type store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, v T) (int, error)
	Update(ctx context.Context, id int, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// crud holds the operations that look the same for every entity. kind is
// only used in log lines.
type crud[T any] struct {
	repo     store[T]
	kind     string
	notFound error
}

func (s *crud[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing %s", s.kind)
		return nil, err
	}
	return items, nil
}

func (s *crud[T]) Get(ctx context.Context, id int) (*T, error) {
	item, err := s.repo.Get(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, s.notFound
	}
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting %s by ID %d", s.kind, id)
		return nil, err
	}
	return item, nil
}

func (s *crud[T]) Create(ctx context.Context, v T) (int, error) {
	id, err := s.repo.Create(ctx, v)
	if err != nil {
		logger.Error().Err(err).Msgf("Error creating %s", s.kind)
		return 0, err
	}
	return id, nil
}

// Update changes only the columns present in fields.
func (s *crud[T]) Update(ctx context.Context, id int, fields map[string]any) error {
	found, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		if !errors.Is(err, database.ErrNoFields) {
			logger.Error().Err(err).Msgf("Error updating %s %d", s.kind, id)
		}
		return err
	}
	if !found {
		logger.Warn().Msgf("%s %d not found for update", s.kind, id)
		return s.notFound
	}
	return nil
}

// Delete succeeds when the row is already gone.
func (s *crud[T]) Delete(ctx context.Context, id int) error {
	_, err := s.delete(ctx, id)
	return err
}

func (s *crud[T]) delete(ctx context.Context, id int) (bool, error) {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting %s %d", s.kind, id)
		return false, err
	}
	if !found {
		logger.Warn().Msgf("%s %d not found for delete", s.kind, id)
	}
	return found, nil
}
