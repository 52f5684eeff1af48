package services

import (
	"context"
	"time"

	resp "pulseboard/internal/models/response_models"
	"pulseboard/internal/repositories"
)

type HistoryService interface {
	Append(ctx context.Context, fields map[string]any) (*resp.Snapshot, error)
	ReadAll(ctx context.Context) ([]resp.Snapshot, error)
}

type historyService struct {
	repo repositories.HistoryRepository
	now  func() time.Time
}

func NewHistoryService(repo repositories.HistoryRepository) HistoryService {
	return &historyService{repo: repo, now: time.Now}
}

// Append stamps the snapshot with the server clock; a caller-supplied
// "date" field is discarded so the log stays chronologically honest.
// The caller's map is copied, never mutated.
func (s *historyService) Append(ctx context.Context, fields map[string]any) (*resp.Snapshot, error) {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "date" {
			continue
		}
		copied[k] = v
	}

	snap := resp.Snapshot{
		Date:   s.now().UTC(),
		Fields: copied,
	}
	if err := s.repo.Append(ctx, snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *historyService) ReadAll(ctx context.Context) ([]resp.Snapshot, error) {
	return s.repo.ReadAll(ctx)
}
