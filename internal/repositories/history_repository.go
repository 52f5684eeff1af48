package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	dbm "pulseboard/internal/models/db_models"
	resp "pulseboard/internal/models/response_models"
	"pulseboard/pkg/utils"
)

// HistoryRepository is the append-only snapshot log. Append is
// all-or-nothing; ReadAll of an empty or broken store yields an empty
// slice, never an error the caller has to handle specially.
type HistoryRepository interface {
	Append(ctx context.Context, snap resp.Snapshot) error
	ReadAll(ctx context.Context) ([]resp.Snapshot, error)
}

// ---------- Postgres-backed store ----------

type gormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) HistoryRepository {
	return &gormHistoryRepository{db: db}
}

func (r *gormHistoryRepository) Append(ctx context.Context, snap resp.Snapshot) error {
	metrics, err := json.Marshal(snap.Fields)
	if err != nil {
		return fmt.Errorf("%w: encode metrics: %v", utils.ErrHistoryStore, err)
	}

	row := dbm.Snapshot{
		CapturedAt: snap.Date.Unix(),
		Metrics:    datatypes.JSON(metrics),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("%w: %v", utils.ErrHistoryStore, err)
	}
	return nil
}

func (r *gormHistoryRepository) ReadAll(ctx context.Context) ([]resp.Snapshot, error) {
	var rows []dbm.Snapshot
	err := r.db.WithContext(ctx).
		Order("captured_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrHistoryStore, err)
	}

	out := make([]resp.Snapshot, 0, len(rows))
	for _, row := range rows {
		var fields map[string]any
		if err := json.Unmarshal(row.Metrics, &fields); err != nil {
			// one bad row does not hide the rest of the history
			fields = map[string]any{}
		}
		out = append(out, resp.Snapshot{
			Date:   time.Unix(row.CapturedAt, 0).UTC(),
			Fields: fields,
		})
	}
	return out, nil
}
