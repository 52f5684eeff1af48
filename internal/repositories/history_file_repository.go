package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	resp "pulseboard/internal/models/response_models"
	"pulseboard/pkg/utils"
)

// fileHistoryRepository keeps the whole history as one JSON array on
// disk. Appends rewrite the array through a temp file and an atomic
// rename, so a crash mid-write leaves the previous file intact.
type fileHistoryRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileHistoryRepository(path string) HistoryRepository {
	return &fileHistoryRepository{path: path}
}

// load tolerates a missing or corrupt file: both read as an empty
// history rather than an error.
func (r *fileHistoryRepository) load() []resp.Snapshot {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return []resp.Snapshot{}
	}
	var history []resp.Snapshot
	if err := json.Unmarshal(data, &history); err != nil {
		return []resp.Snapshot{}
	}
	return history
}

func (r *fileHistoryRepository) Append(ctx context.Context, snap resp.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := append(r.load(), snap)

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode history: %v", utils.ErrHistoryStore, err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrHistoryStore, err)
	}

	tmp, err := os.CreateTemp(dir, "history-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrHistoryStore, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", utils.ErrHistoryStore, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", utils.ErrHistoryStore, err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", utils.ErrHistoryStore, err)
	}
	return nil
}

func (r *fileHistoryRepository) ReadAll(ctx context.Context) ([]resp.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}
