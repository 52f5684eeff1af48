package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resp "pulseboard/internal/models/response_models"
)

type stubHistoryService struct {
	snaps []resp.Snapshot
}

func (s *stubHistoryService) Append(ctx context.Context, fields map[string]any) (*resp.Snapshot, error) {
	snap := resp.Snapshot{Date: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), Fields: fields}
	s.snaps = append(s.snaps, snap)
	return &snap, nil
}

func (s *stubHistoryService) ReadAll(ctx context.Context) ([]resp.Snapshot, error) {
	return s.snaps, nil
}

func historyTestRouter(svc *stubHistoryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewHistoryController(svc)
	r.GET("/api/history", ctrl.GetHistory)
	r.POST("/api/history", ctrl.AppendHistory)
	return r
}

func TestAppendAndGetHistory(t *testing.T) {
	svc := &stubHistoryService{}
	r := historyTestRouter(svc)

	post := httptest.NewRequest(http.MethodPost, "/api/history",
		strings.NewReader(`{"youtube": 1200, "mrr": 250}`))
	post.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, post)
	require.Equal(t, http.StatusOK, w.Code)

	get := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, get)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Status string            `json:"status"`
		Data   []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.Status)
	require.Len(t, envelope.Data, 1)

	// snapshots travel as one flat object with a server-assigned date
	var entry map[string]any
	require.NoError(t, json.Unmarshal(envelope.Data[0], &entry))
	assert.Equal(t, "2025-05-01T00:00:00Z", entry["date"])
	assert.Equal(t, float64(1200), entry["youtube"])
	assert.Equal(t, float64(250), entry["mrr"])
}

func TestAppendHistoryRejectsNonObjectBody(t *testing.T) {
	r := historyTestRouter(&stubHistoryService{})

	post := httptest.NewRequest(http.MethodPost, "/api/history",
		strings.NewReader(`[1, 2, 3]`))
	post.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, post)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
