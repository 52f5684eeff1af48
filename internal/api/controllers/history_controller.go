package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/services"
	"pulseboard/pkg/utils"
)

type HistoryController struct {
	historyService services.HistoryService
}

func NewHistoryController(historyService services.HistoryService) *HistoryController {
	return &HistoryController{
		historyService: historyService,
	}
}

func (h *HistoryController) GetHistory(c *gin.Context) {
	history, err := h.historyService.ReadAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, history, "History fetched successfully")
}

// AppendHistory accepts one flat object of metric fields; the capture
// time is assigned server-side.
func (h *HistoryController) AppendHistory(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Sprintf("%v: body must be a flat JSON object", utils.ErrInvalidSnapshot))
		return
	}

	snap, err := h.historyService.Append(c.Request.Context(), fields)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, snap, "Snapshot appended successfully")
}
