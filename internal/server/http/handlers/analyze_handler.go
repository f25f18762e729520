package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polyforge/printdesk/internal/domain/model"
	"github.com/polyforge/printdesk/internal/server/http/dto"
)

// AnalyzeHandler serves model analysis for client-side estimate preview.
type AnalyzeHandler struct {
	facade PrintShopFacade
}

// NewAnalyzeHandler constructs AnalyzeHandler.
func NewAnalyzeHandler(facade PrintShopFacade) *AnalyzeHandler {
	return &AnalyzeHandler{facade: facade}
}

// Analyze handles POST /api/analyze-model. The estimate derives from file size
// only, so the upload body is never read here.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	header, err := c.FormFile(modelFileField)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "model file is required"})
		return
	}

	estimate, err := h.facade.AnalyzeModel(model.Upload{
		FileName: header.Filename,
		Size:     header.Size,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, estimate)
}
