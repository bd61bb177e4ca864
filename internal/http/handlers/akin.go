package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/kapu/akin-sheet-go/internal/domain"
	"github.com/kapu/akin-sheet-go/internal/http/response"
	"github.com/kapu/akin-sheet-go/internal/service/sheet"
	"go.uber.org/zap"
)

// AkinHandler serves the composite character state and the profile upsert.
type AkinHandler struct {
	sheet  *sheet.Sheet
	logger *zap.Logger
}

func NewAkinHandler(s *sheet.Sheet, logger *zap.Logger) *AkinHandler {
	return &AkinHandler{sheet: s, logger: logger}
}

// GetState handles GET /api/akin.
func (h *AkinHandler) GetState(c *gin.Context) {
	state, err := h.sheet.State.ReadAll(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, state)
}

// UpsertProfile handles PUT /api/akin and returns the stored profile.
func (h *AkinHandler) UpsertProfile(c *gin.Context) {
	var input domain.ProfileInput
	if err := bindBody(c, &input); err != nil {
		response.RespondBadRequest(c, err)
		return
	}

	profile, err := h.sheet.Profile.Upsert(c.Request.Context(), input)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, profile)
}
