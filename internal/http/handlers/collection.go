package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/kapu/akin-sheet-go/internal/domain"
	"github.com/kapu/akin-sheet-go/internal/http/response"
	"github.com/kapu/akin-sheet-go/internal/service/sheet"
)

// CollectionHandler exposes create/update/delete for one collection kind.
type CollectionHandler[T domain.Record, In any] struct {
	store *sheet.CollectionStore[T, In]
}

func NewCollectionHandler[T domain.Record, In any](store *sheet.CollectionStore[T, In]) *CollectionHandler[T, In] {
	return &CollectionHandler[T, In]{store: store}
}

func (h *CollectionHandler[T, In]) Create(c *gin.Context) {
	var input In
	if err := bindBody(c, &input); err != nil {
		response.RespondBadRequest(c, err)
		return
	}

	created, err := h.store.Create(c.Request.Context(), input)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, created)
}

func (h *CollectionHandler[T, In]) Update(c *gin.Context) {
	var input In
	if err := bindBody(c, &input); err != nil {
		response.RespondBadRequest(c, err)
		return
	}

	updated, err := h.store.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, updated)
}

func (h *CollectionHandler[T, In]) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondNoContent(c)
}
