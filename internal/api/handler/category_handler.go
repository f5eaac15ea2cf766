package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkpress/internal/app/service"
	"inkpress/internal/common"
)

type CategoryHandler struct {
	contentService *service.ContentService
}

func NewCategoryHandler(contentService *service.ContentService) *CategoryHandler {
	return &CategoryHandler{contentService: contentService}
}

func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Delete("/{id}", h.deleteByID)
}

func (h *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	categories, err := h.contentService.GetCategories(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var draft service.CategoryDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	category, err := h.contentService.AddCategory(r.Context(), draft)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) deleteByID(w http.ResponseWriter, r *http.Request) {
	if err := h.contentService.DeleteCategoryByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
