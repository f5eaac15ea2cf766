package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkpress/internal/app/service"
	"inkpress/internal/common"
	"inkpress/internal/domain/model"
)

type PostHandler struct {
	contentService *service.ContentService
}

func NewPostHandler(contentService *service.ContentService) *PostHandler {
	return &PostHandler{contentService: contentService}
}

// RegisterPublicRoutes exposes the published side of the blog.
func (h *PostHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.listPublished)
	r.Get("/{id}", h.getPublishedByID)
}

// RegisterRoutes exposes post management to authenticated callers.
func (h *PostHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.getByID)
	r.Delete("/{id}", h.deleteByID)
}

func (h *PostHandler) listPublished(w http.ResponseWriter, r *http.Request) {
	var posts []model.Post
	var err error

	if category := r.URL.Query().Get("category"); category != "" {
		posts, err = h.contentService.GetPublishedPostsByCategory(r.Context(), category)
	} else {
		posts, err = h.contentService.GetPublishedPosts(r.Context())
	}
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) getPublishedByID(w http.ResponseWriter, r *http.Request) {
	post, err := h.contentService.GetPostByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	if post == nil || !post.Published {
		common.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, post)
}

// list picks the filter variant from query parameters: ?published=true,
// ?category=<id>, ?minDate=<date>, or none for everything.
func (h *PostHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	published := q.Get("published") == "true"
	category := q.Get("category")
	minDate := q.Get("minDate")

	var posts []model.Post
	var err error

	switch {
	case published && category != "":
		posts, err = h.contentService.GetPublishedPostsByCategory(r.Context(), category)
	case published:
		posts, err = h.contentService.GetPublishedPosts(r.Context())
	case category != "":
		posts, err = h.contentService.GetPostsByCategory(r.Context(), category)
	case minDate != "":
		posts, err = h.contentService.GetPostsByMinDate(r.Context(), minDate)
	default:
		posts, err = h.contentService.GetAllPosts(r.Context())
	}
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) create(w http.ResponseWriter, r *http.Request) {
	var draft service.PostDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	post, err := h.contentService.AddPost(r.Context(), draft)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) getByID(w http.ResponseWriter, r *http.Request) {
	post, err := h.contentService.GetPostByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	if post == nil {
		common.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, post)
}

func (h *PostHandler) deleteByID(w http.ResponseWriter, r *http.Request) {
	if err := h.contentService.DeletePostByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
