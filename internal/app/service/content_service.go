package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"inkpress/internal/common"
	"inkpress/internal/domain/model"
	"inkpress/internal/domain/repository"
)

// ContentService owns posts and categories and the association between them.
type ContentService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
}

func NewContentService(postRepo repository.PostRepository, categoryRepo repository.CategoryRepository) *ContentService {
	return &ContentService{postRepo: postRepo, categoryRepo: categoryRepo}
}

// PostDraft is post input data prior to normalization and persistence.
// Any caller-supplied date is ignored; the post date is stamped here.
type PostDraft struct {
	Title        string `json:"title"`
	Body         string `json:"body"`
	FeatureImage string `json:"feature_image"`
	Published    bool   `json:"published"`
	Category     string `json:"category"`
}

type CategoryDraft struct {
	Name string `json:"name"`
}

func (s *ContentService) AddPost(ctx context.Context, draft PostDraft) (*model.Post, error) {
	post := &model.Post{
		ID:           uuid.NewString(),
		Title:        draft.Title,
		Slug:         slug.Make(draft.Title),
		Body:         draft.Body,
		PostDate:     time.Now().UTC(),
		FeatureImage: optional(draft.FeatureImage),
		Published:    draft.Published,
		CategoryID:   optional(draft.Category),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("add post: %w", err)
	}
	return post, nil
}

func (s *ContentService) GetAllPosts(ctx context.Context) ([]model.Post, error) {
	return s.postRepo.List(ctx, repository.PostFilter{})
}

func (s *ContentService) GetPublishedPosts(ctx context.Context) ([]model.Post, error) {
	return s.postRepo.List(ctx, repository.PostFilter{PublishedOnly: true})
}

func (s *ContentService) GetPublishedPostsByCategory(ctx context.Context, categoryID string) ([]model.Post, error) {
	return s.postRepo.List(ctx, repository.PostFilter{PublishedOnly: true, CategoryID: categoryID})
}

func (s *ContentService) GetPostsByCategory(ctx context.Context, categoryID string) ([]model.Post, error) {
	return s.postRepo.List(ctx, repository.PostFilter{CategoryID: categoryID})
}

// GetPostsByMinDate returns posts whose date is on or after the given
// moment. The bound is inclusive.
func (s *ContentService) GetPostsByMinDate(ctx context.Context, minDateStr string) ([]model.Post, error) {
	minDate, err := parseMinDate(minDateStr)
	if err != nil {
		return nil, fmt.Errorf("posts by min date: %v: %w", err, common.ErrValidation)
	}
	return s.postRepo.List(ctx, repository.PostFilter{MinDate: &minDate})
}

// GetPostByID returns (nil, nil) when no post matches; absence is not an
// error at this surface.
func (s *ContentService) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("post by id: %w", err)
	}
	return post, nil
}

func (s *ContentService) GetCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *ContentService) AddCategory(ctx context.Context, draft CategoryDraft) (*model.Category, error) {
	category := &model.Category{
		ID:   uuid.NewString(),
		Name: optional(draft.Name),
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("add category: %w", err)
	}
	return category, nil
}

func (s *ContentService) DeletePostByID(ctx context.Context, id string) error {
	return s.postRepo.DeleteByID(ctx, id)
}

func (s *ContentService) DeleteCategoryByID(ctx context.Context, id string) error {
	return s.categoryRepo.DeleteByID(ctx, id)
}

func parseMinDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}
