package model

import (
	"time"
)

type Post struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Body         string    `json:"body"`
	PostDate     time.Time `json:"post_date"`
	FeatureImage *string   `json:"feature_image,omitempty"`
	Published    bool      `json:"published"`
	CategoryID   *string   `json:"category_id,omitempty"`
	CategoryName *string   `json:"category_name,omitempty"` // For display
	CreatedAt    time.Time `json:"created_at"`
}
