package model

import (
	"time"
)

type Book struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Author      string    `db:"author" json:"author"`
	Description *string   `db:"description" json:"description"`
	ImageURL    *string   `db:"image_url" json:"imageUrl"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// BookWithReviewCount is the admin catalog row.
type BookWithReviewCount struct {
	Book
	ReviewCount int `db:"review_count" json:"reviewCount"`
}

// BookWithReviews is the public catalog entry; Reviews only holds approved reviews.
type BookWithReviews struct {
	Book
	Reviews []PublicReview `json:"reviews"`
}

type CreateBookParams struct {
	Title       string
	Author      string
	Description *string
	ImageURL    *string
}

// UpdateBookParams leaves nil fields untouched.
type UpdateBookParams struct {
	Title       *string
	Author      *string
	Description *string
	ImageURL    *string
}

func (p UpdateBookParams) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Description == nil && p.ImageURL == nil
}
