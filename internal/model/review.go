package model

import (
	"time"
)

type Review struct {
	ID        string           `db:"id" json:"id"`
	BookID    string           `db:"book_id" json:"bookId"`
	Reviewer  string           `db:"reviewer" json:"reviewer"`
	Rating    int              `db:"rating" json:"rating"`
	Comment   string           `db:"comment" json:"comment"`
	Status    ModerationStatus `db:"status" json:"status"`
	CreatedAt time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time        `db:"updated_at" json:"updatedAt"`
}

type BookSummary struct {
	ID     string `db:"id" json:"id"`
	Title  string `db:"title" json:"title"`
	Author string `db:"author" json:"author"`
}

type ReviewWithBook struct {
	Review
	Book BookSummary `db:"book" json:"book"`
}

// PublicReview is the subset of an approved review shown on a book card.
type PublicReview struct {
	ID        string    `db:"id" json:"id"`
	BookID    string    `db:"book_id" json:"-"`
	Reviewer  string    `db:"reviewer" json:"reviewer"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   string    `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type CreateReviewParams struct {
	BookID   string
	Reviewer string
	Rating   int
	Comment  string
}
