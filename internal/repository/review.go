package repository

import (
	"context"

	"github.com/lib/pq"

	"github.com/nindium/bookclub-server/internal/database"
	"github.com/nindium/bookclub-server/internal/model"
)

const reviewWithBookColumns = `
	rv.*,
	b.id AS "book.id",
	b.title AS "book.title",
	b.author AS "book.author"
`

type ReviewRepository interface {
	// FindApproved lists approved reviews, optionally restricted to one book.
	FindApproved(ctx context.Context, bookID string) ([]model.ReviewWithBook, error)
	FindApprovedByBookIDs(ctx context.Context, bookIDs []string) ([]model.PublicReview, error)
	FindAll(ctx context.Context, status model.ModerationStatus, limit, offset int) ([]model.ReviewWithBook, int, error)
	Create(ctx context.Context, params model.CreateReviewParams) (*model.Review, error)
	// UpdateStatus returns nil when no review has the given id.
	UpdateStatus(ctx context.Context, id string, status model.ModerationStatus) (*model.Review, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type reviewRepo struct {
	db database.DBTX
}

func NewReviewRepository(db database.DBTX) ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) FindApproved(ctx context.Context, bookID string) ([]model.ReviewWithBook, error) {
	reviews := []model.ReviewWithBook{}
	err := r.db.SelectContext(ctx, &reviews, `
		SELECT `+reviewWithBookColumns+`
		FROM reviews rv
		JOIN books b ON b.id = rv.book_id
		WHERE rv.status = $1 AND ($2::text = '' OR rv.book_id::text = $2::text)
		ORDER BY rv.created_at DESC
	`, model.StatusApproved, bookID)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepo) FindApprovedByBookIDs(ctx context.Context, bookIDs []string) ([]model.PublicReview, error) {
	reviews := []model.PublicReview{}
	if len(bookIDs) == 0 {
		return reviews, nil
	}
	err := r.db.SelectContext(ctx, &reviews, `
		SELECT id, book_id, reviewer, rating, comment, created_at
		FROM reviews
		WHERE status = $1 AND book_id::text = ANY($2)
		ORDER BY created_at DESC
	`, model.StatusApproved, pq.Array(bookIDs))
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepo) FindAll(ctx context.Context, status model.ModerationStatus, limit, offset int) ([]model.ReviewWithBook, int, error) {
	reviews := []model.ReviewWithBook{}
	err := r.db.SelectContext(ctx, &reviews, `
		SELECT `+reviewWithBookColumns+`
		FROM reviews rv
		JOIN books b ON b.id = rv.book_id
		WHERE ($1::text = '' OR rv.status = $1::text)
		ORDER BY rv.created_at DESC
		LIMIT $2 OFFSET $3
	`, string(status), limitArg(limit), offset)
	if err != nil {
		return nil, 0, err
	}

	var total int
	err = r.db.GetContext(ctx, &total, `
		SELECT COUNT(*) FROM reviews WHERE ($1::text = '' OR status = $1::text)
	`, string(status))
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *reviewRepo) Create(ctx context.Context, params model.CreateReviewParams) (*model.Review, error) {
	var review model.Review
	err := r.db.GetContext(ctx, &review, `
		INSERT INTO reviews (book_id, reviewer, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING *
	`, params.BookID, params.Reviewer, params.Rating, params.Comment)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepo) UpdateStatus(ctx context.Context, id string, status model.ModerationStatus) (*model.Review, error) {
	var review model.Review
	err := r.db.GetContext(ctx, &review, `
		UPDATE reviews SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING *
	`, id, status)
	return HandleNotFound(&review, err)
}

func (r *reviewRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
