package repository

import (
	"context"

	"github.com/nindium/bookclub-server/internal/database"
	"github.com/nindium/bookclub-server/internal/model"
)

type BookRepository interface {
	FindByID(ctx context.Context, id string) (*model.Book, error)
	FindAll(ctx context.Context) ([]model.Book, error)
	FindAllWithReviewCount(ctx context.Context, limit, offset int) ([]model.BookWithReviewCount, int, error)
	Create(ctx context.Context, params model.CreateBookParams) (*model.Book, error)
	// Update returns nil when no book has the given id.
	Update(ctx context.Context, id string, params model.UpdateBookParams) (*model.Book, error)
	// Delete removes the book and, through the foreign key, its reviews.
	Delete(ctx context.Context, id string) (bool, error)
}

type bookRepo struct {
	db database.DBTX
}

func NewBookRepository(db database.DBTX) BookRepository {
	return &bookRepo{db: db}
}

func (r *bookRepo) FindByID(ctx context.Context, id string) (*model.Book, error) {
	var book model.Book
	err := r.db.GetContext(ctx, &book, `SELECT * FROM books WHERE id = $1`, id)
	return HandleNotFound(&book, err)
}

func (r *bookRepo) FindAll(ctx context.Context) ([]model.Book, error) {
	books := []model.Book{}
	err := r.db.SelectContext(ctx, &books, `SELECT * FROM books ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return books, nil
}

func (r *bookRepo) FindAllWithReviewCount(ctx context.Context, limit, offset int) ([]model.BookWithReviewCount, int, error) {
	books := []model.BookWithReviewCount{}
	err := r.db.SelectContext(ctx, &books, `
		SELECT b.*, COUNT(rv.id) AS review_count
		FROM books b
		LEFT JOIN reviews rv ON rv.book_id = b.id
		GROUP BY b.id
		ORDER BY b.created_at DESC
		LIMIT $1 OFFSET $2
	`, limitArg(limit), offset)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM books`); err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

func (r *bookRepo) Create(ctx context.Context, params model.CreateBookParams) (*model.Book, error) {
	var book model.Book
	err := r.db.GetContext(ctx, &book, `
		INSERT INTO books (title, author, description, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING *
	`, params.Title, params.Author, params.Description, params.ImageURL)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepo) Update(ctx context.Context, id string, params model.UpdateBookParams) (*model.Book, error) {
	var book model.Book
	err := r.db.GetContext(ctx, &book, `
		UPDATE books SET
			title = COALESCE($2, title),
			author = COALESCE($3, author),
			description = COALESCE($4, description),
			image_url = COALESCE($5, image_url),
			updated_at = NOW()
		WHERE id = $1
		RETURNING *
	`, id, params.Title, params.Author, params.Description, params.ImageURL)
	return HandleNotFound(&book, err)
}

func (r *bookRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
