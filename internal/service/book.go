package service

import (
	"context"
	"fmt"

	apperrors "github.com/nindium/bookclub-server/internal/errors"
	"github.com/nindium/bookclub-server/internal/model"
	"github.com/nindium/bookclub-server/internal/repository"
)

type BookService struct {
	books   repository.BookRepository
	reviews repository.ReviewRepository
}

func NewBookService(books repository.BookRepository, reviews repository.ReviewRepository) *BookService {
	return &BookService{books: books, reviews: reviews}
}

// ListPublic returns every book, newest first, with only its approved reviews.
func (s *BookService) ListPublic(ctx context.Context) ([]model.BookWithReviews, error) {
	books, err := s.books.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	if len(books) == 0 {
		return []model.BookWithReviews{}, nil
	}

	ids := make([]string, len(books))
	for i, b := range books {
		ids[i] = b.ID
	}

	reviews, err := s.reviews.FindApprovedByBookIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find approved reviews: %w", err)
	}

	byBook := make(map[string][]model.PublicReview, len(books))
	for _, r := range reviews {
		byBook[r.BookID] = append(byBook[r.BookID], r)
	}

	result := make([]model.BookWithReviews, len(books))
	for i, b := range books {
		list := byBook[b.ID]
		if list == nil {
			list = []model.PublicReview{}
		}
		result[i] = model.BookWithReviews{Book: b, Reviews: list}
	}
	return result, nil
}

func (s *BookService) ListAdmin(ctx context.Context, limit, offset int) ([]model.BookWithReviewCount, int, error) {
	return s.books.FindAllWithReviewCount(ctx, limit, offset)
}

func (s *BookService) Create(ctx context.Context, params model.CreateBookParams) (*model.Book, error) {
	return s.books.Create(ctx, params)
}

func (s *BookService) Update(ctx context.Context, id string, params model.UpdateBookParams) (*model.Book, error) {
	if params.IsEmpty() {
		return nil, apperrors.ValidationError("No fields to update")
	}

	book, err := s.books.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}
	if book == nil {
		return nil, apperrors.NotFound("Book")
	}
	return book, nil
}

// Delete removes a book together with all of its reviews.
func (s *BookService) Delete(ctx context.Context, id string) error {
	deleted, err := s.books.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if !deleted {
		return apperrors.NotFound("Book")
	}
	return nil
}
