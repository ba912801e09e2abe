package service

import (
	"context"
	"fmt"

	apperrors "github.com/nindium/bookclub-server/internal/errors"
	"github.com/nindium/bookclub-server/internal/model"
	"github.com/nindium/bookclub-server/internal/repository"
)

type ReviewService struct {
	reviews repository.ReviewRepository
	books   repository.BookRepository
}

func NewReviewService(reviews repository.ReviewRepository, books repository.BookRepository) *ReviewService {
	return &ReviewService{reviews: reviews, books: books}
}

// Submit stores a PENDING review. It stays hidden from the public catalog
// until an admin approves it.
func (s *ReviewService) Submit(ctx context.Context, params model.CreateReviewParams) (*model.Review, error) {
	book, err := s.books.FindByID(ctx, params.BookID)
	if err != nil {
		return nil, fmt.Errorf("find book: %w", err)
	}
	if book == nil {
		return nil, apperrors.NotFound("Book")
	}

	return s.reviews.Create(ctx, params)
}

// ListApproved returns approved reviews, for one book when bookID is set.
func (s *ReviewService) ListApproved(ctx context.Context, bookID string) ([]model.ReviewWithBook, error) {
	return s.reviews.FindApproved(ctx, bookID)
}

func (s *ReviewService) ListAll(ctx context.Context, status model.ModerationStatus, limit, offset int) ([]model.ReviewWithBook, int, error) {
	return s.reviews.FindAll(ctx, status, limit, offset)
}

func (s *ReviewService) Decide(ctx context.Context, id string, status model.ModerationStatus) (*model.Review, error) {
	if !status.IsDecision() {
		return nil, apperrors.ValidationError("Invalid status")
	}

	review, err := s.reviews.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update review status: %w", err)
	}
	if review == nil {
		return nil, apperrors.NotFound("Review")
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	deleted, err := s.reviews.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if !deleted {
		return apperrors.NotFound("Review")
	}
	return nil
}
