package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nindium/bookclub-server/internal/model"
)

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *mockAdminRepo) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *mockAdminRepo) CreateIfNotExists(ctx context.Context, params model.CreateAdminParams) (*model.Admin, bool, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.Admin), args.Bool(1), args.Error(2)
}

type mockMembershipRepo struct {
	mock.Mock
}

func (m *mockMembershipRepo) FindPendingByEmail(ctx context.Context, email string) (*model.MembershipRequest, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MembershipRequest), args.Error(1)
}

func (m *mockMembershipRepo) FindAll(ctx context.Context, status model.ModerationStatus, limit, offset int) ([]model.MembershipRequest, int, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]model.MembershipRequest), args.Int(1), args.Error(2)
}

func (m *mockMembershipRepo) Create(ctx context.Context, params model.CreateMembershipRequestParams) (*model.MembershipRequest, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MembershipRequest), args.Error(1)
}

func (m *mockMembershipRepo) UpdateStatus(ctx context.Context, id string, status model.ModerationStatus) (*model.MembershipRequest, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MembershipRequest), args.Error(1)
}

type mockBookRepo struct {
	mock.Mock
}

func (m *mockBookRepo) FindByID(ctx context.Context, id string) (*model.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *mockBookRepo) FindAll(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *mockBookRepo) FindAllWithReviewCount(ctx context.Context, limit, offset int) ([]model.BookWithReviewCount, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]model.BookWithReviewCount), args.Int(1), args.Error(2)
}

func (m *mockBookRepo) Create(ctx context.Context, params model.CreateBookParams) (*model.Book, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *mockBookRepo) Update(ctx context.Context, id string, params model.UpdateBookParams) (*model.Book, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *mockBookRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) FindApproved(ctx context.Context, bookID string) ([]model.ReviewWithBook, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReviewWithBook), args.Error(1)
}

func (m *mockReviewRepo) FindApprovedByBookIDs(ctx context.Context, bookIDs []string) ([]model.PublicReview, error) {
	args := m.Called(ctx, bookIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PublicReview), args.Error(1)
}

func (m *mockReviewRepo) FindAll(ctx context.Context, status model.ModerationStatus, limit, offset int) ([]model.ReviewWithBook, int, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]model.ReviewWithBook), args.Int(1), args.Error(2)
}

func (m *mockReviewRepo) Create(ctx context.Context, params model.CreateReviewParams) (*model.Review, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *mockReviewRepo) UpdateStatus(ctx context.Context, id string, status model.ModerationStatus) (*model.Review, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
