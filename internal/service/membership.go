package service

import (
	"context"
	"fmt"

	apperrors "github.com/nindium/bookclub-server/internal/errors"
	"github.com/nindium/bookclub-server/internal/model"
	"github.com/nindium/bookclub-server/internal/repository"
)

type MembershipService struct {
	requests repository.MembershipRequestRepository
}

func NewMembershipService(requests repository.MembershipRequestRepository) *MembershipService {
	return &MembershipService{requests: requests}
}

// Submit records a new PENDING request. Only one pending request per email
// is accepted; decided requests do not block a new one.
func (s *MembershipService) Submit(ctx context.Context, params model.CreateMembershipRequestParams) (*model.MembershipRequest, error) {
	params.Email = NormalizeEmail(params.Email)

	existing, err := s.requests.FindPendingByEmail(ctx, params.Email)
	if err != nil {
		return nil, fmt.Errorf("find pending membership request: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ValidationError("A pending request with this email already exists")
	}

	return s.requests.Create(ctx, params)
}

func (s *MembershipService) List(ctx context.Context, status model.ModerationStatus, limit, offset int) ([]model.MembershipRequest, int, error) {
	return s.requests.FindAll(ctx, status, limit, offset)
}

func (s *MembershipService) Decide(ctx context.Context, id string, status model.ModerationStatus) (*model.MembershipRequest, error) {
	if !status.IsDecision() {
		return nil, apperrors.ValidationError("Invalid status")
	}

	req, err := s.requests.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update membership request status: %w", err)
	}
	if req == nil {
		return nil, apperrors.NotFound("Membership request")
	}
	return req, nil
}
