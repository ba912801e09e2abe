package repository

import (
	"context"

	"github.com/nindium/bookclub-server/internal/database"
	"github.com/nindium/bookclub-server/internal/model"
)

type MembershipRequestRepository interface {
	FindPendingByEmail(ctx context.Context, email string) (*model.MembershipRequest, error)
	FindAll(ctx context.Context, status model.ModerationStatus, limit, offset int) ([]model.MembershipRequest, int, error)
	Create(ctx context.Context, params model.CreateMembershipRequestParams) (*model.MembershipRequest, error)
	// UpdateStatus returns nil when no request has the given id.
	UpdateStatus(ctx context.Context, id string, status model.ModerationStatus) (*model.MembershipRequest, error)
}

type membershipRequestRepo struct {
	db database.DBTX
}

func NewMembershipRequestRepository(db database.DBTX) MembershipRequestRepository {
	return &membershipRequestRepo{db: db}
}

func (r *membershipRequestRepo) FindPendingByEmail(ctx context.Context, email string) (*model.MembershipRequest, error) {
	var req model.MembershipRequest
	err := r.db.GetContext(ctx, &req, `
		SELECT * FROM membership_requests
		WHERE LOWER(email) = LOWER($1) AND status = $2
		LIMIT 1
	`, email, model.StatusPending)
	return HandleNotFound(&req, err)
}

func (r *membershipRequestRepo) FindAll(ctx context.Context, status model.ModerationStatus, limit, offset int) ([]model.MembershipRequest, int, error) {
	requests := []model.MembershipRequest{}
	err := r.db.SelectContext(ctx, &requests, `
		SELECT * FROM membership_requests
		WHERE ($1::text = '' OR status = $1::text)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, string(status), limitArg(limit), offset)
	if err != nil {
		return nil, 0, err
	}

	var total int
	err = r.db.GetContext(ctx, &total, `
		SELECT COUNT(*) FROM membership_requests WHERE ($1::text = '' OR status = $1::text)
	`, string(status))
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *membershipRequestRepo) Create(ctx context.Context, params model.CreateMembershipRequestParams) (*model.MembershipRequest, error) {
	var req model.MembershipRequest
	err := r.db.GetContext(ctx, &req, `
		INSERT INTO membership_requests (name, email, reason)
		VALUES ($1, $2, $3)
		RETURNING *
	`, params.Name, params.Email, params.Reason)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *membershipRequestRepo) UpdateStatus(ctx context.Context, id string, status model.ModerationStatus) (*model.MembershipRequest, error) {
	var req model.MembershipRequest
	err := r.db.GetContext(ctx, &req, `
		UPDATE membership_requests SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING *
	`, id, status)
	return HandleNotFound(&req, err)
}
