package model

import (
	"time"
)

type MembershipRequest struct {
	ID        string           `db:"id" json:"id"`
	Name      string           `db:"name" json:"name"`
	Email     string           `db:"email" json:"email"`
	Reason    string           `db:"reason" json:"reason"`
	Status    ModerationStatus `db:"status" json:"status"`
	CreatedAt time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time        `db:"updated_at" json:"updatedAt"`
}

type CreateMembershipRequestParams struct {
	Name   string
	Email  string
	Reason string
}
