package model

import (
	"time"
)

// Admin is created only by the out-of-band seed command.
type Admin struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type CreateAdminParams struct {
	Email        string
	PasswordHash string
	Name         string
}
