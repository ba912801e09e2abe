package repository

import (
	"context"

	"github.com/nindium/bookclub-server/internal/database"
	"github.com/nindium/bookclub-server/internal/model"
)

type AdminRepository interface {
	FindByID(ctx context.Context, id string) (*model.Admin, error)
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	// CreateIfNotExists leaves an existing admin with the same email untouched.
	CreateIfNotExists(ctx context.Context, params model.CreateAdminParams) (*model.Admin, bool, error)
}

type adminRepo struct {
	db database.DBTX
}

func NewAdminRepository(db database.DBTX) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.GetContext(ctx, &admin, `SELECT * FROM admins WHERE id = $1`, id)
	return HandleNotFound(&admin, err)
}

func (r *adminRepo) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.GetContext(ctx, &admin, `SELECT * FROM admins WHERE email = $1`, email)
	return HandleNotFound(&admin, err)
}

func (r *adminRepo) CreateIfNotExists(ctx context.Context, params model.CreateAdminParams) (*model.Admin, bool, error) {
	var admin model.Admin
	err := r.db.GetContext(ctx, &admin, `
		INSERT INTO admins (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING
		RETURNING *
	`, params.Email, params.PasswordHash, params.Name)
	created, err := HandleNotFound(&admin, err)
	if err != nil {
		return nil, false, err
	}
	if created != nil {
		return created, true, nil
	}

	existing, err := r.FindByEmail(ctx, params.Email)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}
