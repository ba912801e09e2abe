package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	apperrors "github.com/nindium/bookclub-server/internal/errors"
	"github.com/nindium/bookclub-server/internal/model"
	"github.com/nindium/bookclub-server/internal/repository"
	"github.com/nindium/bookclub-server/internal/util"
)

type AdminService struct {
	admins repository.AdminRepository
	// dummyHash is compared against when the email is unknown so both
	// failure paths spend one bcrypt round.
	dummyHash string
}

func NewAdminService(admins repository.AdminRepository) *AdminService {
	dummy, err := util.HashPassword("bookclub-unknown-admin-placeholder")
	if err != nil {
		log.Warn().Err(err).Msg("failed to prepare dummy password hash")
	}
	return &AdminService{admins: admins, dummyHash: dummy}
}

// NormalizeEmail is applied both when seeding and when logging in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Authenticate returns the admin for a matching email and password. Unknown
// email and wrong password produce the same InvalidCredentials error.
func (s *AdminService) Authenticate(ctx context.Context, email, password string) (*model.Admin, error) {
	admin, err := s.admins.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("find admin by email: %w", err)
	}

	if admin == nil {
		util.CheckPasswordHash(password, s.dummyHash)
		return nil, apperrors.InvalidCredentials()
	}

	if !util.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, apperrors.InvalidCredentials()
	}

	return admin, nil
}

// Seed creates an admin unless one with the same email exists. The existing
// record, including its password, is left untouched.
func (s *AdminService) Seed(ctx context.Context, email, name, password string) (*model.Admin, bool, error) {
	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}

	return s.admins.CreateIfNotExists(ctx, model.CreateAdminParams{
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
	})
}
