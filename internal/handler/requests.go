package handler

import (
	"strings"

	"github.com/nindium/bookclub-server/internal/model"
	"github.com/nindium/bookclub-server/internal/validation"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=200"`
}

func (r *loginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

type createBookRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Author      string  `json:"author" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitnil,max=5000"`
	ImageURL    *string `json:"imageUrl" validate:"omitnil,http_url,max=2048"`
}

func (r *createBookRequest) Normalize() {
	r.Title = validation.SanitizeText(r.Title)
	r.Author = validation.SanitizeText(r.Author)
	r.Description = validation.OptionalText(r.Description)
	r.ImageURL = trimOptional(r.ImageURL)
}

func (r *createBookRequest) params() model.CreateBookParams {
	return model.CreateBookParams{
		Title:       r.Title,
		Author:      r.Author,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

// updateBookRequest only changes fields present in the body.
type updateBookRequest struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=200"`
	Author      *string `json:"author" validate:"omitnil,min=1,max=200"`
	Description *string `json:"description" validate:"omitnil,max=5000"`
	ImageURL    *string `json:"imageUrl" validate:"omitnil,http_url,max=2048"`
}

func (r *updateBookRequest) Normalize() {
	if r.Title != nil {
		title := validation.SanitizeText(*r.Title)
		r.Title = &title
	}
	if r.Author != nil {
		author := validation.SanitizeText(*r.Author)
		r.Author = &author
	}
	r.Description = validation.OptionalText(r.Description)
	r.ImageURL = trimOptional(r.ImageURL)
}

func (r *updateBookRequest) params() model.UpdateBookParams {
	return model.UpdateBookParams{
		Title:       r.Title,
		Author:      r.Author,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

type createReviewRequest struct {
	BookID   string `json:"bookId" validate:"required,uuid"`
	Reviewer string `json:"reviewer" validate:"required,max=100"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"required,min=10,max=5000"`
}

func (r *createReviewRequest) Normalize() {
	r.BookID = strings.TrimSpace(r.BookID)
	r.Reviewer = validation.SanitizeText(r.Reviewer)
	r.Comment = validation.SanitizeText(r.Comment)
}

type membershipRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Email  string `json:"email" validate:"required,email,max=254"`
	Reason string `json:"reason" validate:"required,min=10,max=2000"`
}

func (r *membershipRequest) Normalize() {
	r.Name = validation.SanitizeText(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Reason = validation.SanitizeText(r.Reason)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
