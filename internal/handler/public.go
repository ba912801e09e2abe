package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nindium/bookclub-server/internal/model"
	"github.com/nindium/bookclub-server/internal/service"
	"github.com/nindium/bookclub-server/internal/validation"
)

// PublicHandler serves the unauthenticated catalog and submission endpoints
// under /api.
type PublicHandler struct {
	books       *service.BookService
	reviews     *service.ReviewService
	memberships *service.MembershipService
	submitLimit func(http.Handler) http.Handler
}

func NewPublicHandler(
	books *service.BookService,
	reviews *service.ReviewService,
	memberships *service.MembershipService,
	submitLimit func(http.Handler) http.Handler,
) *PublicHandler {
	if submitLimit == nil {
		submitLimit = passthrough
	}
	return &PublicHandler{
		books:       books,
		reviews:     reviews,
		memberships: memberships,
		submitLimit: submitLimit,
	}
}

func (h *PublicHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/books", h.ListBooks)
	r.Get("/reviews", h.ListReviews)

	r.Group(func(r chi.Router) {
		r.Use(h.submitLimit)
		r.Post("/reviews", h.SubmitReview)
		r.Post("/membership", h.SubmitMembership)
	})

	return r
}

func (h *PublicHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.ListPublic(r.Context())
	if err != nil {
		writeError(w, r, err, "failed to fetch books")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"books": books})
}

func (h *PublicHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	bookID := r.URL.Query().Get("bookId")
	if bookID != "" {
		if err := validation.ID(bookID); err != nil {
			writeError(w, r, err, "invalid book id")
			return
		}
	}

	reviews, err := h.reviews.ListApproved(r.Context(), bookID)
	if err != nil {
		writeError(w, r, err, "failed to fetch reviews")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"reviews": reviews})
}

func (h *PublicHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := validation.Decode(r.Body, &req); err != nil {
		writeError(w, r, err, "invalid review payload")
		return
	}

	review, err := h.reviews.Submit(r.Context(), model.CreateReviewParams{
		BookID:   req.BookID,
		Reviewer: req.Reviewer,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		writeError(w, r, err, "failed to submit review")
		return
	}

	writeSuccess(w, http.StatusCreated, "Your review has been submitted and is pending approval!", review)
}

func (h *PublicHandler) SubmitMembership(w http.ResponseWriter, r *http.Request) {
	var req membershipRequest
	if err := validation.Decode(r.Body, &req); err != nil {
		writeError(w, r, err, "invalid membership payload")
		return
	}

	created, err := h.memberships.Submit(r.Context(), model.CreateMembershipRequestParams{
		Name:   req.Name,
		Email:  req.Email,
		Reason: req.Reason,
	})
	if err != nil {
		writeError(w, r, err, "failed to submit membership request")
		return
	}

	writeSuccess(w, http.StatusCreated, "Your membership request has been submitted successfully!", created)
}
