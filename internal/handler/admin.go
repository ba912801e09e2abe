package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/nindium/bookclub-server/internal/audit"
	apperrors "github.com/nindium/bookclub-server/internal/errors"
	"github.com/nindium/bookclub-server/internal/middleware"
	"github.com/nindium/bookclub-server/internal/model"
	"github.com/nindium/bookclub-server/internal/service"
	"github.com/nindium/bookclub-server/internal/util"
	"github.com/nindium/bookclub-server/internal/validation"
)

// AdminHandler serves /api/admin. Only login and logout are reachable
// without a session; everything else sits behind the admin gate.
type AdminHandler struct {
	admins      *service.AdminService
	books       *service.BookService
	reviews     *service.ReviewService
	memberships *service.MembershipService
	sessions    *middleware.SessionManager
	gate        func(http.Handler) http.Handler
	csrf        func(http.Handler) http.Handler
	loginLimit  func(http.Handler) http.Handler
}

type AdminHandlerDeps struct {
	Admins      *service.AdminService
	Books       *service.BookService
	Reviews     *service.ReviewService
	Memberships *service.MembershipService
	Sessions    *middleware.SessionManager
	Gate        func(http.Handler) http.Handler
	CSRF        func(http.Handler) http.Handler
	LoginLimit  func(http.Handler) http.Handler
}

func NewAdminHandler(deps AdminHandlerDeps) *AdminHandler {
	h := &AdminHandler{
		admins:      deps.Admins,
		books:       deps.Books,
		reviews:     deps.Reviews,
		memberships: deps.Memberships,
		sessions:    deps.Sessions,
		gate:        deps.Gate,
		csrf:        deps.CSRF,
		loginLimit:  deps.LoginLimit,
	}
	if h.csrf == nil {
		h.csrf = passthrough
	}
	if h.loginLimit == nil {
		h.loginLimit = passthrough
	}
	return h
}

func passthrough(next http.Handler) http.Handler { return next }

func (h *AdminHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(h.loginLimit).Post("/login", h.Login)
	r.Post("/logout", h.Logout)

	r.Group(func(r chi.Router) {
		// Gate first: a request without a session is 401 before CSRF or
		// payload checks run.
		r.Use(h.gate)
		r.Use(h.csrf)

		r.Get("/me", h.Me)

		r.Get("/books", h.ListBooks)
		r.Post("/books", h.CreateBook)
		r.Patch("/books/{id}", h.UpdateBook)
		r.Delete("/books/{id}", h.DeleteBook)

		r.Get("/membership-requests", h.ListMembershipRequests)
		r.Patch("/membership-requests/{id}", h.DecideMembershipRequest)

		r.Get("/reviews", h.ListReviews)
		r.Patch("/reviews/{id}", h.DecideReview)
		r.Delete("/reviews/{id}", h.DeleteReview)
	})

	return r
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := validation.Decode(r.Body, &req); err != nil {
		writeError(w, r, err, "invalid login payload")
		return
	}

	admin, err := h.admins.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if apperrors.GetCode(err) == apperrors.ErrCodeInvalidCredentials {
			audit.LogFromRequest(r, audit.Event{
				Type:  audit.EventLoginFailure,
				Email: util.MaskEmail(req.Email),
			})
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
			return
		}
		log.Error().Err(err).Msg("admin login error")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to login"})
		return
	}

	if _, err := h.sessions.Issue(w, admin.ID); err != nil {
		log.Error().Err(err).Msg("failed to issue admin session")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to login"})
		return
	}

	audit.LogFromRequest(r, audit.Event{Type: audit.EventLoginSuccess, AdminID: admin.ID})
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"admin": map[string]string{
			"id":    admin.ID,
			"email": admin.Email,
			"name":  admin.Name,
		},
	})
}

// Logout always succeeds, with or without a live session.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	event := audit.Event{Type: audit.EventLogout}
	if session := h.sessions.Read(nil, r); session != nil {
		event.AdminID = session.AdminID
	}

	h.sessions.Revoke(w)
	audit.LogFromRequest(r, event)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Logout successful",
	})
}

func (h *AdminHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"admin": middleware.GetAdmin(r.Context())})
}

func (h *AdminHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	p := ParsePagination(r)

	books, total, err := h.books.ListAdmin(r.Context(), p.Limit, p.Offset)
	if err != nil {
		writeError(w, r, err, "failed to list books")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"books": books, "total": total})
}

func (h *AdminHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := validation.Decode(r.Body, &req); err != nil {
		writeError(w, r, err, "invalid book payload")
		return
	}

	book, err := h.books.Create(r.Context(), req.params())
	if err != nil {
		writeError(w, r, err, "failed to create book")
		return
	}

	h.audit(r, audit.EventBookCreate, map[string]interface{}{"book_id": book.ID})
	writeSuccess(w, http.StatusCreated, "Book created successfully", book)
}

func (h *AdminHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateBookRequest
	if err := validation.Decode(r.Body, &req); err != nil {
		writeError(w, r, err, "invalid book payload")
		return
	}

	book, err := h.books.Update(r.Context(), id, req.params())
	if err != nil {
		writeError(w, r, err, "failed to update book")
		return
	}

	h.audit(r, audit.EventBookUpdate, map[string]interface{}{"book_id": id})
	writeSuccess(w, http.StatusOK, "Book updated successfully", book)
}

func (h *AdminHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.books.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "failed to delete book")
		return
	}

	h.audit(r, audit.EventBookDelete, map[string]interface{}{"book_id": id})
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Book deleted successfully",
	})
}

func (h *AdminHandler) ListMembershipRequests(w http.ResponseWriter, r *http.Request) {
	status, err := ParseStatusFilter(r)
	if err != nil {
		writeError(w, r, err, "invalid status filter")
		return
	}
	p := ParsePagination(r)

	requests, total, err := h.memberships.List(r.Context(), status, p.Limit, p.Offset)
	if err != nil {
		writeError(w, r, err, "failed to list membership requests")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"requests": requests, "total": total})
}

func (h *AdminHandler) DecideMembershipRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req statusRequest
	if err := validation.Decode(r.Body, &req); err != nil {
		writeError(w, r, err, "invalid status payload")
		return
	}

	status := model.ModerationStatus(req.Status)
	updated, err := h.memberships.Decide(r.Context(), id, status)
	if err != nil {
		writeError(w, r, err, "failed to update membership request")
		return
	}

	h.audit(r, audit.EventMembershipDecide, map[string]interface{}{"request_id": id, "status": req.Status})
	writeSuccess(w, http.StatusOK, "Membership request "+strings.ToLower(req.Status), updated)
}

func (h *AdminHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	status, err := ParseStatusFilter(r)
	if err != nil {
		writeError(w, r, err, "invalid status filter")
		return
	}
	p := ParsePagination(r)

	reviews, total, err := h.reviews.ListAll(r.Context(), status, p.Limit, p.Offset)
	if err != nil {
		writeError(w, r, err, "failed to list reviews")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"reviews": reviews, "total": total})
}

func (h *AdminHandler) DecideReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req statusRequest
	if err := validation.Decode(r.Body, &req); err != nil {
		writeError(w, r, err, "invalid status payload")
		return
	}

	updated, err := h.reviews.Decide(r.Context(), id, model.ModerationStatus(req.Status))
	if err != nil {
		writeError(w, r, err, "failed to update review")
		return
	}

	h.audit(r, audit.EventReviewDecide, map[string]interface{}{"review_id": id, "status": req.Status})
	writeSuccess(w, http.StatusOK, "Review "+strings.ToLower(req.Status), updated)
}

func (h *AdminHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.reviews.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "failed to delete review")
		return
	}

	h.audit(r, audit.EventReviewDelete, map[string]interface{}{"review_id": id})
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Review deleted successfully",
	})
}

func (h *AdminHandler) audit(r *http.Request, eventType audit.EventType, details map[string]interface{}) {
	event := audit.Event{Type: eventType, Details: details}
	if admin := middleware.GetAdmin(r.Context()); admin != nil {
		event.AdminID = admin.ID
	}
	audit.LogFromRequest(r, event)
}

func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if err := validation.ID(id); err != nil {
		writeError(w, r, err, "invalid id")
		return "", false
	}
	return id, true
}
