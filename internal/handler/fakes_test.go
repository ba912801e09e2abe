package handler

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nindium/bookclub-server/internal/model"
)

// fakeStore is an in-memory stand-in for Postgres shared by the fake repositories.
type fakeStore struct {
	mu       sync.Mutex
	admins   map[string]*model.Admin
	books    map[string]*model.Book
	reviews  map[string]*model.Review
	requests map[string]*model.MembershipRequest
	clock    time.Time
	err      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		admins:   make(map[string]*model.Admin),
		books:    make(map[string]*model.Book),
		reviews:  make(map[string]*model.Review),
		requests: make(map[string]*model.MembershipRequest),
		clock:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick returns strictly increasing timestamps so newest-first ordering is stable.
func (s *fakeStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

type fakeAdminRepo struct{ s *fakeStore }

func (r fakeAdminRepo) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}
	if a, ok := r.s.admins[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r fakeAdminRepo) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}
	for _, a := range r.s.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r fakeAdminRepo) CreateIfNotExists(ctx context.Context, p model.CreateAdminParams) (*model.Admin, bool, error) {
	if existing, _ := r.FindByEmail(ctx, p.Email); existing != nil {
		return existing, false, nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a := &model.Admin{ID: uuid.NewString(), Email: p.Email, PasswordHash: p.PasswordHash, Name: p.Name, CreatedAt: r.s.tick()}
	r.s.admins[a.ID] = a
	return a, true, nil
}

type fakeBookRepo struct{ s *fakeStore }

func (r fakeBookRepo) FindByID(ctx context.Context, id string) (*model.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if b, ok := r.s.books[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (r fakeBookRepo) sorted() []model.Book {
	books := make([]model.Book, 0, len(r.s.books))
	for _, b := range r.s.books {
		books = append(books, *b)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].CreatedAt.After(books[j].CreatedAt) })
	return books
}

func (r fakeBookRepo) FindAll(ctx context.Context) ([]model.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}
	return r.sorted(), nil
}

func (r fakeBookRepo) FindAllWithReviewCount(ctx context.Context, limit, offset int) ([]model.BookWithReviewCount, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	books := r.sorted()
	result := []model.BookWithReviewCount{}
	for i, b := range books {
		if i < offset || (limit > 0 && len(result) >= limit) {
			continue
		}
		count := 0
		for _, rv := range r.s.reviews {
			if rv.BookID == b.ID {
				count++
			}
		}
		result = append(result, model.BookWithReviewCount{Book: b, ReviewCount: count})
	}
	return result, len(books), nil
}

func (r fakeBookRepo) Create(ctx context.Context, p model.CreateBookParams) (*model.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.tick()
	b := &model.Book{ID: uuid.NewString(), Title: p.Title, Author: p.Author, Description: p.Description, ImageURL: p.ImageURL, CreatedAt: now, UpdatedAt: now}
	r.s.books[b.ID] = b
	cp := *b
	return &cp, nil
}

func (r fakeBookRepo) Update(ctx context.Context, id string, p model.UpdateBookParams) (*model.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.books[id]
	if !ok {
		return nil, nil
	}
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Description != nil {
		b.Description = p.Description
	}
	if p.ImageURL != nil {
		b.ImageURL = p.ImageURL
	}
	b.UpdatedAt = r.s.tick()
	cp := *b
	return &cp, nil
}

func (r fakeBookRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.books[id]; !ok {
		return false, nil
	}
	delete(r.s.books, id)
	for rid, rv := range r.s.reviews {
		if rv.BookID == id {
			delete(r.s.reviews, rid)
		}
	}
	return true, nil
}

type fakeReviewRepo struct{ s *fakeStore }

func (r fakeReviewRepo) withBook(filter func(*model.Review) bool) []model.ReviewWithBook {
	result := []model.ReviewWithBook{}
	for _, rv := range r.s.reviews {
		if !filter(rv) {
			continue
		}
		b := r.s.books[rv.BookID]
		result = append(result, model.ReviewWithBook{
			Review: *rv,
			Book:   model.BookSummary{ID: b.ID, Title: b.Title, Author: b.Author},
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result
}

func (r fakeReviewRepo) FindApproved(ctx context.Context, bookID string) ([]model.ReviewWithBook, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.withBook(func(rv *model.Review) bool {
		return rv.Status == model.StatusApproved && (bookID == "" || rv.BookID == bookID)
	}), nil
}

func (r fakeReviewRepo) FindApprovedByBookIDs(ctx context.Context, bookIDs []string) ([]model.PublicReview, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wanted := make(map[string]bool, len(bookIDs))
	for _, id := range bookIDs {
		wanted[id] = true
	}
	result := []model.PublicReview{}
	for _, rv := range r.s.reviews {
		if rv.Status != model.StatusApproved || !wanted[rv.BookID] {
			continue
		}
		result = append(result, model.PublicReview{
			ID: rv.ID, BookID: rv.BookID, Reviewer: rv.Reviewer,
			Rating: rv.Rating, Comment: rv.Comment, CreatedAt: rv.CreatedAt,
		})
	}
	return result, nil
}

func (r fakeReviewRepo) FindAll(ctx context.Context, status model.ModerationStatus, limit, offset int) ([]model.ReviewWithBook, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := r.withBook(func(rv *model.Review) bool { return status == "" || rv.Status == status })
	total := len(all)
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return all[offset:end], total, nil
}

func (r fakeReviewRepo) Create(ctx context.Context, p model.CreateReviewParams) (*model.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.tick()
	rv := &model.Review{ID: uuid.NewString(), BookID: p.BookID, Reviewer: p.Reviewer, Rating: p.Rating, Comment: p.Comment, Status: model.StatusPending, CreatedAt: now, UpdatedAt: now}
	r.s.reviews[rv.ID] = rv
	cp := *rv
	return &cp, nil
}

func (r fakeReviewRepo) UpdateStatus(ctx context.Context, id string, status model.ModerationStatus) (*model.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rv, ok := r.s.reviews[id]
	if !ok {
		return nil, nil
	}
	rv.Status = status
	rv.UpdatedAt = r.s.tick()
	cp := *rv
	return &cp, nil
}

func (r fakeReviewRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reviews[id]; !ok {
		return false, nil
	}
	delete(r.s.reviews, id)
	return true, nil
}

type fakeMembershipRepo struct{ s *fakeStore }

func (r fakeMembershipRepo) FindPendingByEmail(ctx context.Context, email string) (*model.MembershipRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.requests {
		if strings.EqualFold(m.Email, email) && m.Status == model.StatusPending {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r fakeMembershipRepo) FindAll(ctx context.Context, status model.ModerationStatus, limit, offset int) ([]model.MembershipRequest, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := []model.MembershipRequest{}
	for _, m := range r.s.requests {
		if status == "" || m.Status == status {
			all = append(all, *m)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := len(all)
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return all[offset:end], total, nil
}

func (r fakeMembershipRepo) Create(ctx context.Context, p model.CreateMembershipRequestParams) (*model.MembershipRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.tick()
	m := &model.MembershipRequest{ID: uuid.NewString(), Name: p.Name, Email: p.Email, Reason: p.Reason, Status: model.StatusPending, CreatedAt: now, UpdatedAt: now}
	r.s.requests[m.ID] = m
	cp := *m
	return &cp, nil
}

func (r fakeMembershipRepo) UpdateStatus(ctx context.Context, id string, status model.ModerationStatus) (*model.MembershipRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.requests[id]
	if !ok {
		return nil, nil
	}
	m.Status = status
	m.UpdatedAt = r.s.tick()
	cp := *m
	return &cp, nil
}
