package v1

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/duynhne/store-service/internal/core/domain"
)

// In-memory repository implementations backing the service tests.
// They mirror the pgx repositories' contracts: soft-deleted users are
// invisible, lookups return (nil, nil) on a miss, and ownership misses
// on reviews look exactly like missing rows.

type memUserRow struct {
	domain.UserRow
	deletedAt *time.Time
}

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*memUserRow
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{rows: make(map[int64]*memUserRow)}
}

func (r *memUserRepo) Create(_ context.Context, name, email, passwordHash string) (*domain.UserRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.rows {
		if rec.deletedAt == nil && rec.Email == email {
			return nil, domain.ErrEmailConflict
		}
	}
	r.nextID++
	now := time.Now()
	rec := &memUserRow{UserRow: domain.UserRow{
		ID:           r.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}}
	r.rows[rec.ID] = rec
	row := rec.UserRow
	return &row, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*domain.UserRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[id]
	if !ok || rec.deletedAt != nil {
		return nil, nil
	}
	row := rec.UserRow
	return &row, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.UserRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.rows {
		if rec.deletedAt == nil && rec.Email == email {
			row := rec.UserRow
			return &row, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(_ context.Context) ([]domain.UserRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.UserRow
	for _, rec := range r.rows {
		if rec.deletedAt == nil {
			out = append(out, rec.UserRow)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memUserRepo) EmailTaken(_ context.Context, email string, excludeID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.rows {
		if rec.deletedAt == nil && rec.Email == email && rec.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUserRepo) Update(_ context.Context, id int64, upd domain.UserUpdate) (*domain.UserRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[id]
	if !ok || rec.deletedAt != nil {
		return nil, nil
	}
	if upd.Email != nil {
		for _, other := range r.rows {
			if other.ID != id && other.deletedAt == nil && other.Email == *upd.Email {
				return nil, domain.ErrEmailConflict
			}
		}
		rec.Email = *upd.Email
	}
	if upd.Name != nil {
		rec.Name = *upd.Name
	}
	if upd.PasswordHash != nil {
		rec.PasswordHash = *upd.PasswordHash
	}
	rec.UpdatedAt = time.Now()
	row := rec.UserRow
	return &row, nil
}

func (r *memUserRepo) SoftDelete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[id]
	if !ok || rec.deletedAt != nil {
		return false, nil
	}
	now := time.Now()
	rec.deletedAt = &now
	return true, nil
}

func (r *memUserRepo) CountCreatedBetween(_ context.Context, from, to time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, rec := range r.rows {
		if rec.deletedAt != nil {
			continue
		}
		if !rec.CreatedAt.Before(from) && !rec.CreatedAt.After(to) {
			n++
		}
	}
	return n, nil
}

// setCreatedAt backdates a user record for stats tests.
func (r *memUserRepo) setCreatedAt(id int64, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.rows[id]; ok {
		rec.CreatedAt = at
	}
}

type memSession struct {
	userID    int64
	expiresAt *time.Time
}

type memSessionRepo struct {
	mu       sync.Mutex
	users    *memUserRepo
	sessions map[string]memSession
}

func newMemSessionRepo(users *memUserRepo) *memSessionRepo {
	return &memSessionRepo{users: users, sessions: make(map[string]memSession)}
}

func (r *memSessionRepo) Create(_ context.Context, userID int64, tokenHash string, expiresAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[tokenHash] = memSession{userID: userID, expiresAt: expiresAt}
	return nil
}

func (r *memSessionRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.SessionRow, error) {
	r.mu.Lock()
	sess, ok := r.sessions[tokenHash]
	r.mu.Unlock()
	if !ok {
		return nil, nil
	}
	user, err := r.users.GetByID(ctx, sess.userID)
	if err != nil || user == nil {
		return nil, err
	}
	return &domain.SessionRow{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		ExpiresAt: sess.expiresAt,
	}, nil
}

type memProductRepo struct {
	mu      sync.Mutex
	nextID  int64
	rows    map[int64]*domain.ProductRow
	reviews *memReviewRepo
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{rows: make(map[int64]*domain.ProductRow)}
}

func (r *memProductRepo) Create(_ context.Context, name string, description *string, price float64, stock int, ownerID int64) (*domain.ProductRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	now := time.Now()
	row := &domain.ProductRow{
		ID:          r.nextID,
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.rows[row.ID] = row
	out := *row
	return &out, nil
}

func (r *memProductRepo) GetByID(_ context.Context, id int64) (*domain.ProductRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	out := *row
	return &out, nil
}

func (r *memProductRepo) List(_ context.Context) ([]domain.ProductRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.ProductRow
	for _, row := range r.rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProductRepo) Update(_ context.Context, id int64, upd domain.ProductUpdate) (*domain.ProductRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	if upd.Name != nil {
		row.Name = *upd.Name
	}
	if upd.Description != nil {
		row.Description = upd.Description
	}
	if upd.Price != nil {
		row.Price = *upd.Price
	}
	if upd.Stock != nil {
		row.Stock = *upd.Stock
	}
	row.UpdatedAt = time.Now()
	out := *row
	return &out, nil
}

func (r *memProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	if r.reviews != nil {
		r.reviews.deleteByProduct(id)
	}
	return true, nil
}

type memReviewRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*domain.ReviewRow
	users  *memUserRepo
}

func newMemReviewRepo(users *memUserRepo) *memReviewRepo {
	return &memReviewRepo{rows: make(map[int64]*domain.ReviewRow), users: users}
}

func (r *memReviewRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.ReviewRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.ReviewRow
	for _, row := range r.rows {
		if row.ProductID == productID {
			rec := *row
			if user, _ := r.users.GetByID(ctx, rec.AuthorID); user != nil {
				rec.AuthorName = user.Name
			}
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memReviewRepo) Create(_ context.Context, productID, authorID int64, rating int, comment *string) (*domain.ReviewRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	now := time.Now()
	row := &domain.ReviewRow{
		ID:        r.nextID,
		ProductID: productID,
		AuthorID:  authorID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.rows[row.ID] = row
	out := *row
	return &out, nil
}

func (r *memReviewRepo) UpdateOwned(_ context.Context, id, productID, authorID int64, rating int, comment *string) (*domain.ReviewRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.ProductID != productID || row.AuthorID != authorID {
		return nil, nil
	}
	row.Rating = rating
	if comment != nil {
		row.Comment = comment
	}
	row.UpdatedAt = time.Now()
	out := *row
	return &out, nil
}

func (r *memReviewRepo) DeleteOwned(_ context.Context, id, productID, authorID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.ProductID != productID || row.AuthorID != authorID {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *memReviewRepo) deleteByProduct(productID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, row := range r.rows {
		if row.ProductID == productID {
			delete(r.rows, id)
		}
	}
}
