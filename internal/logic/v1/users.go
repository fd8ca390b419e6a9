package v1

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/duynhne/store-service/internal/core/domain"
)

// UserService implements user management business rules. Any authenticated
// actor may read, update, or delete any user record; the API has no
// self-only restriction. That matches the observed behavior of the system
// this service replaces — see DESIGN.md before tightening it.
type UserService struct {
	users          domain.UserRepository
	passwordMinLen int
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository, passwordMinLen int) *UserService {
	return &UserService{users: users, passwordMinLen: passwordMinLen}
}

// UserUpdateParams carries a partial user update. Nil fields are left
// unchanged. A non-nil Password requires a matching PasswordConfirmation
// and is re-hashed before storage.
type UserUpdateParams struct {
	Name                 *string
	Email                *string
	Password             *string
	PasswordConfirmation *string
}

// UserStats holds signup counts for calendar periods ending now.
type UserStats struct {
	Today     int64
	ThisWeek  int64
	ThisMonth int64
}

// List returns all active users.
func (s *UserService) List(ctx context.Context) ([]domain.UserRow, error) {
	return s.users.List(ctx)
}

// Get returns the active user with the given id or ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.UserRow, error) {
	row, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query user %d: %w", id, err)
	}
	if row == nil {
		return nil, fmt.Errorf("get user %d: %w", id, ErrUserNotFound)
	}
	return row, nil
}

// Update applies a partial update. Policy failures aggregate into a single
// *ValidationError and nothing is written. A soft-deleted or missing user
// yields ErrUserNotFound.
func (s *UserService) Update(ctx context.Context, id int64, p UserUpdateParams) (*domain.UserRow, error) {
	ve := NewValidationError()

	var passwordHash *string
	if p.Password != nil {
		if len(*p.Password) < s.passwordMinLen {
			ve.Add("password", fmt.Sprintf("The password must be at least %d characters.", s.passwordMinLen))
		}
		if p.PasswordConfirmation == nil || *p.Password != *p.PasswordConfirmation {
			ve.Add("password", "The password confirmation does not match.")
		}
	}

	if p.Email != nil {
		taken, err := s.users.EmailTaken(ctx, *p.Email, id)
		if err != nil {
			return nil, fmt.Errorf("check existing email: %w", err)
		}
		if taken {
			ve.Add("email", "The email has already been taken.")
		}
	}

	if ve.HasErrors() {
		return nil, ve
	}

	if p.Password != nil {
		hash, err := hashPassword(*p.Password)
		if err != nil {
			return nil, err
		}
		passwordHash = &hash
	}

	row, err := s.users.Update(ctx, id, domain.UserUpdate{
		Name:         p.Name,
		Email:        p.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailConflict) {
			ve.Add("email", "The email has already been taken.")
			return nil, ve
		}
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	if row == nil {
		return nil, fmt.Errorf("update user %d: %w", id, ErrUserNotFound)
	}

	return row, nil
}

// Delete soft-deletes the user: the record stays in storage but disappears
// from every query, and its sessions stop verifying.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	ok, err := s.users.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("delete user %d: %w", id, ErrUserNotFound)
	}
	return nil
}

// Stats counts signups for today, this ISO week, and this calendar month.
// Period boundaries are computed in server-local time; each range runs from
// the period start to now.
func (s *UserService) Stats(ctx context.Context) (*UserStats, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// ISO weeks start on Monday.
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := dayStart.AddDate(0, 0, -(weekday - 1))

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	today, err := s.users.CountCreatedBetween(ctx, dayStart, now)
	if err != nil {
		return nil, fmt.Errorf("count signups today: %w", err)
	}
	week, err := s.users.CountCreatedBetween(ctx, weekStart, now)
	if err != nil {
		return nil, fmt.Errorf("count signups this week: %w", err)
	}
	month, err := s.users.CountCreatedBetween(ctx, monthStart, now)
	if err != nil {
		return nil, fmt.Errorf("count signups this month: %w", err)
	}

	return &UserStats{Today: today, ThisWeek: week, ThisMonth: month}, nil
}
