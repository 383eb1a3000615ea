package services

import (
	"context"
	"errors"

	"shareit/internal/logger"
	"shareit/internal/models"
	"shareit/internal/repositories"
)

// Error variables
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name, email string) (*models.UserDB, error)
	Update(ctx context.Context, id int64, name, email string) (*models.UserDB, error)
	Delete(ctx context.Context, id int64) error
}

// UserService handles user account CRUD.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Get returns a user by id.
func (svc *UserService) Get(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Create registers a new user. Email uniqueness is enforced by the
// store's unique index rather than a racy pre-query.
func (svc *UserService) Create(ctx context.Context, name, email string) (*models.UserDB, error) {
	user, err := svc.writer.Save(ctx, name, email)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			logger.Log.Errorw("email already taken", "email", email)
			return nil, ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}
	return user, nil
}

// Update applies the set fields of patch to an existing user.
func (svc *UserService) Update(ctx context.Context, id int64, patch models.UserPatch) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load user for update", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	name := user.Name
	email := user.Email
	if patch.Name != nil {
		name = *patch.Name
	}
	if patch.Email != nil {
		email = *patch.Email
	}

	updated, err := svc.writer.Update(ctx, id, name, email)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			logger.Log.Errorw("email already taken", "email", email)
			return nil, ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	return updated, nil
}

// Delete removes a user by id.
func (svc *UserService) Delete(ctx context.Context, id int64) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}
	return nil
}
