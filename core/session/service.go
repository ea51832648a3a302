package session

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/entity"
	"github.com/edumanage/backend/storage/kv"
)

const usersKey = "edu_users"

type ProfileInput struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Avatar string `json:"avatar"`
}

type PasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// Service manages user identities. Login performs no credential check; it
// resolves a role choice to a stored identity.
type Service struct {
	users *entity.Store[User, *User]
}

func NewService(db kv.DB, logger core.Logger) *Service {
	return &Service{
		users: entity.NewStore[User, *User](db, usersKey, "u", SeedUsers(), logger),
	}
}

// Login matches email and role exactly, falls back to the first user of
// the requested role, then to the first user at all. The password, if
// any, is ignored.
func (svc *Service) Login(ctx context.Context, email string, role Role) (User, error) {
	users, err := svc.users.List(ctx)
	if err != nil {
		return User{}, err
	}
	if len(users) == 0 {
		return User{}, entity.ErrNotFound
	}

	email = core.CleanString(email, true)
	for _, usr := range users {
		if usr.Role == role && core.CleanString(usr.Email, true) == email {
			return usr, nil
		}
	}
	for _, usr := range users {
		if usr.Role == role {
			return usr, nil
		}
	}
	return users[0], nil
}

func (svc *Service) GetUser(ctx context.Context, id string) (User, error) {
	return svc.users.Get(ctx, id)
}

func (svc *Service) GetUserByEmail(ctx context.Context, email string) (User, error) {
	users, err := svc.users.List(ctx)
	if err != nil {
		return User{}, err
	}
	email = core.CleanString(email, true)
	for _, usr := range users {
		if core.CleanString(usr.Email, true) == email {
			return usr, nil
		}
	}
	return User{}, entity.ErrNotFound
}

// CreateUser registers a new identity with a bcrypt-hashed password.
func (svc *Service) CreateUser(ctx context.Context, name, email string, role Role, password string) (User, error) {
	if !role.Valid() {
		return User{}, core.NewValidationError(nil, core.FieldError{Field: "role", Error: "invalid role"})
	}
	usr := User{
		Name:  core.CleanString(name),
		Email: core.CleanString(email, true),
		Role:  role,
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		usr.PasswordHash = hash
	}
	return svc.users.Create(ctx, usr)
}

// UpdateProfile merges name, email and avatar over the stored identity.
func (svc *Service) UpdateProfile(ctx context.Context, id string, in ProfileInput) (User, error) {
	if err := core.TranslateValidationErrors(core.Validate.StructCtx(ctx, in)); err != nil {
		return User{}, err
	}
	return svc.users.Update(ctx, id, func(usr *User) {
		usr.Name = core.CleanString(in.Name)
		usr.Email = core.CleanString(in.Email, true)
		if in.Avatar != "" {
			usr.Avatar = in.Avatar
		}
	})
}

// ChangePassword stores a bcrypt hash of the new password. The current
// password is required but not verified against anything; login stays
// credential-free.
func (svc *Service) ChangePassword(ctx context.Context, id string, in PasswordInput) error {
	if err := core.TranslateValidationErrors(core.Validate.StructCtx(ctx, in)); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = svc.users.Update(ctx, id, func(usr *User) {
		usr.PasswordHash = hash
	})
	return err
}

// Reset restores the seed identities.
func (svc *Service) Reset(ctx context.Context) error {
	return svc.users.Reset(ctx)
}
