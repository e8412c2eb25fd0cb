package drafts

import (
	"context"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/add_user"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/update_user"
)

// UserAdder runs the add user usecase.
type UserAdder interface {
	Execute(ctx context.Context, req *add_user.Request) (*domain.User, error)
}

// UserUpdater runs the update user usecase.
type UserUpdater interface {
	Execute(ctx context.Context, req *update_user.Request) (*domain.User, error)
}

// UserDraft is the add/edit user form.
type UserDraft struct {
	Name   string `json:"name" validate:"notblank"`
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"oneof=admin manager employee"`
	Avatar string `json:"avatar" validate:"omitempty,url"`
}

// NewUserDraft returns an empty form with the employee role preselected.
func NewUserDraft() *UserDraft {
	return &UserDraft{Role: string(domain.RoleEmployee)}
}

// EditUserDraft returns the form prefilled from u.
func EditUserDraft(u domain.User) *UserDraft {
	return &UserDraft{
		Name:   u.Name,
		Email:  u.Email,
		Role:   string(u.Role),
		Avatar: u.Avatar,
	}
}

// Validate checks every field and reports all failures at once.
func (d *UserDraft) Validate() error {
	return check(d)
}

// Details converts the draft to domain fields.
func (d *UserDraft) Details() domain.UserDetails {
	return domain.UserDetails{
		Name:   d.Name,
		Email:  d.Email,
		Role:   domain.Role(d.Role),
		Avatar: d.Avatar,
	}
}

// Commit validates the draft and adds the user.
func (d *UserDraft) Commit(ctx context.Context, adder UserAdder) (*domain.User, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return adder.Execute(ctx, &add_user.Request{Details: d.Details()})
}

// CommitUpdate validates the draft and replaces user userID.
func (d *UserDraft) CommitUpdate(ctx context.Context, userID string, updater UserUpdater) (*domain.User, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return updater.Execute(ctx, &update_user.Request{UserID: userID, Details: d.Details()})
}
