package elimu

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/elimuhub/elimu-go/internal/validate"
	"github.com/pkg/errors"
)

// userService implements the UserService interface
type userService struct {
	client *Client
}

// List retrieves a page of users. A "role" entry in params.Filters narrows
// by UserRole.
func (s *userService) List(ctx context.Context, params *ListParams) (*UserList, error) {
	raw, err := s.client.fetchList(ctx, ResourceUsers, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	var users []*User
	pg, err := decodeList(raw, "users", &users)
	if err != nil {
		return nil, err
	}

	return &UserList{Users: users, Pagination: pg}, nil
}

func (s *userService) Get(ctx context.Context, userID string) (*User, error) {
	raw, err := s.client.fetchOne(ctx, ResourceUsers, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	var user User
	if err := decodeObject(raw, "user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) Create(ctx context.Context, params *CreateUserParams) (*User, error) {
	if params == nil {
		params = &CreateUserParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	var err error
	if params.Avatar != nil {
		form, ferr := formFromParams(params, map[string]*Attachment{"avatar": params.Avatar})
		if ferr != nil {
			return nil, ferr
		}
		err = s.client.mutateForm(ctx, http.MethodPost, "/users", ResourceUsers, form, &raw, "User created")
	} else {
		err = s.client.mutate(ctx, http.MethodPost, "/users", ResourceUsers, params, &raw, "User created")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	var user User
	if err := decodeObject(raw, "user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) Update(ctx context.Context, userID string, params *UpdateUserParams) (*User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidID
	}
	if params == nil {
		params = &UpdateUserParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	var err error
	if params.Avatar != nil {
		form, ferr := formFromParams(params, map[string]*Attachment{"avatar": params.Avatar})
		if ferr != nil {
			return nil, ferr
		}
		err = s.client.mutateForm(ctx, http.MethodPut, "/users/"+userID, ResourceUsers, form, &raw, "User updated")
	} else {
		err = s.client.mutate(ctx, http.MethodPut, "/users/"+userID, ResourceUsers, params, &raw, "User updated")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	var user User
	if err := decodeObject(raw, "user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) Delete(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidID
	}
	return errors.Wrap(
		s.client.mutate(ctx, http.MethodDelete, "/users/"+userID, ResourceUsers, nil, nil, "User deleted"),
		"failed to delete user")
}
