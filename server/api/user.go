package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/hcasse/ltgen/server/dao"
	"github.com/hcasse/ltgen/server/result"
	"github.com/hcasse/ltgen/server/serr"
)

// HTTPCreateUser returns a HandlerFunc that registers a new account. No
// authentication is required; every new account is created with the
// Unverified role unless a role is explicitly given.
func (api API) HTTPCreateUser() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epCreateUser)
}

func (api API) epCreateUser(req *http.Request) result.Result {
	var createUser UserModel
	err := parseJSON(req, &createUser)
	if err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}
	if createUser.Username == "" {
		return result.BadRequest("username: property is empty or missing from request", "empty username")
	}
	if createUser.Password == "" {
		return result.BadRequest("password: property is empty or missing from request", "empty password")
	}

	role := dao.Unverified
	if createUser.Role != "" {
		role, err = dao.ParseRole(createUser.Role)
		if err != nil {
			return result.BadRequest("role: "+err.Error(), "role: %s", err.Error())
		}
	}

	newUser, err := api.Backend.CreateUser(req.Context(), createUser.Username, createUser.Password, createUser.Email, role)
	if err != nil {
		if errors.Is(err, serr.ErrAlreadyExists) {
			return result.Conflict("User with that username already exists", "user '%s' already exists", createUser.Username)
		} else if errors.Is(err, serr.ErrBadArgument) {
			return result.BadRequest(err.Error(), err.Error())
		}
		return result.InternalServerError(err.Error())
	}

	resp := UserModel{
		URI:      PathPrefix + "/users/" + newUser.ID.String(),
		ID:       newUser.ID.String(),
		Username: newUser.Username,
		Role:     newUser.Role.String(),
		Created:  newUser.Created.Format(time.RFC3339),
		Modified: newUser.Modified.Format(time.RFC3339),
	}
	if newUser.Email != nil {
		resp.Email = newUser.Email.Address
	}

	return result.Created(resp, "user '%s' (%s) created", resp.Username, resp.ID)
}
