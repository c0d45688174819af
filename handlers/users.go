package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meowjesty/tasknest/core/binder"
	"github.com/meowjesty/tasknest/core/response"
	"github.com/meowjesty/tasknest/core/session"
	"github.com/meowjesty/tasknest/users"
)

// UserStore is the persistence surface the user routes need.
type UserStore interface {
	Insert(ctx context.Context, cmd users.InsertUser) (users.User, error)
	Update(ctx context.Context, cmd users.UpdateUser) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	FindAll(ctx context.Context) ([]users.User, error)
	FindByID(ctx context.Context, id int64) (*users.User, error)
	Login(ctx context.Context, cmd users.LoginUser) (*users.User, error)
}

// UserHandler serves the account routes.
type UserHandler struct {
	store    UserStore
	sessions *session.Manager[SessionState]
}

// NewUserHandler wires the account routes to their dependencies.
func NewUserHandler(store UserStore, sessions *session.Manager[SessionState]) *UserHandler {
	return &UserHandler{store: store, sessions: sessions}
}

// Insert handles POST /users: register a new account.
func (h *UserHandler) Insert(w http.ResponseWriter, r *http.Request) {
	var cmd users.InsertUser
	if err := binder.ValidJSON(r, &cmd); err != nil {
		response.JSONError(w, bindError(err))
		return
	}

	user, err := h.store.Insert(r.Context(), cmd)
	if err != nil {
		response.JSONError(w, err)
		return
	}

	response.JSONWithStatus(w, user, http.StatusCreated)
}

// Update handles PUT /users: change an account's credentials.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd users.UpdateUser
	if err := binder.ValidJSON(r, &cmd); err != nil {
		response.JSONError(w, bindError(err))
		return
	}

	modified, err := h.store.Update(r.Context(), cmd)
	if err != nil {
		response.JSONError(w, err)
		return
	}
	if modified == 0 {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	response.String(w, fmt.Sprintf("Updated %d users.", modified))
}

// Delete handles DELETE /users/{id}: remove an account.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.JSONError(w, err)
		return
	}

	deleted, err := h.store.Delete(r.Context(), id)
	if err != nil {
		response.JSONError(w, err)
		return
	}
	if deleted == 0 {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	response.String(w, fmt.Sprintf("Deleted %d users.", deleted))
}

// FindAll handles GET /users: list every account.
func (h *UserHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.FindAll(r.Context())
	if err != nil {
		response.JSONError(w, err)
		return
	}
	if len(all) == 0 {
		response.JSONError(w, users.ErrEmpty)
		return
	}

	response.JSONWithStatus(w, all, http.StatusFound)
}

// FindByID handles GET /users/{id}: fetch one account.
func (h *UserHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.JSONError(w, err)
		return
	}

	user, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		response.JSONError(w, err)
		return
	}
	if user == nil {
		response.JSONError(w, users.ErrNotFound(id))
		return
	}

	response.JSONWithStatus(w, user, http.StatusFound)
}

// Login handles POST /users/login: exact credential match, then issue the
// token, remember the identity in the session, and echo the token both in
// the body and the X-Auth-Token header.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var cmd users.LoginUser
	if err := binder.ValidJSON(r, &cmd); err != nil {
		response.JSONError(w, bindError(err))
		return
	}

	user, err := h.store.Login(r.Context(), cmd)
	if err != nil {
		response.JSONError(w, err)
		return
	}
	if user == nil {
		response.JSONError(w, users.ErrLoginFailed)
		return
	}

	logged := user.ToLogged(users.IssueToken(*user))

	sess, err := h.sessions.Load(r)
	if err != nil {
		response.JSONError(w, err)
		return
	}
	sess.Data.Identity = &logged
	if err := h.sessions.Save(w, sess); err != nil {
		response.JSONError(w, err)
		return
	}

	w.Header().Set("X-Auth-Token", strconv.FormatUint(logged.Token, 10))
	response.JSON(w, logged)
}

// Logout handles DELETE /users/logout: drop the identity. Idempotent; the
// favorite slot survives so logging back in finds it untouched.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Load(r)
	if err != nil {
		response.JSONError(w, err)
		return
	}

	sess.Data.Identity = nil
	if err := h.sessions.Save(w, sess); err != nil {
		response.JSONError(w, err)
		return
	}

	response.String(w, "Logged out.")
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, response.ErrBadRequest.WithMessage(fmt.Sprintf("invalid id: %q", raw))
	}
	return id, nil
}
