package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/meowjesty/tasknest/core/binder"
	"github.com/meowjesty/tasknest/core/response"
	"github.com/meowjesty/tasknest/core/session"
	"github.com/meowjesty/tasknest/tasks"
)

// TaskStore is the persistence surface the task routes need.
type TaskStore interface {
	Insert(ctx context.Context, cmd tasks.InsertTask) (tasks.Task, error)
	Update(ctx context.Context, cmd tasks.UpdateTask) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Done(ctx context.Context, id int64) (int64, error)
	Undo(ctx context.Context, id int64) (int64, error)
	FindAll(ctx context.Context) ([]tasks.Task, error)
	FindOngoing(ctx context.Context) ([]tasks.Task, error)
	FindByPattern(ctx context.Context, title string) ([]tasks.Task, error)
	FindByID(ctx context.Context, id int64) (*tasks.Task, error)
}

// TaskHandler serves the task routes, including the session-backed favorite
// slot.
type TaskHandler struct {
	store    TaskStore
	sessions *session.Manager[SessionState]
}

// NewTaskHandler wires the task routes to their dependencies.
func NewTaskHandler(store TaskStore, sessions *session.Manager[SessionState]) *TaskHandler {
	return &TaskHandler{store: store, sessions: sessions}
}

// Insert handles POST /tasks: create a task.
func (h *TaskHandler) Insert(w http.ResponseWriter, r *http.Request) {
	var cmd tasks.InsertTask
	if err := binder.ValidJSON(r, &cmd); err != nil {
		response.JSONError(w, bindError(err))
		return
	}

	task, err := h.store.Insert(r.Context(), cmd)
	if err != nil {
		response.JSONError(w, err)
		return
	}

	response.JSONWithStatus(w, task, http.StatusCreated)
}

// Update handles PUT /tasks: retitle a task.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd tasks.UpdateTask
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

	response.String(w, fmt.Sprintf("Updated %d tasks.", modified))
}

// Delete handles DELETE /tasks/{id}: remove a task and its done markers.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	response.String(w, fmt.Sprintf("Deleted %d tasks.", deleted))
}

// Done handles POST /tasks/{id}/done: mark a task completed. Responds with
// the created marker id.
func (h *TaskHandler) Done(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.JSONError(w, err)
		return
	}

	doneID, err := h.store.Done(r.Context(), id)
	if err != nil {
		response.JSONError(w, err)
		return
	}
	if doneID == 0 {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	response.StringWithStatus(w, strconv.FormatInt(doneID, 10), http.StatusCreated)
}

// Undo handles DELETE /tasks/{id}/undo: drop a task's completion markers.
func (h *TaskHandler) Undo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.JSONError(w, err)
		return
	}

	undone, err := h.store.Undo(r.Context(), id)
	if err != nil {
		response.JSONError(w, err)
		return
	}
	if undone == 0 {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	response.String(w, fmt.Sprintf("Undone %d tasks.", undone))
}

// Find handles GET /tasks: the full list, or a title search when the
// "title" query parameter is present.
func (h *TaskHandler) Find(w http.ResponseWriter, r *http.Request) {
	var (
		found []tasks.Task
		err   error
	)
	if title := r.URL.Query().Get("title"); title != "" {
		found, err = h.store.FindByPattern(r.Context(), title)
	} else {
		found, err = h.store.FindAll(r.Context())
	}
	if err != nil {
		response.JSONError(w, err)
		return
	}
	if len(found) == 0 {
		response.JSONError(w, tasks.ErrEmpty)
		return
	}

	response.JSONWithStatus(w, found, http.StatusFound)
}

// FindOngoing handles GET /tasks/ongoing: tasks not yet done.
func (h *TaskHandler) FindOngoing(w http.ResponseWriter, r *http.Request) {
	ongoing, err := h.store.FindOngoing(r.Context())
	if err != nil {
		response.JSONError(w, err)
		return
	}
	if len(ongoing) == 0 {
		response.JSONError(w, tasks.ErrEmpty)
		return
	}

	response.JSONWithStatus(w, ongoing, http.StatusFound)
}

// FindByID handles GET /tasks/{id}: fetch one task.
func (h *TaskHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.JSONError(w, err)
		return
	}

	task, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		response.JSONError(w, err)
		return
	}
	if task == nil {
		response.JSONError(w, tasks.ErrNotFound(id))
		return
	}

	response.JSONWithStatus(w, task, http.StatusFound)
}

// Favorite handles POST /tasks/favorite/{id}: toggle the session's favorite
// slot. Favoriting the current favorite clears the slot; favoriting a
// different task replaces it.
func (h *TaskHandler) Favorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.JSONError(w, err)
		return
	}

	sess, err := h.sessions.Load(r)
	if err != nil {
		response.JSONError(w, err)
		return
	}

	if old := sess.Data.FavoriteTask; old != nil {
		if old.ID == id {
			sess.Data.FavoriteTask = nil
			if err := h.sessions.Save(w, sess); err != nil {
				response.JSONError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		// Replacing evicts the old favorite before the lookup, so a missing
		// replacement still leaves the slot empty.
		sess.Data.FavoriteTask = nil
		h.setFavorite(w, r, sess, id, tasks.ErrNotFound(id), true)
		return
	}

	// With an empty slot an unknown id reads as "nothing favorited yet"
	// rather than a missing task.
	h.setFavorite(w, r, sess, id, tasks.ErrNoneFavorite, false)
}

// setFavorite looks the task up, caches it in the slot, and responds with it.
// absent is the failure surfaced when the id does not exist; persistMiss
// writes the session even then, so an evicted favorite stays evicted.
func (h *TaskHandler) setFavorite(w http.ResponseWriter, r *http.Request, sess session.Session[SessionState], id int64, absent error, persistMiss bool) {
	task, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		response.JSONError(w, err)
		return
	}
	if task == nil {
		if persistMiss {
			if err := h.sessions.Save(w, sess); err != nil {
				response.JSONError(w, err)
				return
			}
		}
		response.JSONError(w, absent)
		return
	}

	sess.Data.FavoriteTask = task
	if err := h.sessions.Save(w, sess); err != nil {
		response.JSONError(w, err)
		return
	}

	response.JSONWithStatus(w, task, http.StatusFound)
}

// FindFavorite handles GET /tasks/favorite: return the cached favorite
// without touching the task store, so it may be stale relative to later
// edits. Never writes the session.
func (h *TaskHandler) FindFavorite(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Load(r)
	if err != nil {
		response.JSONError(w, err)
		return
	}

	if sess.Data.FavoriteTask == nil {
		response.JSONError(w, tasks.ErrNoneFavorite)
		return
	}

	response.JSONWithStatus(w, sess.Data.FavoriteTask, http.StatusFound)
}
