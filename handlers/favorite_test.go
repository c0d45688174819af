package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meowjesty/tasknest/tasks"
)

func TestFavoriteToggle(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t)
	app.login("yusuke", "toguro")

	created := decodeBody[tasks.Task](t, app.do(http.MethodPost, "/tasks", tasks.InsertTask{NonEmptyTitle: "spar with kuwabara"}))
	other := decodeBody[tasks.Task](t, app.do(http.MethodPost, "/tasks", tasks.InsertTask{NonEmptyTitle: "train with genkai"}))

	t.Run("reading an empty slot fails", func(t *testing.T) {
		resp := app.do(http.MethodGet, "/tasks/favorite", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "You have not favorited any `Task` yet!")
	})

	t.Run("favoriting an unknown id with an empty slot", func(t *testing.T) {
		resp := app.do(http.MethodPost, "/tasks/favorite/999", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "You have not favorited any `Task` yet!")
	})

	t.Run("favoriting fills the slot", func(t *testing.T) {
		resp := app.do(http.MethodPost, "/tasks/favorite/1", nil)
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, created, decodeBody[tasks.Task](t, resp))

		resp = app.do(http.MethodGet, "/tasks/favorite", nil)
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, created, decodeBody[tasks.Task](t, resp))
	})

	t.Run("favoriting a different task replaces the slot", func(t *testing.T) {
		resp := app.do(http.MethodPost, "/tasks/favorite/2", nil)
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, other, decodeBody[tasks.Task](t, resp))

		resp = app.do(http.MethodGet, "/tasks/favorite", nil)
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, other, decodeBody[tasks.Task](t, resp))
	})

	t.Run("favoriting an unknown id with an occupied slot evicts it", func(t *testing.T) {
		resp := app.do(http.MethodPost, "/tasks/favorite/999", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "`999`")

		// The old favorite is gone even though the replacement was missing.
		resp = app.do(http.MethodGet, "/tasks/favorite", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "You have not favorited any `Task` yet!")
	})

	t.Run("favoriting the current favorite clears the slot", func(t *testing.T) {
		resp := app.do(http.MethodPost, "/tasks/favorite/1", nil)
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, created, decodeBody[tasks.Task](t, resp))

		resp = app.do(http.MethodPost, "/tasks/favorite/1", nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()

		resp = app.do(http.MethodGet, "/tasks/favorite", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestFavoriteIsACachedSnapshot(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t)
	app.login("yusuke", "toguro")

	created := decodeBody[tasks.Task](t, app.do(http.MethodPost, "/tasks", tasks.InsertTask{NonEmptyTitle: "original title"}))

	resp := app.do(http.MethodPost, "/tasks/favorite/1", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	resp.Body.Close()

	resp = app.do(http.MethodPut, "/tasks", tasks.UpdateTask{ID: created.ID, NewTitle: "edited title"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// The slot serves the snapshot taken at favorite time, not the row.
	resp = app.do(http.MethodGet, "/tasks/favorite", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "original title", decodeBody[tasks.Task](t, resp).Title)
}

func TestFavoriteSurvivesLogout(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t)
	app.login("yusuke", "toguro")

	resp := app.do(http.MethodPost, "/tasks", tasks.InsertTask{NonEmptyTitle: "keep me"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = app.do(http.MethodPost, "/tasks/favorite/1", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	resp.Body.Close()

	resp = app.do(http.MethodDelete, "/users/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = app.do(http.MethodGet, "/tasks/favorite", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "keep me", decodeBody[tasks.Task](t, resp).Title)
}
