package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meowjesty/tasknest/core/cookie"
	"github.com/meowjesty/tasknest/core/session"
)

const testSecret = "session-test-secret-32-chars!!!!"

type testState struct {
	Counter  int    `json:"counter,omitempty"`
	Username string `json:"username,omitempty"`
}

func newManager(t *testing.T, ttl time.Duration) *session.Manager[testState] {
	t.Helper()

	cookies, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	m, err := session.NewManager[testState](cookies, "test-session", ttl)
	require.NoError(t, err)
	return m
}

func carry(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	r := &http.Request{Header: http.Header{}}
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNewManager_Validation(t *testing.T) {
	t.Parallel()

	cookies, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	_, err = session.NewManager[testState](nil, "name", time.Minute)
	assert.ErrorIs(t, err, session.ErrNoCookieManager)

	_, err = session.NewManager[testState](cookies, "", time.Minute)
	assert.ErrorIs(t, err, session.ErrNoCookieName)

	_, err = session.NewManager[testState](cookies, "name", 0)
	assert.ErrorIs(t, err, session.ErrInvalidTTL)
}

func TestManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := newManager(t, time.Minute)

	w := httptest.NewRecorder()
	require.NoError(t, m.Save(w, session.Session[testState]{
		Data: testState{Counter: 7, Username: "yusuke"},
	}))

	sess, err := m.Load(carry(t, w))
	require.NoError(t, err)
	assert.True(t, sess.Exists())
	assert.Equal(t, 7, sess.Data.Counter)
	assert.Equal(t, "yusuke", sess.Data.Username)
	assert.False(t, sess.IsExpired())
}

func TestManager_MissingCookieIsFreshSession(t *testing.T) {
	t.Parallel()

	m := newManager(t, time.Minute)

	sess, err := m.Load(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.False(t, sess.Exists())
	assert.Zero(t, sess.Data)
}

func TestManager_ExpiredSessionBehavesAsAbsent(t *testing.T) {
	t.Parallel()

	m := newManager(t, time.Second)

	w := httptest.NewRecorder()
	require.NoError(t, m.Save(w, session.Session[testState]{Data: testState{Counter: 1}}))

	r := carry(t, w)
	time.Sleep(1100 * time.Millisecond)

	sess, err := m.Load(r)
	require.NoError(t, err)
	assert.False(t, sess.Exists())
	assert.Zero(t, sess.Data)
}

func TestManager_TamperedCookieIsDecodeError(t *testing.T) {
	t.Parallel()

	m := newManager(t, time.Minute)

	r := &http.Request{Header: http.Header{}}
	r.AddCookie(&http.Cookie{Name: "test-session", Value: "bm90LWEtcmVhbC1zZXNzaW9u"})

	_, err := m.Load(r)
	assert.ErrorIs(t, err, session.ErrDecodeFailed)
}

func TestManager_SaveRestartsTTL(t *testing.T) {
	t.Parallel()

	m := newManager(t, time.Minute)

	w := httptest.NewRecorder()
	require.NoError(t, m.Save(w, session.Session[testState]{Data: testState{Counter: 1}}))

	sess, err := m.Load(carry(t, w))
	require.NoError(t, err)

	before := sess.ExpiresAt
	time.Sleep(1100 * time.Millisecond)

	w2 := httptest.NewRecorder()
	require.NoError(t, m.Save(w2, sess))

	sess2, err := m.Load(carry(t, w2))
	require.NoError(t, err)
	assert.True(t, sess2.ExpiresAt.After(before))
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	m := newManager(t, time.Minute)

	w := httptest.NewRecorder()
	m.Delete(w)

	c := w.Result().Cookies()
	require.Len(t, c, 1)
	assert.Equal(t, "test-session", c[0].Name)
	assert.Equal(t, -1, c[0].MaxAge)
}
