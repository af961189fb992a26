package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWith(cookies []*http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

func TestCookieStore_RoundTrip(t *testing.T) {
	store := NewCookieStore("test-secret", false)
	sess := &core.Session{
		ID:           "u1",
		Email:        "ed@physiocare.com",
		Name:         "Ed",
		Role:         core.RoleEditor,
		AllowedPages: []string{core.PageDashboard, core.PageBlog},
	}

	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, sess))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Expires.After(time.Now().Add(365*24*time.Hour)))

	loaded, err := store.Load(requestWith(cookies))
	require.NoError(t, err)
	assert.Equal(t, sess, loaded)
}

func TestCookieStore_MissingCookie(t *testing.T) {
	store := NewCookieStore("test-secret", false)
	_, err := store.Load(requestWith(nil))
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCookieStore_RejectsForeignSignature(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, NewCookieStore("other-secret", false).Save(rec, &core.Session{ID: "u1", Role: core.RoleSuperadmin}))

	_, err := NewCookieStore("test-secret", false).Load(requestWith(rec.Result().Cookies()))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSession)
}

func TestCookieStore_RejectsGarbage(t *testing.T) {
	store := NewCookieStore("test-secret", false)
	_, err := store.Load(requestWith([]*http.Cookie{{Name: CookieName, Value: "not-a-jwt"}}))
	assert.Error(t, err)
}

func TestCookieStore_Clear(t *testing.T) {
	store := NewCookieStore("test-secret", true)
	rec := httptest.NewRecorder()
	store.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
	assert.True(t, cookies[0].Secure)
}
