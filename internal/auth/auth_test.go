package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/config"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/database"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return db
}

func TestHandleMe(t *testing.T) {
	db := newTestDB(t)

	admin := models.Admin{GoogleID: "123456", Name: "Test Admin", Email: "admin@example.com", Avatar: "avatar_url"}
	require.NoError(t, db.Create(&admin).Error)

	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg, db)

	t.Run("Authenticated by cookie", func(t *testing.T) {
		token, err := handler.GenerateToken(admin.ID)
		require.NoError(t, err)

		resp, err := handler.HandleMe(context.Background(), &AuthInput{Cookie: CookieName + "=" + token})
		require.NoError(t, err)
		assert.Equal(t, admin.Name, resp.Body.Name)
		assert.Equal(t, admin.Email, resp.Body.Email)
	})

	t.Run("Authenticated by middleware context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), AdminIDKey, admin.ID)
		resp, err := handler.HandleMe(ctx, &AuthInput{})
		require.NoError(t, err)
		assert.Equal(t, admin.ID, resp.Body.ID)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		_, err := handler.HandleMe(context.Background(), &AuthInput{})
		assert.Error(t, err)

		_, err = handler.HandleMe(context.Background(), &AuthInput{Cookie: CookieName + "=garbage"})
		assert.Error(t, err)
	})
}

func TestAllowed(t *testing.T) {
	h := NewAuthHandler(&config.Config{
		AdminEmailDomain: "@rentals.example",
		AdminEmails:      []string{"Owner@Gmail.com"},
	}, nil)

	assert.True(t, h.Allowed("staff@rentals.example"))
	assert.True(t, h.Allowed("STAFF@Rentals.Example"))
	assert.True(t, h.Allowed("owner@gmail.com"))
	assert.False(t, h.Allowed("someone@gmail.com"))
	assert.False(t, h.Allowed("staff@evil-rentals.example"))
	assert.False(t, h.Allowed("not-an-email"))

	closed := NewAuthHandler(&config.Config{}, nil)
	assert.False(t, closed.Allowed("anyone@example.com"))
}

func fakeGoogle(t *testing.T, profile googleUser) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "at", "token_type": "Bearer", "expires_in": 3600})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer at" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(profile)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func callback(h *AuthHandler, state, cookieState string) *httptest.ResponseRecorder {
	q := url.Values{"code": {"c0de"}, "state": {state}}
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?"+q.Encode(), nil)
	if cookieState != "" {
		req.AddCookie(&http.Cookie{Name: stateCookieName, Value: cookieState})
	}
	rr := httptest.NewRecorder()
	h.HandleCallback(rr, req)
	return rr
}

func TestHandleCallback(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.Config{JWTSecret: "test-secret", AdminEmailDomain: "rentals.example", FrontendURL: "http://admin.local"}

	t.Run("Creates admin and session", func(t *testing.T) {
		srv := fakeGoogle(t, googleUser{Sub: "g-1", Email: "Staff@rentals.example", EmailVerified: true, Name: "Staff"})
		h := NewAuthHandler(cfg, db)
		h.oauthConfig.Endpoint.TokenURL = srv.URL + "/token"
		h.userInfoURL = srv.URL + "/userinfo"

		rr := callback(h, "st", "st")
		require.Equal(t, http.StatusTemporaryRedirect, rr.Code)
		assert.Equal(t, "http://admin.local", rr.Header().Get("Location"))

		var session *http.Cookie
		for _, c := range rr.Result().Cookies() {
			if c.Name == CookieName {
				session = c
			}
		}
		require.NotNil(t, session)

		var admin models.Admin
		require.NoError(t, db.Where("email = ?", "staff@rentals.example").First(&admin).Error)
		assert.Equal(t, "g-1", admin.GoogleID)

		id, _, err := h.parseToken(session.Value)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, id)

		// Second login updates instead of duplicating.
		rr = callback(h, "st2", "st2")
		require.Equal(t, http.StatusTemporaryRedirect, rr.Code)
		var count int64
		db.Model(&models.Admin{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Rejects foreign accounts", func(t *testing.T) {
		srv := fakeGoogle(t, googleUser{Sub: "g-2", Email: "someone@gmail.com", EmailVerified: true})
		h := NewAuthHandler(cfg, db)
		h.oauthConfig.Endpoint.TokenURL = srv.URL + "/token"
		h.userInfoURL = srv.URL + "/userinfo"

		assert.Equal(t, http.StatusForbidden, callback(h, "st", "st").Code)
	})

	t.Run("Rejects state mismatch", func(t *testing.T) {
		h := NewAuthHandler(cfg, db)
		assert.Equal(t, http.StatusBadRequest, callback(h, "st", "other").Code)
		assert.Equal(t, http.StatusBadRequest, callback(h, "st", "").Code)
	})
}

func TestHandleLoginSetsState(t *testing.T) {
	h := NewAuthHandler(&config.Config{GoogleClientID: "client"}, nil)
	rr := httptest.NewRecorder()
	h.HandleLogin(rr, httptest.NewRequest(http.MethodGet, "/auth/google/login", nil))

	require.Equal(t, http.StatusTemporaryRedirect, rr.Code)
	loc, err := url.Parse(rr.Header().Get("Location"))
	require.NoError(t, err)

	var state string
	for _, c := range rr.Result().Cookies() {
		if c.Name == stateCookieName {
			state = c.Value
		}
	}
	require.NotEmpty(t, state)
	assert.Equal(t, state, loc.Query().Get("state"))
	assert.Equal(t, "client", loc.Query().Get("client_id"))
}
