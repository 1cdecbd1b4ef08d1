package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/config"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/logger"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

const (
	GoogleAuthorizeEndpoint = "https://accounts.google.com/o/oauth2/auth"
	GoogleTokenEndpoint     = "https://oauth2.googleapis.com/token"
	GoogleUserInfoAPI       = "https://openidconnect.googleapis.com/v1/userinfo"

	CookieName      = "auth_token"
	stateCookieName = "oauth_state"
	TokenDuration   = 24 * time.Hour
)

var errUnauthorized = errors.New("unauthorized")

type AuthHandler struct {
	oauthConfig *oauth2.Config
	userInfoURL string
	db          *gorm.DB
	cfg         *config.Config
}

func NewAuthHandler(cfg *config.Config, db *gorm.DB) *AuthHandler {
	return &AuthHandler{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  GoogleAuthorizeEndpoint,
				TokenURL: GoogleTokenEndpoint,
			},
		},
		userInfoURL: GoogleUserInfoAPI,
		db:          db,
		cfg:         cfg,
	}
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
	url := h.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

type googleUser struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func (h *AuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	state, err := r.Cookie(stateCookieName)
	if err != nil || state.Value == "" || state.Value != r.URL.Query().Get("state") {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: stateCookieName, Value: "", MaxAge: -1, Path: "/"})

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Code not found", http.StatusBadRequest)
		return
	}

	token, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		logger.Error("Failed to exchange token", "error", err)
		http.Error(w, "Failed to exchange token", http.StatusInternalServerError)
		return
	}

	client := h.oauthConfig.Client(r.Context(), token)
	resp, err := client.Get(h.userInfoURL)
	if err != nil {
		http.Error(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	var profile googleUser
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		http.Error(w, "Failed to decode user info", http.StatusInternalServerError)
		return
	}

	if !profile.EmailVerified || !h.Allowed(profile.Email) {
		logger.Warn("Rejected admin login", "email", profile.Email)
		http.Error(w, "Access denied: this account is not an administrator.", http.StatusForbidden)
		return
	}

	admin, err := h.upsertAdmin(profile)
	if err != nil {
		logger.Error("Failed to save admin", "error", err)
		http.Error(w, "Failed to save admin", http.StatusInternalServerError)
		return
	}

	jwtToken, err := h.GenerateToken(admin.ID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}
	h.setSessionCookie(w, jwtToken)

	http.Redirect(w, r, h.cfg.FrontendURL, http.StatusTemporaryRedirect)
}

// Allowed reports whether email may sign in: listed in ADMIN_EMAILS or in
// the ADMIN_EMAIL_DOMAIN domain.
func (h *AuthHandler) Allowed(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return false
	}
	for _, allowed := range h.cfg.AdminEmails {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}
	domain := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(h.cfg.AdminEmailDomain), "@"))
	return domain != "" && email[at+1:] == domain
}

func (h *AuthHandler) upsertAdmin(profile googleUser) (*models.Admin, error) {
	var admin models.Admin
	email := strings.ToLower(profile.Email)
	if err := h.db.FirstOrInit(&admin, models.Admin{Email: email}).Error; err != nil {
		return nil, err
	}
	admin.GoogleID = profile.Sub
	admin.Name = profile.Name
	admin.Avatar = profile.Picture
	if err := h.db.Save(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (h *AuthHandler) GenerateToken(adminID uint) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": adminID,
		"exp":      time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  time.Now().Add(TokenDuration),
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

// parseToken validates a session token and returns its admin id and expiry.
func (h *AuthHandler) parseToken(tokenString string) (uint, time.Time, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, time.Time{}, errUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, time.Time{}, errUnauthorized
	}
	adminID, ok := claims["admin_id"].(float64)
	if !ok || adminID <= 0 {
		return 0, time.Time{}, errUnauthorized
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, time.Time{}, errUnauthorized
	}
	return uint(adminID), exp.Time, nil
}

// AuthInput lets huma operations read the session cookie directly.
type AuthInput struct {
	Cookie string `header:"Cookie"`
}

// Authorize returns the admin id set by the middleware, falling back to the
// session cookie in cookieHeader.
func (h *AuthHandler) Authorize(ctx context.Context, cookieHeader string) (uint, error) {
	if id, ok := AdminIDFrom(ctx); ok {
		return id, nil
	}
	header := http.Header{}
	header.Add("Cookie", cookieHeader)
	cookie, err := (&http.Request{Header: header}).Cookie(CookieName)
	if err != nil {
		return 0, huma.Error401Unauthorized("Unauthorized: No token found")
	}
	id, _, err := h.parseToken(cookie.Value)
	if err != nil {
		return 0, huma.Error401Unauthorized("Unauthorized: Invalid token")
	}
	return id, nil
}

type MeOutput struct {
	Body struct {
		ID     uint   `json:"id"`
		Email  string `json:"email"`
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
	}
}

func (h *AuthHandler) HandleMe(ctx context.Context, input *AuthInput) (*MeOutput, error) {
	adminID, err := h.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	var admin models.Admin
	if err := h.db.WithContext(ctx).First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Admin not found")
		}
		return nil, huma.Error500InternalServerError("Database error")
	}

	out := &MeOutput{}
	out.Body.ID = admin.ID
	out.Body.Email = admin.Email
	out.Body.Name = admin.Name
	out.Body.Avatar = admin.Avatar
	return out, nil
}
