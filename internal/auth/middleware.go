package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
)

type contextKey string

const AdminIDKey contextKey = "admin_id"

func AdminIDFrom(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(AdminIDKey).(uint)
	return id, ok && id > 0
}

// AuthMiddleware accepts an X-API-KEY header or the session cookie.
func (h *AuthHandler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. API key
		if apiKey := r.Header.Get("X-API-KEY"); apiKey != "" && h.db != nil {
			var keyModel models.APIKey
			if err := h.db.WithContext(r.Context()).Where("key = ?", apiKey).First(&keyModel).Error; err == nil {
				if keyModel.ExpiresAt != nil && time.Now().After(*keyModel.ExpiresAt) {
					http.Error(w, "Unauthorized: API Key expired", http.StatusUnauthorized)
					return
				}

				h.db.Model(&keyModel).Update("last_used_at", time.Now())

				ctx := context.WithValue(r.Context(), AdminIDKey, keyModel.AdminID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		// 2. Session cookie
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			http.Error(w, "Unauthorized: No token found", http.StatusUnauthorized)
			return
		}

		adminID, expires, err := h.parseToken(cookie.Value)
		if err != nil {
			http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		// Sliding session: refresh once less than half the lifetime is left.
		if time.Until(expires) < TokenDuration/2 {
			if newToken, err := h.GenerateToken(adminID); err == nil {
				h.setSessionCookie(w, newToken)
			}
		}

		ctx := context.WithValue(r.Context(), AdminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
