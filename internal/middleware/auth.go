package middleware

import (
	"net/http"

	"resto-admin-be/internal/auth"
	"resto-admin-be/internal/logger"

	"go.uber.org/zap"
)

// RequireAuth guards mutating endpoints: requests without a valid admin
// token are rejected with 401.
func RequireAuth(secret string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.ExtractBearer(r)
		if tokenStr == "" {
			http.Error(w, `{"error": "missing bearer token"}`, http.StatusUnauthorized)
			return
		}

		claims, err := auth.ParseToken(secret, tokenStr)
		if err != nil {
			logger.FromCtx(r.Context()).Warn("rejected token", zap.Error(err))
			http.Error(w, `{"error": "invalid token"}`, http.StatusUnauthorized)
			return
		}

		logger.FromCtx(r.Context()).Debug("authenticated request",
			zap.String("username", claims.Username),
		)
		next.ServeHTTP(w, r)
	})
}
