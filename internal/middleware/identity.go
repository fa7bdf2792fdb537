package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// UserIDHeader carries the authenticated caller, set by the upstream gateway
const UserIDHeader = "X-User-ID"

const protectedPrefix = "/api/"

type ownerKey struct{}

// WithOwner returns a context carrying the caller's owner id
func WithOwner(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

// OwnerFromContext returns the caller set by Identity
func OwnerFromContext(ctx context.Context) (uuid.UUID, bool) {
	ownerID, ok := ctx.Value(ownerKey{}).(uuid.UUID)
	return ownerID, ok && ownerID != uuid.Nil
}

// Identity rejects API requests without a valid X-User-ID and stores the
// caller in the request context. Health and docs routes are left open.
func Identity(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, protectedPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			raw := r.Header.Get(UserIDHeader)
			if raw == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing "+UserIDHeader+" header")
				return
			}

			ownerID, err := uuid.Parse(raw)
			if err != nil || ownerID == uuid.Nil {
				logger.Debug("rejecting request with invalid user id", "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid "+UserIDHeader+" header")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithOwner(r.Context(), ownerID)))
		})
	}
}
