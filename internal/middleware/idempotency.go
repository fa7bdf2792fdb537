// Package middleware provides HTTP middleware components for the bank API.
package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/benx421/personal-bank/internal/models"
	"github.com/benx421/personal-bank/internal/repository"
)

const idempotencyKeyHeader = "Idempotency-Key"

// reservationTTL is how long a pending key blocks duplicates before a retry
// may take it over
const reservationTTL = time.Minute

// collectionPaths are mutating endpoints without path parameters
var collectionPaths = []string{
	"/api/v1/accounts",
	"/api/v1/transfers",
}

// accountActions are the POST sub-resources of /api/v1/accounts/{accountNumber}
var accountActions = []string{"deposit", "withdraw"}

type responseCapture struct {
	http.ResponseWriter
	body       bytes.Buffer
	statusCode int
}

func newResponseCapture(w http.ResponseWriter) *responseCapture {
	return &responseCapture{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // Default if WriteHeader not called
	}
}

func (rc *responseCapture) WriteHeader(code int) {
	rc.statusCode = code
	rc.ResponseWriter.WriteHeader(code)
}

func (rc *responseCapture) Write(b []byte) (int, error) {
	rc.body.Write(b) // Capture for caching
	return rc.ResponseWriter.Write(b)
}

// Idempotency replays the cached response of a mutating request that was
// already answered for the same caller, key and path. The key is reserved
// before the handler runs, so a concurrent duplicate is rejected instead of
// executing twice. It must run after Identity.
func Idempotency(repo repository.IdempotencyRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requiresIdempotency(r) {
				next.ServeHTTP(w, r)
				return
			}

			idempotencyKey := r.Header.Get(idempotencyKeyHeader)
			if idempotencyKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			ownerID, ok := OwnerFromContext(ctx)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			requestPath := normalizeRequestPath(r.URL.Path)
			now := time.Now()
			idemKey := &models.IdempotencyKey{
				OwnerID:     ownerID,
				Key:         idempotencyKey,
				RequestPath: requestPath,
				CreatedAt:   now,
			}

			reserved, err := repo.Reserve(ctx, idemKey, now.Add(-reservationTTL))
			if err != nil {
				logger.Error("failed to reserve idempotency key", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if !reserved {
				existing, err := repo.Get(ctx, ownerID, idempotencyKey, requestPath)
				if err != nil {
					logger.Error("failed to check idempotency cache", "error", err)
					next.ServeHTTP(w, r)
					return
				}

				switch {
				case existing == nil:
					next.ServeHTTP(w, r)
				case existing.Pending():
					logger.Debug("idempotency key still in progress", "key", idempotencyKey, "path", requestPath)
					w.Header().Set("Retry-After", "1")
					writeError(w, http.StatusConflict, "conflict", "request with this idempotency key is still in progress")
				default:
					replay(w, existing, logger)
				}
				return
			}

			capture := newResponseCapture(w)
			next.ServeHTTP(capture, r)

			// The caller may be gone; the outcome must still be recorded.
			finishCtx := context.WithoutCancel(ctx)

			if !shouldCacheResponse(capture.statusCode) {
				if err := repo.Release(finishCtx, ownerID, idempotencyKey, requestPath); err != nil {
					logger.Error("failed to release idempotency key",
						"error", err,
						"key", idempotencyKey,
					)
				}
				return
			}

			idemKey.ResponseStatus = capture.statusCode
			idemKey.ResponseBody = capture.body.String()
			if err := repo.Store(finishCtx, idemKey); err != nil {
				logger.Error("failed to store idempotency key",
					"error", err,
					"key", idempotencyKey,
				)
			}
		})
	}
}

func replay(w http.ResponseWriter, cached *models.IdempotencyKey, logger *slog.Logger) {
	logger.Debug("returning cached idempotent response",
		"key", cached.Key,
		"path", cached.RequestPath,
		"status", cached.ResponseStatus,
	)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Idempotent-Replayed", "true")
	w.WriteHeader(cached.ResponseStatus)
	//nolint:errcheck // Best effort response writing
	w.Write([]byte(cached.ResponseBody))
}

func requiresIdempotency(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}

	path := normalizeRequestPath(r.URL.Path)
	for _, p := range collectionPaths {
		if path == p {
			return true
		}
	}

	// /api/v1/accounts/{accountNumber}/{action}
	rest, ok := strings.CutPrefix(path, "/api/v1/accounts/")
	if !ok {
		return false
	}
	segments := strings.Split(rest, "/")
	if len(segments) != 2 || segments[0] == "" {
		return false
	}
	for _, action := range accountActions {
		if segments[1] == action {
			return true
		}
	}
	return false
}

func normalizeRequestPath(urlPath string) string {
	return strings.TrimSuffix(urlPath, "/")
}

func shouldCacheResponse(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
