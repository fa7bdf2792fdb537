package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/benx421/personal-bank/internal/api"
	"github.com/benx421/personal-bank/internal/models"
	"github.com/benx421/personal-bank/internal/service"
	"github.com/shopspring/decimal"
)

const maxBodyBytes = 1 << 20

// retryAfterSeconds is advertised on conflict and timeout answers
const retryAfterSeconds = 1

var internalError = api.Error{
	Error:   api.ErrorCodeInternalError,
	Message: "internal error",
}

// failure is a service error resolved to its HTTP status and body
type failure struct {
	body   api.Error
	status int
}

// fail maps err to the answer the caller sees. Anything that is not a
// business rejection is logged and reported as internal_error.
func (h *Handler) fail(op string, err error) failure {
	svcErr := extractServiceError(err)
	if svcErr == nil {
		h.logger.Error("unexpected error", "operation", op, "error", err)
		return failure{status: http.StatusInternalServerError, body: internalError}
	}

	status := mapServiceErrorToStatus(svcErr.Code)
	if status == http.StatusInternalServerError {
		h.logger.Error("internal error", "operation", op, "code", svcErr.Code, "error", err)
		return failure{status: status, body: internalError}
	}

	return failure{
		status: status,
		body: api.Error{
			Error:   mapServiceErrorToCode(svcErr.Code),
			Message: svcErr.Message,
		},
	}
}

func mapServiceErrorToStatus(code string) int {
	switch code {
	case service.ErrCodeAccountNotFound, service.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case service.ErrCodeAccountInactive:
		return http.StatusUnprocessableEntity
	case service.ErrCodeInvalidAmount, service.ErrCodeCurrencyMismatch, service.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case service.ErrCodeInsufficientFunds:
		return http.StatusPaymentRequired
	case service.ErrCodeConflict:
		return http.StatusConflict
	case service.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func mapServiceErrorToCode(code string) api.ErrorCode {
	switch code {
	case service.ErrCodeAccountNotFound:
		return api.ErrorCodeAccountNotFound
	case service.ErrCodeTransactionNotFound:
		return api.ErrorCodeTransactionNotFound
	case service.ErrCodeAccountInactive:
		return api.ErrorCodeAccountInactive
	case service.ErrCodeInvalidAmount:
		return api.ErrorCodeInvalidAmount
	case service.ErrCodeInsufficientFunds:
		return api.ErrorCodeInsufficientFunds
	case service.ErrCodeCurrencyMismatch:
		return api.ErrorCodeCurrencyMismatch
	case service.ErrCodeInvalidRequest:
		return api.ErrorCodeInvalidRequest
	case service.ErrCodeConflict:
		return api.ErrorCodeConflict
	case service.ErrCodeTimeout:
		return api.ErrorCodeTimeout
	default:
		return api.ErrorCodeInternalError
	}
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, body api.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Nothing useful to do if write fails
	json.NewEncoder(w).Encode(body)
}

// requestError answers parameters and bodies the generated layer could not bind
func (h *Handler) requestError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Debug("rejecting malformed request", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusBadRequest, api.Error{
		Error:   api.ErrorCodeInvalidRequest,
		Message: requestErrorMessage(err),
	})
}

func requestErrorMessage(err error) string {
	var (
		headerErr  *api.RequiredHeaderError
		formatErr  *api.InvalidParamFormatError
		tooManyErr *api.TooManyValuesForParamError
		sizeErr    *http.MaxBytesError
	)
	switch {
	case errors.As(err, &headerErr):
		return fmt.Sprintf("missing %s header", headerErr.ParamName)
	case errors.As(err, &formatErr):
		return fmt.Sprintf("invalid %s parameter", formatErr.ParamName)
	case errors.As(err, &tooManyErr):
		return fmt.Sprintf("expected one value for %s", tooManyErr.ParamName)
	case errors.As(err, &sizeErr):
		return "request body too large"
	default:
		return "malformed request body"
	}
}

func (h *Handler) responseError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("failed to write response", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, internalError)
}

func limitRequestBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}

// parseAmount reads a decimal string from the request body
func parseAmount(field string, raw api.Amount) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &service.ServiceError{
			Code:    service.ErrCodeInvalidAmount,
			Message: field + " must be a decimal string",
			Err:     err,
		}
	}
	return amount, nil
}

func parseOptionalAmount(field string, raw *api.Amount) (decimal.Decimal, error) {
	if raw == nil {
		return decimal.Zero, nil
	}
	return parseAmount(field, *raw)
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func toPage(number *api.PageNumber, limit *api.PageLimit) models.Page {
	return models.Page{Number: value(number), Limit: value(limit)}
}

type metadataKey struct{}

// withRequestMetadata makes the caller's address and user agent available to
// the ledger operations
func withRequestMetadata(f api.StrictHandlerFunc, _ string) api.StrictHandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return f(context.WithValue(ctx, metadataKey{}, requestMetadata(r)), w, r, request)
	}
}

func metadataFromContext(ctx context.Context) map[string]any {
	metadata, _ := ctx.Value(metadataKey{}).(map[string]any)
	return metadata
}

// requestMetadata records where a ledger operation came from
func requestMetadata(r *http.Request) map[string]any {
	metadata := map[string]any{
		"ipAddress": clientIP(r),
	}
	if ua := r.UserAgent(); ua != "" {
		metadata["userAgent"] = ua
	}
	return metadata
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
