package handlers

import (
	"context"
	"net/http"

	"github.com/benx421/personal-bank/internal/api"
	"github.com/benx421/personal-bank/internal/models"
	"github.com/benx421/personal-bank/internal/service"
)

// Deposit handles POST /api/v1/accounts/{accountNumber}/deposit
func (h *Handler) Deposit(
	ctx context.Context,
	request api.DepositRequestObject,
) (api.DepositResponseObject, error) {
	amount, err := parseAmount("amount", request.Body.Amount)
	if err != nil {
		return h.depositError(err)
	}

	result, err := h.ledger.Deposit(ctx, request.Params.XUserID, service.DepositRequest{
		AccountNumber: request.AccountNumber,
		Amount:        amount,
		Description:   value(request.Body.Description),
		Category:      models.Category(value(request.Body.Category)),
		Metadata:      metadataFromContext(ctx),
	})
	if err != nil {
		return h.depositError(err)
	}

	return api.Deposit200JSONResponse{
		Account:     toAccount(result.Account),
		Transaction: toTransaction(result.Transaction, nil, summaryPtr(result.Account)),
	}, nil
}

func (h *Handler) depositError(err error) (api.DepositResponseObject, error) {
	f := h.fail("Deposit", err)
	switch f.status {
	case http.StatusBadRequest:
		return api.Deposit400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(f.body)}, nil
	case http.StatusNotFound:
		return api.Deposit404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(f.body)}, nil
	case http.StatusConflict:
		return api.Deposit409JSONResponse{ConflictJSONResponse: conflict(f)}, nil
	case http.StatusUnprocessableEntity:
		return api.Deposit422JSONResponse{UnprocessableJSONResponse: api.UnprocessableJSONResponse(f.body)}, nil
	case http.StatusGatewayTimeout:
		return api.Deposit504JSONResponse{TimeoutJSONResponse: timeout(f)}, nil
	default:
		return api.Deposit500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(internalError)}, nil
	}
}

// Withdraw handles POST /api/v1/accounts/{accountNumber}/withdraw
func (h *Handler) Withdraw(
	ctx context.Context,
	request api.WithdrawRequestObject,
) (api.WithdrawResponseObject, error) {
	amount, err := parseAmount("amount", request.Body.Amount)
	if err != nil {
		return h.withdrawError(err)
	}

	result, err := h.ledger.Withdraw(ctx, request.Params.XUserID, service.WithdrawRequest{
		AccountNumber: request.AccountNumber,
		Amount:        amount,
		Description:   value(request.Body.Description),
		Category:      models.Category(value(request.Body.Category)),
		Metadata:      metadataFromContext(ctx),
	})
	if err != nil {
		return h.withdrawError(err)
	}

	return api.Withdraw200JSONResponse{
		Account:     toAccount(result.Account),
		Transaction: toTransaction(result.Transaction, summaryPtr(result.Account), nil),
	}, nil
}

func (h *Handler) withdrawError(err error) (api.WithdrawResponseObject, error) {
	f := h.fail("Withdraw", err)
	switch f.status {
	case http.StatusBadRequest:
		return api.Withdraw400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(f.body)}, nil
	case http.StatusPaymentRequired:
		return api.Withdraw402JSONResponse{PaymentRequiredJSONResponse: api.PaymentRequiredJSONResponse(f.body)}, nil
	case http.StatusNotFound:
		return api.Withdraw404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(f.body)}, nil
	case http.StatusConflict:
		return api.Withdraw409JSONResponse{ConflictJSONResponse: conflict(f)}, nil
	case http.StatusUnprocessableEntity:
		return api.Withdraw422JSONResponse{UnprocessableJSONResponse: api.UnprocessableJSONResponse(f.body)}, nil
	case http.StatusGatewayTimeout:
		return api.Withdraw504JSONResponse{TimeoutJSONResponse: timeout(f)}, nil
	default:
		return api.Withdraw500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(internalError)}, nil
	}
}

// Transfer handles POST /api/v1/transfers
func (h *Handler) Transfer(
	ctx context.Context,
	request api.TransferRequestObject,
) (api.TransferResponseObject, error) {
	amount, err := parseAmount("amount", request.Body.Amount)
	if err != nil {
		return h.transferError(err)
	}

	result, err := h.ledger.Transfer(ctx, request.Params.XUserID, service.TransferRequest{
		FromAccountNumber: request.Body.FromAccountNumber,
		ToAccountNumber:   request.Body.ToAccountNumber,
		Amount:            amount,
		Description:       value(request.Body.Description),
		Category:          models.Category(value(request.Body.Category)),
		Metadata:          metadataFromContext(ctx),
	})
	if err != nil {
		return h.transferError(err)
	}

	to := result.ToAccount
	return api.Transfer200JSONResponse{
		Transaction: toTransaction(result.Transaction, summaryPtr(result.FromAccount), &to),
		FromAccount: toAccount(result.FromAccount),
		ToAccount:   toAccountSummary(to),
	}, nil
}

func (h *Handler) transferError(err error) (api.TransferResponseObject, error) {
	f := h.fail("Transfer", err)
	switch f.status {
	case http.StatusBadRequest:
		return api.Transfer400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(f.body)}, nil
	case http.StatusPaymentRequired:
		return api.Transfer402JSONResponse{PaymentRequiredJSONResponse: api.PaymentRequiredJSONResponse(f.body)}, nil
	case http.StatusNotFound:
		return api.Transfer404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(f.body)}, nil
	case http.StatusConflict:
		return api.Transfer409JSONResponse{ConflictJSONResponse: conflict(f)}, nil
	case http.StatusUnprocessableEntity:
		return api.Transfer422JSONResponse{UnprocessableJSONResponse: api.UnprocessableJSONResponse(f.body)}, nil
	case http.StatusGatewayTimeout:
		return api.Transfer504JSONResponse{TimeoutJSONResponse: timeout(f)}, nil
	default:
		return api.Transfer500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(internalError)}, nil
	}
}

func conflict(f failure) api.ConflictJSONResponse {
	return api.ConflictJSONResponse{
		Body:    f.body,
		Headers: api.ConflictResponseHeaders{RetryAfter: retryAfterSeconds},
	}
}

func timeout(f failure) api.TimeoutJSONResponse {
	return api.TimeoutJSONResponse{
		Body:    f.body,
		Headers: api.TimeoutResponseHeaders{RetryAfter: retryAfterSeconds},
	}
}
