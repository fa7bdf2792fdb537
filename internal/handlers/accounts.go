package handlers

import (
	"context"
	"net/http"

	"github.com/benx421/personal-bank/internal/api"
	"github.com/benx421/personal-bank/internal/models"
	"github.com/benx421/personal-bank/internal/service"
)

// OpenAccount handles POST /api/v1/accounts
func (h *Handler) OpenAccount(
	ctx context.Context,
	request api.OpenAccountRequestObject,
) (api.OpenAccountResponseObject, error) {
	req, err := toOpenAccountRequest(request.Body)
	if err != nil {
		return h.openAccountError(err)
	}

	result, err := h.accounts.Open(ctx, request.Params.XUserID, req)
	if err != nil {
		return h.openAccountError(err)
	}

	resp := api.OpenAccount201JSONResponse{Account: toAccount(result.Account)}
	if result.Transaction != nil {
		txn := toTransaction(result.Transaction, nil, summaryPtr(result.Account))
		resp.Transaction = &txn
	}
	return resp, nil
}

func toOpenAccountRequest(body *api.OpenAccountJSONRequestBody) (service.OpenAccountRequest, error) {
	initialDeposit, err := parseOptionalAmount("initialDeposit", body.InitialDeposit)
	if err != nil {
		return service.OpenAccountRequest{}, err
	}
	overdraftLimit, err := parseOptionalAmount("overdraftLimit", body.OverdraftLimit)
	if err != nil {
		return service.OpenAccountRequest{}, err
	}

	return service.OpenAccountRequest{
		Type:           models.AccountType(body.AccountType),
		Currency:       models.Currency(value(body.Currency)),
		InitialDeposit: initialDeposit,
		OverdraftLimit: overdraftLimit,
	}, nil
}

// openAccountError maps service errors to appropriate HTTP responses
func (h *Handler) openAccountError(err error) (api.OpenAccountResponseObject, error) {
	f := h.fail("OpenAccount", err)
	switch f.status {
	case http.StatusBadRequest:
		return api.OpenAccount400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(f.body)}, nil
	case http.StatusConflict:
		return api.OpenAccount409JSONResponse{ConflictJSONResponse: conflict(f)}, nil
	case http.StatusGatewayTimeout:
		return api.OpenAccount504JSONResponse{TimeoutJSONResponse: timeout(f)}, nil
	default:
		return api.OpenAccount500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(internalError)}, nil
	}
}

// ListAccounts handles GET /api/v1/accounts
func (h *Handler) ListAccounts(
	ctx context.Context,
	request api.ListAccountsRequestObject,
) (api.ListAccountsResponseObject, error) {
	accounts, err := h.accounts.List(ctx, request.Params.XUserID)
	if err != nil {
		h.fail("ListAccounts", err)
		return api.ListAccounts500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(internalError)}, nil
	}

	resp := api.ListAccounts200JSONResponse{Accounts: make([]api.Account, 0, len(accounts))}
	for _, a := range accounts {
		resp.Accounts = append(resp.Accounts, toAccount(a))
	}
	return resp, nil
}

// GetAccount handles GET /api/v1/accounts/{accountNumber}
func (h *Handler) GetAccount(
	ctx context.Context,
	request api.GetAccountRequestObject,
) (api.GetAccountResponseObject, error) {
	account, err := h.accounts.Get(ctx, request.Params.XUserID, request.AccountNumber)
	if err != nil {
		f := h.fail("GetAccount", err)
		if f.status == http.StatusNotFound {
			return api.GetAccount404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(f.body)}, nil
		}
		return api.GetAccount500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(internalError)}, nil
	}

	return api.GetAccount200JSONResponse(toAccount(account)), nil
}
