package handlers

import (
	"context"
	"net/http"

	"github.com/benx421/personal-bank/internal/api"
	"github.com/benx421/personal-bank/internal/models"
	"github.com/benx421/personal-bank/internal/service"
)

// ListTransactions handles GET /api/v1/transactions
func (h *Handler) ListTransactions(
	ctx context.Context,
	request api.ListTransactionsRequestObject,
) (api.ListTransactionsResponseObject, error) {
	params := request.Params
	filter := service.HistoryFilter{
		Type:     models.TransactionType(value(params.Type)),
		Status:   models.TransactionStatus(value(params.Status)),
		Category: models.Category(value(params.Category)),
	}

	result, err := h.history.List(ctx, params.XUserID, filter, toPage(params.Page, params.Limit))
	if err != nil {
		f := h.fail("ListTransactions", err)
		if f.status == http.StatusBadRequest {
			return api.ListTransactions400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(f.body)}, nil
		}
		return api.ListTransactions500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(internalError)}, nil
	}

	return api.ListTransactions200JSONResponse(toTransactionPage(result)), nil
}

// ListAccountTransactions handles GET /api/v1/accounts/{accountNumber}/transactions
func (h *Handler) ListAccountTransactions(
	ctx context.Context,
	request api.ListAccountTransactionsRequestObject,
) (api.ListAccountTransactionsResponseObject, error) {
	params := request.Params

	result, err := h.history.ListForAccount(ctx, params.XUserID, request.AccountNumber, toPage(params.Page, params.Limit))
	if err != nil {
		f := h.fail("ListAccountTransactions", err)
		if f.status == http.StatusNotFound {
			return api.ListAccountTransactions404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(f.body)}, nil
		}
		return api.ListAccountTransactions500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(internalError)}, nil
	}

	return api.ListAccountTransactions200JSONResponse(toTransactionPage(result)), nil
}

// GetTransaction handles GET /api/v1/transactions/{transactionId}
func (h *Handler) GetTransaction(
	ctx context.Context,
	request api.GetTransactionRequestObject,
) (api.GetTransactionResponseObject, error) {
	view, err := h.history.Get(ctx, request.Params.XUserID, request.TransactionId)
	if err != nil {
		f := h.fail("GetTransaction", err)
		if f.status == http.StatusNotFound {
			return api.GetTransaction404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(f.body)}, nil
		}
		return api.GetTransaction500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(internalError)}, nil
	}

	return api.GetTransaction200JSONResponse(toTransaction(view.Transaction, view.From, view.To)), nil
}
