package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bankwise/bank_account_app/internal/apperrors"
	portssvc "github.com/bankwise/bank_account_app/internal/core/ports/services"
	"github.com/bankwise/bank_account_app/internal/dto"
	"github.com/bankwise/bank_account_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService  portssvc.AccountSvcFacade
	transferService portssvc.TransferReaderSvc
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, ts portssvc.TransferReaderSvc) *accountHandler {
	return &accountHandler{
		accountService:  as,
		transferService: ts,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, transferService portssvc.TransferReaderSvc) {
	h := newAccountHandler(accountService, transferService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.PUT("/:accountID", h.updateAccount)
		accounts.DELETE("/:accountID", h.deleteAccount)
		accounts.GET("/:accountID/transfers", h.listAccountTransfers)
	}
}

// createAccount handles POST /accounts: validates the request and creates a
// new account with a freshly generated ID.
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create account", slog.Int64("owner_id", req.OwnerID), slog.String("currency_code", req.CurrencyCode))

	newAccount, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicateOwner):
			logger.Warn("Duplicate owner creating account", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnknownCurrency):
			logger.Warn("Validation error creating account", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", newAccount.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(newAccount))
}

// getAccount handles GET /accounts/:accountID.
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found", slog.String("account_id", accountID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts handles GET /accounts with limit/offset pagination.
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list accounts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// updateAccount handles PUT /accounts/:accountID: a full replacement of the
// account's owner, currency and balance.
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updatedAccount, err := h.accountService.UpdateAccount(c.Request.Context(), accountID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Account not found for update", slog.String("account_id", accountID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, apperrors.ErrDuplicateOwner):
			logger.Warn("Duplicate owner updating account", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnknownCurrency):
			logger.Warn("Validation error updating account", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
		}
		return
	}

	logger.Info("Account updated successfully", slog.String("account_id", accountID))
	c.JSON(http.StatusOK, dto.ToAccountResponse(updatedAccount))
}

// deleteAccount handles DELETE /accounts/:accountID.
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	if err := h.accountService.DeleteAccount(c.Request.Context(), accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for deletion", slog.String("account_id", accountID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to delete account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		}
		return
	}

	logger.Info("Account deleted successfully", slog.String("account_id", accountID))
	c.Status(http.StatusNoContent)
}

// listAccountTransfers handles GET /accounts/:accountID/transfers. History is
// returned even for account IDs that no longer resolve; deleted counterparties
// remain valid history entries.
func (h *accountHandler) listAccountTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	transfers, err := h.transferService.ListTransfersByAccount(c.Request.Context(), accountID)
	if err != nil {
		logger.Error("Failed to list account transfers from service", slog.String("error", err.Error()), slog.String("account_id", accountID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transfers"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTransfersResponse{Transfers: dto.ToListTransferResponse(transfers)})
}
