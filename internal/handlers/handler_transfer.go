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

// transferHandler handles HTTP requests related to transfers.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

// newTransferHandler creates a new transferHandler.
func newTransferHandler(ts portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{transferService: ts}
}

// registerTransferRoutes registers routes related to transfers.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := newTransferHandler(transferService)

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.transferFunds)
		transfers.GET("", h.listTransfers)
	}
}

// transferFunds handles POST /transfers: settles one fund movement and
// returns both updated accounts plus the appended history record.
func (h *transferHandler) transferFunds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransferFunds", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to transfer funds",
		slog.String("from_account_id", req.FromAccountID),
		slog.String("to_account_id", req.ToAccountID),
		slog.String("amount", req.Amount.String()),
	)

	settlement, err := h.transferService.TransferFunds(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Account not found for transfer", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			logger.Warn("Insufficient funds for transfer", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidAmount),
			errors.Is(err, apperrors.ErrSameAccount),
			errors.Is(err, apperrors.ErrUnknownCurrency),
			errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error settling transfer", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to settle transfer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transfer funds"})
		}
		return
	}

	logger.Info("Transfer settled successfully", slog.String("transfer_id", settlement.Transfer.TransferID))
	c.JSON(http.StatusCreated, dto.ToSettlementResponse(settlement))
}

// listTransfers handles GET /transfers: the full history in insertion order.
func (h *transferHandler) listTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	transfers, err := h.transferService.ListTransfers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transfers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transfers"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTransfersResponse{Transfers: dto.ToListTransferResponse(transfers)})
}
