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

// currencyHandler handles HTTP requests related to the currency registry and
// conversion previews.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
	exchangeService portssvc.ExchangeSvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade, es portssvc.ExchangeSvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
		exchangeService: es,
	}
}

// registerCurrencyRoutes registers routes related to currencies and rates.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade, exchangeService portssvc.ExchangeSvcFacade) {
	h := newCurrencyHandler(currencyService, exchangeService)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.createCurrency)
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:currencyCode", h.getCurrency)
	}

	rates := rg.Group("/rates")
	{
		rates.GET("/convert", h.convertRate)
	}
}

// createCurrency handles POST /currencies: extends the supported set.
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	currency, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating currency", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create currency in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create currency"})
		}
		return
	}

	logger.Info("Currency created successfully", slog.String("currency_code", currency.CurrencyCode))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(currency))
}

// getCurrency handles GET /currencies/:currencyCode.
func (h *currencyHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("currencyCode")

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), currencyCode)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to get currency from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies handles GET /currencies.
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ListCurrenciesResponse{Currencies: dto.ToListCurrencyResponse(currencies)})
}

// convertRate handles GET /rates/convert: a conversion preview so a client
// can show the credit amount before submitting a transfer.
func (h *currencyHandler) convertRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ConvertRateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ConvertRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	converted, err := h.exchangeService.Convert(c.Request.Context(), params.Amount, params.From, params.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownCurrency) {
			logger.Warn("Unknown currency in conversion", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to convert amount", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert amount"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ConvertRateResponse{
		Amount:          params.Amount,
		FromCurrency:    params.From,
		ToCurrency:      params.To,
		ConvertedAmount: converted,
	})
}
