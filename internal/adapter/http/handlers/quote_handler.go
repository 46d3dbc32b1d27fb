package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/adapter/http/dto/request"
	response "github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/adapter/http/dto/response"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/datamanager"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/pricing"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/usecase"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quote calculation and history.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CalculateQuote prices a request and appends the result to the history.
// Incomplete payloads are accepted and priced in simulation mode.
//
// @Summary  Calcula e registra um orçamento
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    payload body request.QuoteCalcRequest true "Dados do orçamento"
// @Success  201 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /quotes [post]
func (h *QuoteHandler) CalculateQuote(c *gin.Context) {
	var payload request.QuoteCalcRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Calculate(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// ListQuotes returns the saved history, most recent first.
//
// @Summary  Lista o histórico de orçamentos
// @Tags     quotes
// @Produce  json
// @Success  200 {array} response.QuoteResponse
// @Router   /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes := h.usecase.List(c.Request.Context())
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// GetQuoteByID returns a single saved quote.
//
// @Summary  Busca um orçamento pelo id
// @Tags     quotes
// @Produce  json
// @Param    id path int true "Id do orçamento"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_QUOTE_ID", "Invalid quote id", http.StatusBadRequest).ToHTTPError())
		return
	}

	quote, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// UpdateQuoteStatus applies an approval transition. Rejections must carry a
// justification of at least ten meaningful characters.
//
// @Summary  Atualiza o status de aprovação de um orçamento
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id path int true "Id do orçamento"
// @Param    payload body request.StatusUpdateRequest true "Novo status"
// @Success  200 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_QUOTE_ID", "Invalid quote id", http.StatusBadRequest).ToHTTPError())
		return
	}

	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	status, err := payload.ResolveStatus()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid approval status", http.StatusBadRequest).ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateStatus(c.Request.Context(), id, status, payload.Justificativa)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_ID", "Invalid quote id", http.StatusBadRequest)
	case errors.Is(err, datamanager.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid approval status", http.StatusBadRequest)
	case errors.Is(err, datamanager.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, datamanager.ErrDataIntegrityViolation):
		return pkg.NewDomainErrorSimple("DATA_INTEGRITY_VIOLATION", "Rejection requires a justification of at least 10 characters", http.StatusUnprocessableEntity)
	case errors.Is(err, pricing.ErrNoSpaceAvailable):
		return pkg.NewDomainErrorSimple("NO_SPACE_AVAILABLE", "No space is registered for pricing", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrWeekendStaffing):
		return pkg.NewDomainErrorSimple("WEEKEND_STAFFING", "Weekend events require at least 3 active employees", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
