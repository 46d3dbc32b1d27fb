package handlers

import (
	"errors"
	"net/http"

	request "github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/adapter/http/dto/request"
	response "github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/adapter/http/dto/response"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/usecase"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)
)

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// CreateLead captures a pre-quote contact.
//
// @Summary  Registra um lead
// @Tags     leads
// @Accept   json
// @Produce  json
// @Param    payload body request.LeadRequest true "Dados do lead"
// @Success  201 {object} response.LeadResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLead(lead))
}

// ListLeads returns every captured lead.
//
// @Summary  Lista os leads
// @Tags     leads
// @Produce  json
// @Success  200 {array} response.LeadResponse
// @Router   /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads := h.usecase.List(c.Request.Context())
	c.JSON(http.StatusOK, response.FromLeads(leads))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadName):
		return pkg.NewDomainErrorSimple("INVALID_LEAD_NAME", "Lead name is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
