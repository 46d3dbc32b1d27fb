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
	errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)
)

// AdminHandler exposes the reference catalog, the pricing settings and the
// manual sync trigger.
type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// ListSpaces returns the registered rentable spaces.
//
// @Summary  Lista as salas
// @Tags     catalog
// @Produce  json
// @Success  200 {array} entities.Space
// @Router   /spaces [get]
func (h *AdminHandler) ListSpaces(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Spaces(c.Request.Context()))
}

// SaveSpace creates or replaces a space record.
//
// @Summary  Salva uma sala
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    payload body request.SpaceRequest true "Dados da sala"
// @Success  201 {object} entities.Space
// @Failure  400 {object} pkg.HTTPError
// @Router   /spaces [post]
func (h *AdminHandler) SaveSpace(c *gin.Context) {
	var payload request.SpaceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	space, err := h.usecase.SaveSpace(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, space)
}

// ListStaff returns the staffing records.
//
// @Summary  Lista os funcionários
// @Tags     catalog
// @Produce  json
// @Success  200 {array} entities.Employee
// @Router   /staff [get]
func (h *AdminHandler) ListStaff(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Staff(c.Request.Context()))
}

// SaveEmployee creates or replaces an employee record.
//
// @Summary  Salva um funcionário
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    payload body request.EmployeeRequest true "Dados do funcionário"
// @Success  201 {object} entities.Employee
// @Failure  400 {object} pkg.HTTPError
// @Router   /staff [post]
func (h *AdminHandler) SaveEmployee(c *gin.Context) {
	var payload request.EmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	employee, err := h.usecase.SaveEmployee(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// ListExtras returns the optional add-on items.
//
// @Summary  Lista os extras
// @Tags     catalog
// @Produce  json
// @Success  200 {array} entities.Extra
// @Router   /extras [get]
func (h *AdminHandler) ListExtras(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Extras(c.Request.Context()))
}

// SaveExtra creates or replaces an add-on item.
//
// @Summary  Salva um extra
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    payload body request.ExtraRequest true "Dados do extra"
// @Success  201 {object} entities.Extra
// @Failure  400 {object} pkg.HTTPError
// @Router   /extras [post]
func (h *AdminHandler) SaveExtra(c *gin.Context) {
	var payload request.ExtraRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	extra, err := h.usecase.SaveExtra(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, extra)
}

// GetSettings returns the current pricing settings.
//
// @Summary  Consulta as configurações de precificação
// @Tags     settings
// @Produce  json
// @Success  200 {object} entities.Settings
// @Router   /settings [get]
func (h *AdminHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Settings(c.Request.Context()))
}

// UpdateSettings replaces the pricing settings document.
//
// @Summary  Atualiza as configurações de precificação
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    payload body request.SettingsRequest true "Configurações"
// @Success  200 {object} entities.Settings
// @Failure  400 {object} pkg.HTTPError
// @Router   /settings [put]
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest).ToHTTPError())
		return
	}

	settings, err := h.usecase.UpdateSettings(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, settings)
}

// TriggerSync pushes all pending history and lead records to the remote
// store and reports how many went through.
//
// @Summary  Dispara uma sincronização manual
// @Tags     settings
// @Produce  json
// @Success  200 {object} response.SyncResponse
// @Failure  502 {object} pkg.HTTPError
// @Router   /sync [post]
func (h *AdminHandler) TriggerSync(c *gin.Context) {
	synced, err := h.usecase.SyncNow(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("SYNC_FAILED", "Sync pass failed", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SyncResponse{Synced: synced})
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSpaceName),
		errors.Is(err, usecase.ErrInvalidEmployeeName),
		errors.Is(err, usecase.ErrInvalidExtraName):
		return pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
