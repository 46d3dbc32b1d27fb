package handlers

import (
	"net/http"

	response "github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/adapter/http/dto/response"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/usecase"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// ExportHistoryCSV streams the full quote history as a CSV download.
//
// @Summary  Exporta o histórico em CSV
// @Tags     reports
// @Produce  text/csv
// @Success  200 {string} string
// @Router   /reports/history.csv [get]
func (h *ReportHandler) ExportHistoryCSV(c *gin.Context) {
	csvData, err := h.usecase.HistoryCSV(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="historico_orcamentos.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvData))
}

// ExportHistoryXLSX streams the full quote history as a spreadsheet download.
//
// @Summary  Exporta o histórico em XLSX
// @Tags     reports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success  200 {string} binary
// @Router   /reports/history.xlsx [get]
func (h *ReportHandler) ExportHistoryXLSX(c *gin.Context) {
	xlsxData, err := h.usecase.HistoryXLSX(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="historico_orcamentos.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, xlsxData)
}

// ListRenewals returns past clients whose event sits inside the renewal
// contact window.
//
// @Summary  Lista oportunidades de renovação
// @Tags     reports
// @Produce  json
// @Success  200 {array} response.RenewalResponse
// @Router   /reports/renewals [get]
func (h *ReportHandler) ListRenewals(c *gin.Context) {
	opps := h.usecase.Renewals(c.Request.Context())
	c.JSON(http.StatusOK, response.FromRenewals(opps))
}
