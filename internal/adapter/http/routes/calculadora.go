package routes

import (
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathLeads    = "/leads"
	PathReports  = "/reports"
	PathSpaces   = "/spaces"
	PathStaff    = "/staff"
	PathExtras   = "/extras"
	PathSettings = "/settings"
	PathSync     = "/sync"
)

func addCalculadoraRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	leadHandler *handlers.LeadHandler,
	reportHandler *handlers.ReportHandler,
	adminHandler *handlers.AdminHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CalculateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuoteByID)
		quotes.PATCH("/:id/status", quoteHandler.UpdateQuoteStatus)
	}

	leads := rg.Group(PathLeads)
	{
		leads.POST("", leadHandler.CreateLead)
		leads.GET("", leadHandler.ListLeads)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/history.csv", reportHandler.ExportHistoryCSV)
		reports.GET("/history.xlsx", reportHandler.ExportHistoryXLSX)
		reports.GET("/renewals", reportHandler.ListRenewals)
	}

	// Catálogo de referência e configurações.
	rg.GET(PathSpaces, adminHandler.ListSpaces)
	rg.POST(PathSpaces, adminHandler.SaveSpace)
	rg.GET(PathStaff, adminHandler.ListStaff)
	rg.POST(PathStaff, adminHandler.SaveEmployee)
	rg.GET(PathExtras, adminHandler.ListExtras)
	rg.POST(PathExtras, adminHandler.SaveExtra)
	rg.GET(PathSettings, adminHandler.GetSettings)
	rg.PUT(PathSettings, adminHandler.UpdateSettings)
	rg.POST(PathSync, adminHandler.TriggerSync)
}
