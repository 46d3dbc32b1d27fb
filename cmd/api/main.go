package main

import (
	_ "github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/docs"
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Calculadora de Orçamentos CDL API
// @version         1.0
// @description     Quote calculator and CRM for event space rentals (quotes, leads, renewal radar and exports).

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
