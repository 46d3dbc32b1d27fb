package request

import (
	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
)

// Catalog payloads. An id of zero means "create"; a known id replaces the
// existing record.

type SpaceRequest struct {
	ID         int     `json:"id"`
	Nome       string  `json:"nome" binding:"required"`
	Unidade    string  `json:"unidade"`
	Capacidade int     `json:"capacidade"`
	CustoBase  float64 `json:"custo_base"`
}

func (r SpaceRequest) ToEntity() entities.Space {
	return entities.Space{
		ID:         r.ID,
		Nome:       r.Nome,
		Unidade:    r.Unidade,
		Capacidade: r.Capacidade,
		CustoBase:  r.CustoBase,
	}
}

type EmployeeRequest struct {
	ID    int    `json:"id"`
	Nome  string `json:"nome" binding:"required"`
	Ativo bool   `json:"ativo"`
	Turno string `json:"turno"`
}

func (r EmployeeRequest) ToEntity() entities.Employee {
	return entities.Employee{ID: r.ID, Nome: r.Nome, Ativo: r.Ativo, Turno: r.Turno}
}

type ExtraRequest struct {
	ID    int     `json:"id"`
	Nome  string  `json:"nome" binding:"required"`
	Custo float64 `json:"custo"`
}

func (r ExtraRequest) ToEntity() entities.Extra {
	return entities.Extra{ID: r.ID, Nome: r.Nome, Custo: r.Custo}
}
