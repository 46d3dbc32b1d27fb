package entities

// Space is a rentable room/unit (sala). Reference data: created and edited
// through the catalog endpoints, referenced by id from every quote.
//
// Storage model (DynamoDB, remote mirror):
//   - PK: id (remote document id, minted by the store)
//
// CustoBase is the daily base cost of operating the room, added to the
// process-wide fixed daily cost during pricing.
type Space struct {
	ID         int     `json:"id"`
	Nome       string  `json:"nome"`
	Unidade    string  `json:"unidade"`
	Capacidade int     `json:"capacidade,omitempty"`
	CustoBase  float64 `json:"custo_base,omitempty"`
}

// Employee is a staffing record (funcionário). Only active employees count
// toward the weekend staffing minimum.
type Employee struct {
	ID    int    `json:"id"`
	Nome  string `json:"nome"`
	Ativo bool   `json:"ativo"`
	Turno string `json:"turno,omitempty"`
}

// Extra is an optional flat-fee add-on item for a quote.
type Extra struct {
	ID    int     `json:"id"`
	Nome  string  `json:"nome"`
	Custo float64 `json:"custo"`
}
