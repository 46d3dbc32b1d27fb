package datamanager

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/domain/entities"
)

var historyExportHeader = []string{
	"ID", "Data", "Cliente", "Contato", "Sala", "Unidade",
	"Duracao", "Tipo", "Dias Selecionados", "Horas Totais",
	"Subtotal", "Margem", "Desconto", "Valor Final",
	"Comissao Vendedor", "Comissao Gestao", "Lucro Liquido",
	"Risco", "Status", "Convertido", "Justificativa Rejeicao",
}

func historyExportRow(q entities.Quote) []string {
	dias := make([]string, len(q.DiasSelecionados))
	for i, d := range q.DiasSelecionados {
		dias[i] = strconv.Itoa(d)
	}
	justificativa := ""
	if q.JustificativaRejeicao != nil {
		justificativa = *q.JustificativaRejeicao
	}
	return []string{
		strconv.FormatInt(q.ID, 10),
		q.Data.UTC().Format("2006-01-02 15:04"),
		q.ClienteNome,
		q.ClienteContato,
		q.Sala.Nome,
		q.Sala.Unidade,
		strconv.Itoa(q.Duracao),
		q.DuracaoTipo,
		strings.Join(dias, " "),
		fmt.Sprintf("%.2f", q.Resultado.HorasTotais),
		fmt.Sprintf("%.2f", q.Resultado.SubtotalSemMargem),
		fmt.Sprintf("%.2f", q.Resultado.ValorMargem),
		fmt.Sprintf("%.2f", q.Resultado.ValorDesconto),
		fmt.Sprintf("%.2f", q.Resultado.ValorFinal),
		fmt.Sprintf("%.2f", q.Resultado.ComissaoVendedor),
		fmt.Sprintf("%.2f", q.Resultado.ComissaoGestao),
		fmt.Sprintf("%.2f", q.Resultado.LucroLiquidoReal),
		q.ClassificacaoRisco.Nivel,
		string(q.StatusAprovacao),
		strconv.FormatBool(q.Convertido),
		justificativa,
	}
}

// ExportHistoryCSV serializes the whole quote history, client columns
// included. Pure serialization over the in-memory copy, no network.
func (m *Manager) ExportHistoryCSV() (string, error) {
	history := m.ListQuotes()

	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(historyExportHeader); err != nil {
		return "", err
	}
	for _, q := range history {
		if err := w.Write(historyExportRow(q)); err != nil {
			return "", err
		}
	}
	w.Flush()
	return b.String(), w.Error()
}

// ExportHistoryXLSX serializes the quote history as a spreadsheet.
func (m *Manager) ExportHistoryXLSX() ([]byte, error) {
	history := m.ListQuotes()

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Historico"
	f.SetSheetName("Sheet1", sheet)

	for col, h := range historyExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	for row, q := range history {
		for col, v := range historyExportRow(q) {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
