// Package spreadsheet lê workbooks Excel (e CSV no upload de aba única) para
// a importação, entregando cabeçalho normalizado e linhas cruas como texto.
package spreadsheet

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Extensões aceitas para upload
var allowedExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".csv":  true,
}

// Sheet é uma aba já lida: cabeçalho normalizado (minúsculas, sem espaços nas
// pontas) e linhas de dados como texto cru. Linhas podem ter menos células que
// o cabeçalho — o excelize descarta células vazias finais.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// ValidExtension verifica a extensão do arquivo enviado
func ValidExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// AllowedExtensions lista as extensões aceitas, para mensagens de erro
func AllowedExtensions() []string {
	return []string{".xlsx", ".xls", ".csv"}
}

// IsCSV indica se o arquivo deve ser lido como CSV
func IsCSV(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".csv")
}

func normalizeHeader(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ToLower(strings.TrimSpace(c))
	}
	return out
}

func newSheet(name string, rows [][]string) *Sheet {
	if len(rows) == 0 {
		return &Sheet{Name: name}
	}
	return &Sheet{
		Name:   name,
		Header: normalizeHeader(rows[0]),
		Rows:   rows[1:],
	}
}

// ReadWorkbook lê todas as abas de um arquivo Excel. Abas sem nenhuma linha
// de dados são devolvidas com Rows vazio; a classificação decide o que fazer.
func ReadWorkbook(r io.Reader) ([]*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir o arquivo Excel")
	}
	defer f.Close()

	var sheets []*Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler a aba %q", name)
		}
		sheets = append(sheets, newSheet(name, rows))
	}

	return sheets, nil
}

// ReadFirst lê a primeira aba de um Excel, ou o conteúdo inteiro de um CSV,
// conforme a extensão do nome do arquivo
func ReadFirst(r io.Reader, filename string) (*Sheet, error) {
	if IsCSV(filename) {
		return readCSV(r, filename)
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir o arquivo Excel")
	}
	defer f.Close()

	names := f.GetSheetList()
	if len(names) == 0 {
		return nil, errors.New("planilha sem abas")
	}

	rows, err := f.GetRows(names[0])
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a aba %q", names[0])
	}

	return newSheet(names[0], rows), nil
}

func readCSV(r io.Reader, filename string) (*Sheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o arquivo CSV")
	}

	return newSheet(filename, records), nil
}
