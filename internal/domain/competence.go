package domain

import (
	"fmt"
	"regexp"
	"time"
)

var competencePattern = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[0-2])$`)

// Competence é o ano-mês ao qual um lote de vendas pertence (competência),
// independente das datas individuais dos pedidos. Imutável após construída;
// totalmente ordenada por (ano, mês).
type Competence struct {
	Year  int
	Month time.Month
}

// NewCompetence valida ano e mês e constrói a competência
func NewCompetence(year, month int) (Competence, error) {
	if year < 2000 || year > 2100 {
		return Competence{}, fmt.Errorf("ano inválido: %d. Use um valor entre 2000 e 2100", year)
	}
	if month < 1 || month > 12 {
		return Competence{}, fmt.Errorf("mês inválido: %d. Use um valor entre 1 e 12", month)
	}
	return Competence{Year: year, Month: time.Month(month)}, nil
}

// ParseCompetence interpreta o token externo no formato "2024-07"
func ParseCompetence(s string) (Competence, error) {
	m := competencePattern.FindStringSubmatch(s)
	if m == nil {
		return Competence{}, fmt.Errorf("competência inválida: %q. Use o formato AAAA-MM (ex: 2024-07)", s)
	}
	var year, month int
	fmt.Sscanf(m[1], "%d", &year)
	fmt.Sscanf(m[2], "%d", &month)
	return NewCompetence(year, month)
}

// String renderiza o token externo ("2024-07"); a ordenação lexicográfica
// do token coincide com a ordenação por (ano, mês)
func (c Competence) String() string {
	return fmt.Sprintf("%04d-%02d", c.Year, int(c.Month))
}

// Compare retorna -1, 0 ou 1 segundo a ordem (ano, mês)
func (c Competence) Compare(other Competence) int {
	switch {
	case c.Year != other.Year:
		if c.Year < other.Year {
			return -1
		}
		return 1
	case c.Month != other.Month:
		if c.Month < other.Month {
			return -1
		}
		return 1
	}
	return 0
}

func (c Competence) Before(other Competence) bool {
	return c.Compare(other) < 0
}

// Contains verifica se a data do pedido cai dentro do mês da competência
func (c Competence) Contains(date time.Time) bool {
	return date.Year() == c.Year && date.Month() == c.Month
}

func (c Competence) IsZero() bool {
	return c.Year == 0
}
