package importing

import (
	"fmt"
	"strings"
	"time"

	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
)

// monthTokens mapeia as abreviações de mês aceitas em nomes de aba
// (ex: "Polpa congelada - Jul" -> julho)
var monthTokens = []struct {
	token string
	month time.Month
}{
	{"jan", time.January},
	{"fev", time.February},
	{"mar", time.March},
	{"abr", time.April},
	{"mai", time.May},
	{"jun", time.June},
	{"jul", time.July},
	{"ago", time.August},
	{"set", time.September},
	{"out", time.October},
	{"nov", time.November},
	{"dez", time.December},
}

// ExplicitClassification carrega tipo e competência informados diretamente no
// upload de aba única; quando presente, o nome da aba não é inspecionado
type ExplicitClassification struct {
	Tipo        domain.ProductType
	Competencia domain.Competence
}

// SheetClassifier infere (tipo de produto, competência) a partir do nome da
// aba. O ano vem de fora: nomes de aba não o codificam, então um único valor
// vale para o lote inteiro.
type SheetClassifier struct{}

func NewSheetClassifier() *SheetClassifier {
	return &SheetClassifier{}
}

// Classify deriva tipo e competência da aba. A classificação explícita, se
// fornecida, tem precedência e dispensa a leitura do nome.
func (c *SheetClassifier) Classify(sheetName string, year int, explicit *ExplicitClassification) (domain.ProductType, domain.Competence, error) {
	if explicit != nil {
		return explicit.Tipo, explicit.Competencia, nil
	}

	name := strings.ToLower(strings.TrimSpace(sheetName))

	tipo, err := c.productFromName(sheetName, name)
	if err != nil {
		return "", domain.Competence{}, err
	}

	month, err := c.monthFromName(sheetName, name)
	if err != nil {
		return "", domain.Competence{}, err
	}

	comp, err := domain.NewCompetence(year, int(month))
	if err != nil {
		return "", domain.Competence{}, &ClassificationError{Sheet: sheetName, Reason: err.Error()}
	}

	return tipo, comp, nil
}

func (c *SheetClassifier) productFromName(sheetName, name string) (domain.ProductType, error) {
	hasPolpa := strings.Contains(name, "polpa")
	hasExtrato := strings.Contains(name, "extrato")

	switch {
	case hasPolpa && hasExtrato:
		return "", &ClassificationError{
			Sheet:     sheetName,
			Reason:    "nome da aba ambíguo: contém 'polpa' e 'extrato'",
			Ambiguous: true,
		}
	case hasPolpa:
		return domain.ProductPolpa, nil
	case hasExtrato:
		return domain.ProductExtrato, nil
	}

	return "", &ClassificationError{
		Sheet:  sheetName,
		Reason: "nome da aba não contém 'polpa' nem 'extrato'",
	}
}

func (c *SheetClassifier) monthFromName(sheetName, name string) (time.Month, error) {
	var found []time.Month
	for _, mt := range monthTokens {
		if strings.Contains(name, mt.token) {
			found = append(found, mt.month)
		}
	}

	switch len(found) {
	case 0:
		return 0, &ClassificationError{
			Sheet:  sheetName,
			Reason: "nome da aba não contém mês reconhecível (Jan, Fev, ..., Dez)",
		}
	case 1:
		return found[0], nil
	}

	return 0, &ClassificationError{
		Sheet:     sheetName,
		Reason:    fmt.Sprintf("nome da aba ambíguo: contém %d meses distintos", len(found)),
		Ambiguous: true,
	}
}
