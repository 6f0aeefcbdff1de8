package importing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
)

func TestSheetClassifier_Classify(t *testing.T) {
	classifier := NewSheetClassifier()

	tests := []struct {
		name         string
		sheet        string
		year         int
		expectedTipo domain.ProductType
		expectedComp string
		hasError     bool
	}{
		{
			name:         "Aba de extrato com mês abreviado",
			sheet:        "Extrato de manga - Jul",
			year:         2024,
			expectedTipo: domain.ProductExtrato,
			expectedComp: "2024-07",
		},
		{
			name:         "Aba de polpa com mês abreviado",
			sheet:        "Polpa congelada - Ago",
			year:         2024,
			expectedTipo: domain.ProductPolpa,
			expectedComp: "2024-08",
		},
		{
			name:         "Maiúsculas e espaços extras não importam",
			sheet:        "  POLPA JAN  ",
			year:         2025,
			expectedTipo: domain.ProductPolpa,
			expectedComp: "2025-01",
		},
		{
			name:         "Mês por extenso contém o token abreviado",
			sheet:        "Extrato Dezembro",
			year:         2024,
			expectedTipo: domain.ProductExtrato,
			expectedComp: "2024-12",
		},
		{
			name:     "Nome sem produto reconhecível",
			sheet:    "Resumo - Jul",
			year:     2024,
			hasError: true,
		},
		{
			name:     "Nome sem mês reconhecível",
			sheet:    "Polpa consolidado",
			year:     2024,
			hasError: true,
		},
		{
			name:     "Nome com os dois produtos é ambíguo",
			sheet:    "Polpa e Extrato - Jul",
			year:     2024,
			hasError: true,
		},
		{
			name:     "Nome com dois meses distintos é ambíguo",
			sheet:    "Polpa Jul e Ago",
			year:     2024,
			hasError: true,
		},
		{
			name:     "Ano fora da faixa aceita",
			sheet:    "Polpa Jul",
			year:     1980,
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tipo, comp, err := classifier.Classify(tt.sheet, tt.year, nil)

			if tt.hasError {
				require.Error(t, err)
				var clsErr *ClassificationError
				assert.ErrorAs(t, err, &clsErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedTipo, tipo)
			assert.Equal(t, tt.expectedComp, comp.String())
		})
	}
}

func TestSheetClassifier_ExplicitOverridesName(t *testing.T) {
	classifier := NewSheetClassifier()

	explicit := &ExplicitClassification{
		Tipo:        domain.ProductPolpa,
		Competencia: domain.Competence{Year: 2024, Month: time.March},
	}

	// O nome da aba nem é inspecionado quando a classificação vem de fora
	tipo, comp, err := classifier.Classify("qualquer coisa", 2030, explicit)

	require.NoError(t, err)
	assert.Equal(t, domain.ProductPolpa, tipo)
	assert.Equal(t, "2024-03", comp.String())
}
