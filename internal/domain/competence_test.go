package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompetence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Competence
		hasError bool
	}{
		{
			name:     "Token válido deve produzir ano e mês",
			input:    "2024-07",
			expected: Competence{Year: 2024, Month: time.July},
		},
		{
			name:     "Mês com zero à esquerda",
			input:    "2025-01",
			expected: Competence{Year: 2025, Month: time.January},
		},
		{
			name:     "Dezembro é o último mês aceito",
			input:    "2024-12",
			expected: Competence{Year: 2024, Month: time.December},
		},
		{
			name:     "Mês 13 deve falhar",
			input:    "2024-13",
			hasError: true,
		},
		{
			name:     "Mês 00 deve falhar",
			input:    "2024-00",
			hasError: true,
		},
		{
			name:     "Mês sem zero à esquerda deve falhar",
			input:    "2024-7",
			hasError: true,
		},
		{
			name:     "Formato com barra deve falhar",
			input:    "07/2024",
			hasError: true,
		},
		{
			name:     "Texto vazio deve falhar",
			input:    "",
			hasError: true,
		},
		{
			name:     "Ano fora da faixa deve falhar",
			input:    "1999-05",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp, err := ParseCompetence(tt.input)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, comp)
			// O token renderizado deve reproduzir a entrada
			assert.Equal(t, tt.input, comp.String())
		})
	}
}

func TestNewCompetence(t *testing.T) {
	comp, err := NewCompetence(2024, 7)
	require.NoError(t, err)
	assert.Equal(t, "2024-07", comp.String())

	_, err = NewCompetence(1995, 7)
	assert.Error(t, err)

	_, err = NewCompetence(2024, 0)
	assert.Error(t, err)

	_, err = NewCompetence(2024, 13)
	assert.Error(t, err)
}

func TestCompetenceOrdering(t *testing.T) {
	older := Competence{Year: 2024, Month: time.July}
	newer := Competence{Year: 2024, Month: time.August}
	nextYear := Competence{Year: 2025, Month: time.January}

	assert.True(t, older.Before(newer))
	assert.True(t, newer.Before(nextYear))
	assert.False(t, newer.Before(older))
	assert.Equal(t, 0, older.Compare(Competence{Year: 2024, Month: time.July}))

	// A ordenação lexicográfica dos tokens coincide com a cronológica
	assert.Less(t, older.String(), newer.String())
	assert.Less(t, newer.String(), nextYear.String())
}

func TestCompetenceContains(t *testing.T) {
	comp := Competence{Year: 2024, Month: time.July}

	assert.True(t, comp.Contains(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, comp.Contains(time.Date(2024, 7, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, comp.Contains(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, comp.Contains(time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC)))
}

func TestParseProductType(t *testing.T) {
	tipo, err := ParseProductType("polpa")
	require.NoError(t, err)
	assert.Equal(t, ProductPolpa, tipo)
	assert.Equal(t, "quantidade_kg", tipo.QuantityField())

	tipo, err = ParseProductType("extrato")
	require.NoError(t, err)
	assert.Equal(t, ProductExtrato, tipo)
	assert.Equal(t, "quantidade_litros", tipo.QuantityField())

	_, err = ParseProductType("suco")
	assert.Error(t, err)

	_, err = ParseProductType("")
	assert.Error(t, err)
}
