// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "fmt"

// ProductType identifica a linha de produto de uma planilha importada.
// Determina o contrato de colunas e a unidade de quantidade (kg ou litros).
type ProductType string

const (
	ProductPolpa   ProductType = "polpa"
	ProductExtrato ProductType = "extrato"
)

// ParseProductType valida o token de tipo recebido na API ("polpa" ou "extrato")
func ParseProductType(s string) (ProductType, error) {
	switch ProductType(s) {
	case ProductPolpa, ProductExtrato:
		return ProductType(s), nil
	}
	return "", fmt.Errorf("tipo inválido: %q. Use 'polpa' ou 'extrato'", s)
}

// QuantityField retorna o nome do campo de quantidade exposto na API para o tipo
func (t ProductType) QuantityField() string {
	if t == ProductPolpa {
		return "quantidade_kg"
	}
	return "quantidade_litros"
}

func (t ProductType) String() string {
	return string(t)
}
