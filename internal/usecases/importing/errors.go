package importing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/murilozgodoy/dashboard-mangas-backend/pkg/apiErrors"
)

// ClassificationError indica que o nome da aba não permitiu inferir tipo de
// produto ou mês (token ausente ou ambíguo). No modo lote é um erro por aba,
// nunca aborta o batch inteiro.
type ClassificationError struct {
	Sheet     string
	Reason    string
	Ambiguous bool
}

func (e *ClassificationError) Error() string {
	if e.Sheet == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Sheet, e.Reason)
}

// Code devolve o código público da API correspondente à falha
func (e *ClassificationError) Code() string {
	if e.Ambiguous {
		return apiErrors.ErrSheetAmbiguous
	}
	return apiErrors.ErrSheetUnrecognized
}

// SchemaError aborta a importação da aba: colunas obrigatórias ausentes ou
// nenhuma linha válida restante após a validação linha a linha
type SchemaError struct {
	Sheet   string
	Missing []string
	Reason  string
}

func (e *SchemaError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("colunas obrigatórias ausentes: %s", strings.Join(e.Missing, ", "))
	}
	return e.Reason
}

func (e *SchemaError) Code() string {
	if len(e.Missing) > 0 {
		return apiErrors.ErrMissingColumns
	}
	return apiErrors.ErrEmptySheet
}

// StorageError indica que a transação de substituição não pôde ser efetivada.
// O estado anterior da partição permanece intacto; nunca há retry automático.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("erro ao gravar a importação: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ValidationError agrega as falhas que impediram qualquer importação; o
// handler a converte em resposta 400 com {detail:{code, erros}}
type ValidationError struct {
	Code  string
	Erros []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Erros, "; ")
}

func newValidationError(code string, erros ...string) *ValidationError {
	return &ValidationError{Code: code, Erros: erros}
}

// ErrorCode traduz um erro da importação para o código público da API
func ErrorCode(err error) string {
	var ce *ClassificationError
	if errors.As(err, &ce) {
		return ce.Code()
	}
	var se *SchemaError
	if errors.As(err, &se) {
		return se.Code()
	}
	var ve *ValidationError
	if errors.As(err, &ve) && ve.Code != "" {
		return ve.Code
	}
	var st *StorageError
	if errors.As(err, &st) {
		return apiErrors.ErrDatabaseOperation
	}
	return apiErrors.ErrInternalServer
}
