// Package importing orquestra a ingestão de planilhas: classificação da aba,
// validação de esquema, normalização e substituição atômica por partição
// (tipo, competência), com registro no ledger de uploads.
package importing

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/murilozgodoy/dashboard-mangas-backend/infrastructure/repository"
	"github.com/murilozgodoy/dashboard-mangas-backend/infrastructure/spreadsheet"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
	"github.com/murilozgodoy/dashboard-mangas-backend/pkg/apiErrors"
	"github.com/murilozgodoy/dashboard-mangas-backend/pkg/log"
)

type ImportService interface {
	// ImportSheet importa a primeira aba (ou o CSV) com tipo e competência
	// explícitos. Reenviar a mesma planilha é seguro: a partição inteira é
	// substituída a cada importação.
	ImportSheet(ctx context.Context, file io.Reader, filename string, tipo domain.ProductType, comp domain.Competence) (*domain.ImportResult, error)

	// ImportWorkbook importa todas as abas reconhecíveis de um workbook.
	// Tipo e mês vêm do nome de cada aba; o ano informado vale para o lote
	// inteiro. Falhas por aba acumulam em Erros sem interromper as demais.
	ImportWorkbook(ctx context.Context, file io.Reader, filename string, year int) (*domain.BulkImportResult, error)
}

type Service struct {
	repo       repository.SaleRecordRepository
	classifier *SheetClassifier
	validator  *SchemaValidator
	normalizer *RecordNormalizer
	now        func() time.Time
}

func NewService(repo repository.SaleRecordRepository) ImportService {
	return &Service{
		repo:       repo,
		classifier: NewSheetClassifier(),
		validator:  NewSchemaValidator(),
		normalizer: NewRecordNormalizer(),
		now:        time.Now,
	}
}

func (s *Service) ImportSheet(
	ctx context.Context,
	file io.Reader,
	filename string,
	tipo domain.ProductType,
	comp domain.Competence,
) (*domain.ImportResult, error) {
	if !spreadsheet.ValidExtension(filename) {
		return nil, newValidationError(apiErrors.ErrInvalidFormat, fmt.Sprintf(
			"extensão inválida. Aceitas: %s", strings.Join(spreadsheet.AllowedExtensions(), ", "),
		))
	}

	sheet, err := spreadsheet.ReadFirst(file, filename)
	if err != nil {
		return nil, newValidationError(apiErrors.ErrInvalidFormat, fmt.Sprintf("falha ao ler a planilha: %v", err))
	}

	// A classificação explícita tem precedência: o nome da aba não é
	// inspecionado quando tipo e competência vêm do formulário
	tipo, comp, err = s.classifier.Classify(sheet.Name, 0, &ExplicitClassification{Tipo: tipo, Competencia: comp})
	if err != nil {
		return nil, err
	}

	entry, err := s.importSheet(ctx, sheet, filename, sheet.Name, tipo, comp)
	if err != nil {
		switch e := err.(type) {
		case *SchemaError:
			return nil, newValidationError(e.Code(), e.Error())
		case *StorageError:
			return nil, err
		default:
			return nil, err
		}
	}

	return &domain.ImportResult{
		Tipo:               entry.Tipo,
		Competencia:        entry.Competencia,
		LinhasImportadas:   entry.LinhasImportadas,
		LinhasSubstituidas: entry.LinhasSubstituidas,
		Avisos:             entry.Avisos,
	}, nil
}

func (s *Service) ImportWorkbook(
	ctx context.Context,
	file io.Reader,
	filename string,
	year int,
) (*domain.BulkImportResult, error) {
	if spreadsheet.IsCSV(filename) {
		return nil, newValidationError(
			apiErrors.ErrInvalidFormat,
			"upload 'todas as abas' exige arquivo .xlsx (várias abas). Para CSV use o upload normal com tipo e mês/ano",
		)
	}
	if !spreadsheet.ValidExtension(filename) {
		return nil, newValidationError(apiErrors.ErrInvalidFormat, fmt.Sprintf(
			"extensão inválida. Aceitas: %s", strings.Join(spreadsheet.AllowedExtensions(), ", "),
		))
	}

	sheets, err := spreadsheet.ReadWorkbook(file)
	if err != nil {
		return nil, newValidationError(apiErrors.ErrInvalidFormat, fmt.Sprintf("falha ao ler o workbook: %v", err))
	}
	if len(sheets) == 0 {
		return nil, newValidationError(apiErrors.ErrEmptySheet, "planilha sem abas")
	}

	result := &domain.BulkImportResult{
		Ano:   year,
		Abas:  make([]domain.SheetOutcome, 0, len(sheets)),
		Erros: make([]string, 0),
	}

	var firstCode string

	for _, sheet := range sheets {
		// Cancelamento do cliente aborta antes do commit da próxima aba;
		// abas já importadas permanecem
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tipo, comp, err := s.classifier.Classify(sheet.Name, year, nil)
		if err != nil {
			result.Erros = append(result.Erros, err.Error())
			if firstCode == "" {
				firstCode = ErrorCode(err)
			}
			continue
		}

		entry, err := s.importSheet(ctx, sheet, filename, sheet.Name, tipo, comp)
		if err != nil {
			result.Erros = append(result.Erros, fmt.Sprintf("%s (%s, %s): %v", sheet.Name, tipo, comp, err))
			if firstCode == "" {
				firstCode = ErrorCode(err)
			}
			continue
		}

		result.Abas = append(result.Abas, domain.SheetOutcome{
			Aba:                sheet.Name,
			Tipo:               entry.Tipo,
			Competencia:        entry.Competencia,
			LinhasImportadas:   entry.LinhasImportadas,
			LinhasSubstituidas: entry.LinhasSubstituidas,
		})
		result.TotalLinhas += entry.LinhasImportadas
	}

	// O lote só falha por inteiro quando nenhuma aba foi importada; o código
	// reportado é o da primeira falha
	if len(result.Abas) == 0 {
		if len(result.Erros) == 0 {
			return nil, newValidationError(
				apiErrors.ErrSheetUnrecognized,
				"nenhuma aba reconhecida. O nome da aba deve conter 'Polpa' ou 'Extrato' e o mês (Jan, Fev, Jul, Ago, etc.)",
			)
		}
		return nil, &ValidationError{Code: firstCode, Erros: result.Erros}
	}

	return result, nil
}

// importSheet valida, normaliza e efetiva a substituição da partição de uma
// aba já classificada; devolve a entrada do ledger gravada na transação
func (s *Service) importSheet(
	ctx context.Context,
	sheet *spreadsheet.Sheet,
	filename string,
	sheetName string,
	tipo domain.ProductType,
	comp domain.Competence,
) (*domain.UploadLedgerEntry, error) {
	logger := log.ForContext(ctx)

	rows, warnings, err := s.validator.Validate(tipo, comp, sheet)
	if err != nil {
		return nil, err
	}

	uploadedAt := s.now().UTC()
	records := s.normalizer.Normalize(tipo, comp, rows, filename, uploadedAt)

	entry := &domain.UploadLedgerEntry{
		SourceFile: filename,
		SheetName:  sheetName,
		UploadedAt: uploadedAt,
		Avisos:     warnings,
	}

	saved, err := s.repo.ImportPartition(ctx, tipo, comp, records, entry)
	if err != nil {
		return nil, &StorageError{Err: err}
	}

	logger.WithFields(log.Fields{
		"tipo":                tipo,
		"competencia":         comp.String(),
		"linhas_importadas":   saved.LinhasImportadas,
		"linhas_substituidas": saved.LinhasSubstituidas,
		"avisos":              len(saved.Avisos),
	}).Info("importacao: partição substituída com sucesso")

	return saved, nil
}
