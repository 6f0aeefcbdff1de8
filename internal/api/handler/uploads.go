package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/murilozgodoy/dashboard-mangas-backend/infrastructure/spreadsheet"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/config"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/usecases/importing"
	"github.com/murilozgodoy/dashboard-mangas-backend/pkg/apiErrors"
	"github.com/murilozgodoy/dashboard-mangas-backend/pkg/log"
)

func respondUploadError(w http.ResponseWriter, r *http.Request, status int, code string, erros []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	payload := map[string]any{
		"detail": map[string]any{
			"code":  code,
			"erros": erros,
		},
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("api: erro ao codificar resposta de erro")
	}
}

func uploadStatus(err error, fallback int) (int, string, []string) {
	var validationErr *importing.ValidationError
	if errors.As(err, &validationErr) {
		code := validationErr.Code
		if code == "" {
			code = apiErrors.ErrInvalidRequest
		}
		return http.StatusBadRequest, code, validationErr.Erros
	}

	var storageErr *importing.StorageError
	if errors.As(err, &storageErr) {
		return http.StatusInternalServerError, apiErrors.ErrDatabaseOperation, []string{storageErr.Error()}
	}

	return fallback, importing.ErrorCode(err), []string{err.Error()}
}

// UploadSheet recebe um arquivo de aba única e substitui a partição
// (tipo, competência) indicada no formulário
func UploadSheet(service importing.ImportService, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		maxBytes := int64(cfg.Upload.MaxFileSizeMB) << 20
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			respondUploadError(w, r, http.StatusBadRequest, apiErrors.ErrInvalidRequest, []string{"arquivo excede o tamanho máximo permitido ou formulário inválido"})
			return
		}

		tipo, err := domain.ParseProductType(r.FormValue("tipo"))
		if err != nil {
			respondUploadError(w, r, http.StatusBadRequest, apiErrors.ErrInvalidRequest, []string{err.Error()})
			return
		}

		month, err := strconv.Atoi(r.FormValue("month"))
		if err != nil {
			respondUploadError(w, r, http.StatusBadRequest, apiErrors.ErrInvalidFormat, []string{"campo 'month' inválido; informe um mês entre 1 e 12"})
			return
		}
		year, err := strconv.Atoi(r.FormValue("year"))
		if err != nil {
			respondUploadError(w, r, http.StatusBadRequest, apiErrors.ErrInvalidFormat, []string{"campo 'year' inválido; informe um ano entre 2000 e 2100"})
			return
		}
		comp, err := domain.NewCompetence(year, month)
		if err != nil {
			respondUploadError(w, r, http.StatusBadRequest, apiErrors.ErrInvalidFormat, []string{err.Error()})
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			respondUploadError(w, r, http.StatusBadRequest, apiErrors.ErrMissingRequiredData, []string{"campo 'file' ausente no formulário"})
			return
		}
		defer file.Close()

		if !spreadsheet.ValidExtension(header.Filename) {
			respondUploadError(w, r, http.StatusBadRequest, apiErrors.ErrInvalidFormat, []string{
				fmt.Sprintf("extensão não suportada; use %v", spreadsheet.AllowedExtensions()),
			})
			return
		}

		started := time.Now()
		result, err := service.ImportSheet(r.Context(), file, header.Filename, tipo, comp)
		if err != nil {
			status, code, erros := uploadStatus(err, http.StatusInternalServerError)
			log.ForContext(r.Context()).WithError(err).WithFields(log.Fields{
				"arquivo":     header.Filename,
				"tipo":        tipo,
				"competencia": comp.String(),
			}).Warn("upload: importação rejeitada")
			respondUploadError(w, r, status, code, erros)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"arquivo":             header.Filename,
			"tipo":                tipo,
			"competencia":         comp.String(),
			"linhas_importadas":   result.LinhasImportadas,
			"linhas_substituidas": result.LinhasSubstituidas,
			"duracao":             time.Since(started).String(),
		}).Info("upload: partição importada")

		respondJSON(w, r, map[string]any{
			"message":             fmt.Sprintf("importação de %s concluída", header.Filename),
			"tipo":                tipo,
			"competencia":         comp.String(),
			"linhas_importadas":   result.LinhasImportadas,
			"linhas_substituidas": result.LinhasSubstituidas,
			"erros":               result.Avisos,
		})
	})
}

// UploadWorkbook recebe uma pasta de trabalho com várias abas e importa
// cada aba reconhecida pelo nome; abas inválidas viram erros na resposta
func UploadWorkbook(service importing.ImportService, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		maxBytes := int64(cfg.Upload.MaxFileSizeMB) << 20
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			respondUploadError(w, r, http.StatusBadRequest, apiErrors.ErrInvalidRequest, []string{"arquivo excede o tamanho máximo permitido ou formulário inválido"})
			return
		}

		year, err := strconv.Atoi(r.FormValue("year"))
		if err != nil || year < 2000 || year > 2100 {
			respondUploadError(w, r, http.StatusBadRequest, apiErrors.ErrInvalidFormat, []string{"campo 'year' inválido; informe um ano entre 2000 e 2100"})
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			respondUploadError(w, r, http.StatusBadRequest, apiErrors.ErrMissingRequiredData, []string{"campo 'file' ausente no formulário"})
			return
		}
		defer file.Close()

		started := time.Now()
		result, err := service.ImportWorkbook(r.Context(), file, header.Filename, year)
		if err != nil {
			status, code, erros := uploadStatus(err, http.StatusInternalServerError)
			log.ForContext(r.Context()).WithError(err).WithFields(log.Fields{
				"arquivo": header.Filename,
				"ano":     year,
			}).Warn("upload: importação de pasta rejeitada")
			respondUploadError(w, r, status, code, erros)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"arquivo":           header.Filename,
			"ano":               year,
			"abas_importadas":   len(result.Abas),
			"abas_com_erro":     len(result.Erros),
			"linhas_importadas": result.TotalLinhas,
			"duracao":           time.Since(started).String(),
		}).Info("upload: pasta de trabalho importada")

		respondJSON(w, r, map[string]any{
			"message":          fmt.Sprintf("importação de %s concluída", header.Filename),
			"ano":              result.Ano,
			"abas_processadas": result.Abas,
			"total_linhas":     result.TotalLinhas,
			"erros":            result.Erros,
		})
	})
}
