package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/usecases/importing"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/usecases/importing/mocks"
	"github.com/murilozgodoy/dashboard-mangas-backend/pkg/apiErrors"
)

// uploadRequest monta um POST multipart com os campos e o arquivo informados
func uploadRequest(t *testing.T, target string, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func detailErros(t *testing.T, rec *httptest.ResponseRecorder) []any {
	t.Helper()
	body := decodeBody(t, rec)
	detail, ok := body["detail"].(map[string]any)
	require.True(t, ok, "resposta de erro sem campo detail: %s", rec.Body.String())
	erros, ok := detail["erros"].([]any)
	require.True(t, ok)
	return erros
}

func detailCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, rec)
	detail, ok := body["detail"].(map[string]any)
	require.True(t, ok, "resposta de erro sem campo detail: %s", rec.Body.String())
	code, ok := detail["code"].(string)
	require.True(t, ok, "resposta de erro sem campo code: %s", rec.Body.String())
	return code
}

func TestUploadSheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockImportService(ctrl)
	service.EXPECT().
		ImportSheet(gomock.Any(), gomock.Any(), "vendas.xlsx", domain.ProductPolpa, gomock.Any()).
		DoAndReturn(func(_ any, _ any, _ string, tipo domain.ProductType, comp domain.Competence) (*domain.ImportResult, error) {
			require.Equal(t, "2024-07", comp.String())
			return &domain.ImportResult{
				Tipo:               tipo,
				Competencia:        comp.String(),
				LinhasImportadas:   10,
				LinhasSubstituidas: 8,
				Avisos:             []string{"linha 5 ignorada: campo obrigatório vazio (canal)"},
			}, nil
		})

	req := uploadRequest(t, "/api/uploads", map[string]string{
		"tipo":  "polpa",
		"month": "7",
		"year":  "2024",
	}, "vendas.xlsx", []byte("conteudo"))
	rec := httptest.NewRecorder()

	UploadSheet(service, testConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "polpa", body["tipo"])
	assert.Equal(t, "2024-07", body["competencia"])
	assert.Equal(t, 10.0, body["linhas_importadas"])
	assert.Equal(t, 8.0, body["linhas_substituidas"])
	erros, ok := body["erros"].([]any)
	require.True(t, ok)
	assert.Len(t, erros, 1)
}

func TestUploadSheet_MissingType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockImportService(ctrl)

	req := uploadRequest(t, "/api/uploads", map[string]string{
		"month": "7",
		"year":  "2024",
	}, "vendas.xlsx", []byte("conteudo"))
	rec := httptest.NewRecorder()

	UploadSheet(service, testConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	erros := detailErros(t, rec)
	require.Len(t, erros, 1)
	assert.Contains(t, erros[0], "tipo inválido")
	assert.Equal(t, apiErrors.ErrInvalidRequest, detailCode(t, rec))
}

func TestUploadSheet_InvalidMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockImportService(ctrl)

	req := uploadRequest(t, "/api/uploads", map[string]string{
		"tipo":  "polpa",
		"month": "13",
		"year":  "2024",
	}, "vendas.xlsx", []byte("conteudo"))
	rec := httptest.NewRecorder()

	UploadSheet(service, testConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	erros := detailErros(t, rec)
	assert.Contains(t, erros[0], "mês inválido")
	assert.Equal(t, apiErrors.ErrInvalidFormat, detailCode(t, rec))
}

func TestUploadSheet_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockImportService(ctrl)

	req := uploadRequest(t, "/api/uploads", map[string]string{
		"tipo":  "polpa",
		"month": "7",
		"year":  "2024",
	}, "", nil)
	rec := httptest.NewRecorder()

	UploadSheet(service, testConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	erros := detailErros(t, rec)
	assert.Contains(t, erros[0], "file")
	assert.Equal(t, apiErrors.ErrMissingRequiredData, detailCode(t, rec))
}

func TestUploadSheet_UnsupportedExtension(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockImportService(ctrl)

	req := uploadRequest(t, "/api/uploads", map[string]string{
		"tipo":  "polpa",
		"month": "7",
		"year":  "2024",
	}, "vendas.pdf", []byte("conteudo"))
	rec := httptest.NewRecorder()

	UploadSheet(service, testConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	erros := detailErros(t, rec)
	assert.Contains(t, erros[0], "extensão não suportada")
	assert.Equal(t, apiErrors.ErrInvalidFormat, detailCode(t, rec))
}

func TestUploadSheet_ValidationErrorFromService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockImportService(ctrl)
	service.EXPECT().
		ImportSheet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &importing.ValidationError{Code: apiErrors.ErrMissingColumns, Erros: []string{
			"colunas obrigatórias ausentes: quantidade_kg",
			"nenhuma linha válida após a validação",
		}})

	req := uploadRequest(t, "/api/uploads", map[string]string{
		"tipo":  "polpa",
		"month": "7",
		"year":  "2024",
	}, "vendas.xlsx", []byte("conteudo"))
	rec := httptest.NewRecorder()

	UploadSheet(service, testConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	erros := detailErros(t, rec)
	assert.Len(t, erros, 2)
	assert.Equal(t, apiErrors.ErrMissingColumns, detailCode(t, rec))
}

func TestUploadSheet_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockImportService(ctrl)
	service.EXPECT().
		ImportSheet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &importing.StorageError{Err: assert.AnError})

	req := uploadRequest(t, "/api/uploads", map[string]string{
		"tipo":  "polpa",
		"month": "7",
		"year":  "2024",
	}, "vendas.xlsx", []byte("conteudo"))
	rec := httptest.NewRecorder()

	UploadSheet(service, testConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	erros := detailErros(t, rec)
	assert.Contains(t, erros[0], "erro ao gravar a importação")
	assert.Equal(t, apiErrors.ErrDatabaseOperation, detailCode(t, rec))
}

func TestUploadWorkbook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockImportService(ctrl)
	service.EXPECT().
		ImportWorkbook(gomock.Any(), gomock.Any(), "anual.xlsx", 2024).
		Return(&domain.BulkImportResult{
			Ano: 2024,
			Abas: []domain.SheetOutcome{
				{Aba: "Polpa Jul", Tipo: domain.ProductPolpa, Competencia: "2024-07", LinhasImportadas: 12},
				{Aba: "Extrato Jul", Tipo: domain.ProductExtrato, Competencia: "2024-07", LinhasImportadas: 8},
			},
			TotalLinhas: 20,
			Erros:       []string{"Resumo Anual: nome da aba não contém 'polpa' nem 'extrato'"},
		}, nil)

	req := uploadRequest(t, "/api/uploads/todas-abas", map[string]string{
		"year": "2024",
	}, "anual.xlsx", []byte("conteudo"))
	rec := httptest.NewRecorder()

	UploadWorkbook(service, testConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, 2024.0, body["ano"])
	assert.Equal(t, 20.0, body["total_linhas"])

	abas, ok := body["abas_processadas"].([]any)
	require.True(t, ok)
	require.Len(t, abas, 2)
	first, ok := abas[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Polpa Jul", first["aba"])
	assert.Equal(t, "2024-07", first["competencia"])

	erros, ok := body["erros"].([]any)
	require.True(t, ok)
	assert.Len(t, erros, 1)
}

func TestUploadWorkbook_InvalidYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockImportService(ctrl)

	req := uploadRequest(t, "/api/uploads/todas-abas", map[string]string{
		"year": "1850",
	}, "anual.xlsx", []byte("conteudo"))
	rec := httptest.NewRecorder()

	UploadWorkbook(service, testConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	erros := detailErros(t, rec)
	assert.Contains(t, erros[0], "'year'")
}

func TestUploadWorkbook_AllSheetsFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockImportService(ctrl)
	service.EXPECT().
		ImportWorkbook(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &importing.ValidationError{Code: apiErrors.ErrSheetUnrecognized, Erros: []string{
			"Resumo: nome da aba não contém 'polpa' nem 'extrato'",
			"Notas: nome da aba não contém 'polpa' nem 'extrato'",
		}})

	req := uploadRequest(t, "/api/uploads/todas-abas", map[string]string{
		"year": "2024",
	}, "anual.xlsx", []byte("conteudo"))
	rec := httptest.NewRecorder()

	UploadWorkbook(service, testConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	erros := detailErros(t, rec)
	assert.Len(t, erros, 2)
	assert.Equal(t, apiErrors.ErrSheetUnrecognized, detailCode(t, rec))
}
