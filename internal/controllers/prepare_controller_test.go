package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"employee-prep/internal/dto"
	"employee-prep/pkg/customvalidator"
	apperrors "employee-prep/pkg/errors"
	"employee-prep/pkg/utils"
)

type fakePrepareService struct {
	summary *dto.PrepareSummaryDTO
	err     error
	calls   int
	gotIn   string
	gotOut  string
}

func (f *fakePrepareService) PrepareDataForML(_ context.Context, performancePath, outputPath string) (*dto.PrepareSummaryDTO, error) {
	f.calls++
	f.gotIn, f.gotOut = performancePath, outputPath
	return f.summary, f.err
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	e := echo.New()
	e.Validator = utils.NewValidator(v)
	return e
}

func postJSON(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/prepare", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPrepareController_RunPrepare(t *testing.T) {
	svc := &fakePrepareService{summary: &dto.PrepareSummaryDTO{Rows: 4, Departments: []string{"IT", "HR", "Finance"}, OutputPath: "out.csv"}}
	ctrl := NewPrepareController(svc, "perf.csv", "out.csv", zap.NewNop())

	e := newTestEcho(t)
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/prepare", nil), rec)

	require.NoError(t, ctrl.RunPrepare(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, "perf.csv", svc.gotIn)
	assert.Equal(t, "out.csv", svc.gotOut)

	var resp struct {
		Status bool                  `json:"status"`
		Body   dto.PrepareSummaryDTO `json:"body"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Equal(t, 4, resp.Body.Rows)
	assert.Equal(t, []string{"IT", "HR", "Finance"}, resp.Body.Departments)
}

func TestPrepareController_RunPrepareDataError(t *testing.T) {
	svc := &fakePrepareService{err: apperrors.NewBatchDataError("clean", "нет ни одной оценки")}
	ctrl := NewPrepareController(svc, "perf.csv", "out.csv", zap.NewNop())

	e := newTestEcho(t)
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/prepare", nil), rec)

	require.NoError(t, ctrl.RunPrepare(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp utils.HttpResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Status)
	assert.Contains(t, resp.Message, "нет ни одной оценки")
}

func TestPrepareController_DownloadResult(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "prepared_data.csv")
	ctrl := NewPrepareController(&fakePrepareService{}, "perf.csv", out, zap.NewNop())
	e := newTestEcho(t)

	rec := httptest.NewRecorder()
	require.NoError(t, ctrl.DownloadResult(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/prepare/result", nil), rec)))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	require.NoError(t, os.WriteFile(out, []byte("id,name\n1,Alice\n"), 0644))
	rec = httptest.NewRecorder()
	require.NoError(t, ctrl.DownloadResult(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/prepare/result", nil), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "id,name\n1,Alice\n", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "prepared_data.csv")
}

func TestPrepareController_RunPrepareWithBody(t *testing.T) {
	svc := &fakePrepareService{summary: &dto.PrepareSummaryDTO{Rows: 4}}
	ctrl := NewPrepareController(svc, "perf.csv", "out.csv", zap.NewNop())
	e := newTestEcho(t)

	c, rec := postJSON(e, `{"performance_path":"other.xlsx","output_path":"custom/prepared.xlsx"}`)
	require.NoError(t, ctrl.RunPrepare(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "other.xlsx", svc.gotIn)
	assert.Equal(t, "custom/prepared.xlsx", svc.gotOut)

	c, rec = postJSON(e, `{"performance_path":"scores.csv"}`)
	require.NoError(t, ctrl.RunPrepare(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "scores.csv", svc.gotIn)
	assert.Equal(t, "out.csv", svc.gotOut, "пустое поле берётся из конфигурации")
}

func TestPrepareController_RunPrepareRejectsBadBody(t *testing.T) {
	svc := &fakePrepareService{summary: &dto.PrepareSummaryDTO{}}
	ctrl := NewPrepareController(svc, "perf.csv", "out.csv", zap.NewNop())
	e := newTestEcho(t)

	c, rec := postJSON(e, `{"output_path":"prepared.json"}`)
	require.NoError(t, ctrl.RunPrepare(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = postJSON(e, `{"output_path":`)
	require.NoError(t, ctrl.RunPrepare(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, 0, svc.calls)
}

func TestPrepareController_DownloadServesLastRunOutput(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.csv")
	require.NoError(t, os.WriteFile(custom, []byte("id\n1\n"), 0644))

	svc := &fakePrepareService{summary: &dto.PrepareSummaryDTO{Rows: 1}}
	ctrl := NewPrepareController(svc, "perf.csv", filepath.Join(dir, "missing.csv"), zap.NewNop())
	e := newTestEcho(t)

	c, rec := postJSON(e, `{"output_path":"`+filepath.ToSlash(custom)+`"}`)
	require.NoError(t, ctrl.RunPrepare(c))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	require.NoError(t, ctrl.DownloadResult(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/prepare/result", nil), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "id\n1\n", rec.Body.String())
}
