package payroll_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	"github.com/code-hero23/peopledesk-sub002/internal/payroll"
	payrollerrors "github.com/code-hero23/peopledesk-sub002/internal/payroll/errors"
	mock_payroll "github.com/code-hero23/peopledesk-sub002/internal/payroll/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const handlerUserID = "9d2c6a4e-1f7b-4c55-8e0a-6b3d2c1f4a90"

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newPayrollRouter(svc payroll.Service, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := payroll.NewHandler(svc, nil)
	r.Use(func(c *gin.Context) {
		c.Set("user_id", handlerUserID)
		c.Set("role", role)
		c.Next()
	})
	r.GET("/payroll/my-summary", h.MySummary)
	r.GET("/payroll/my-summary/slip", h.SalarySlip)
	r.GET("/payroll/users/:userId/summary", h.UserSummary)
	r.GET("/payroll/report", h.ExportReport)
	r.POST("/payroll/import-manual", h.ImportManual)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func importRequest(t *testing.T, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/payroll/import-manual", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestPayrollHandler_MySummary(t *testing.T) {
	t.Run("default cycle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_payroll.NewMockService(ctrl)
		svc.EXPECT().MySummary(gomock.Any(), handlerUserID, 0, 0).
			Return(payroll.Summary{Cycle: payroll.CyclePeriod{Month: 3, Year: 2026}}, nil)

		rec := get(newPayrollRouter(svc, domain.RoleEmployee), "/payroll/my-summary")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeEnvelope(t, rec).Ok)
	})

	t.Run("explicit period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_payroll.NewMockService(ctrl)
		svc.EXPECT().MySummary(gomock.Any(), handlerUserID, 2, 2026).
			Return(payroll.Summary{}, nil)

		rec := get(newPayrollRouter(svc, domain.RoleEmployee), "/payroll/my-summary?month=2&year=2026")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_payroll.NewMockService(ctrl)

		rec := get(newPayrollRouter(svc, domain.RoleEmployee), "/payroll/my-summary?month=maret&year=2026")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_payroll.NewMockService(ctrl)
		svc.EXPECT().MySummary(gomock.Any(), handlerUserID, 0, 0).
			Return(payroll.Summary{}, payrollerrors.ErrUserNotFound)

		rec := get(newPayrollRouter(svc, domain.RoleEmployee), "/payroll/my-summary")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPayrollHandler_UserSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_payroll.NewMockService(ctrl)
	svc.EXPECT().UserSummary(gomock.Any(), "u-42", 3, 2026).Return(payroll.Summary{}, nil)

	rec := get(newPayrollRouter(svc, domain.RoleAdmin), "/payroll/users/u-42/summary?month=3&year=2026")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPayrollHandler_SalarySlip(t *testing.T) {
	t.Run("attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_payroll.NewMockService(ctrl)
		svc.EXPECT().SalarySlipPDF(gomock.Any(), handlerUserID, 3, 2026).
			Return([]byte("%PDF-1.4"), "salary-slip-2026-03.pdf", nil)

		rec := get(newPayrollRouter(svc, domain.RoleEmployee), "/payroll/my-summary/slip?month=3&year=2026")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "salary-slip-2026-03.pdf")
		assert.Equal(t, "%PDF-1.4", rec.Body.String())
	})

	t.Run("hidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_payroll.NewMockService(ctrl)
		svc.EXPECT().SalarySlipPDF(gomock.Any(), handlerUserID, 0, 0).
			Return(nil, "", payrollerrors.ErrSalaryHidden)

		rec := get(newPayrollRouter(svc, domain.RoleEmployee), "/payroll/my-summary/slip")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestPayrollHandler_ExportReport(t *testing.T) {
	t.Run("ae manager scoped to AE", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_payroll.NewMockService(ctrl)
		svc.EXPECT().ExportReport(gomock.Any(), 3, 2026, "AE").
			Return([]byte("xlsx"), "Payroll_Report_3_2026.xlsx", nil)

		rec := get(newPayrollRouter(svc, domain.RoleAEManager), "/payroll/report?month=3&year=2026&designation=LA")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "Payroll_Report_3_2026.xlsx")
	})

	t.Run("admin keeps designation filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_payroll.NewMockService(ctrl)
		svc.EXPECT().ExportReport(gomock.Any(), 0, 0, "LA").
			Return([]byte("xlsx"), "Payroll_Report_2_2026.xlsx", nil)

		rec := get(newPayrollRouter(svc, domain.RoleAdmin), "/payroll/report?designation=LA")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPayrollHandler_ImportManual(t *testing.T) {
	csv := []byte("Email,Net Payout\na@peopledesk.test,1000\n")

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_payroll.NewMockService(ctrl)
		svc.EXPECT().ImportManual(gomock.Any(), handlerUserID, csv, "march.csv", 3, 2026).
			Return(payroll.ImportResult{Month: 3, Year: 2026, Imported: 1}, nil)

		req := importRequest(t, map[string]string{"month": "3", "year": "2026"}, "march.csv", csv)
		rec := httptest.NewRecorder()
		newPayrollRouter(svc, domain.RoleAdmin).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Contains(t, string(env.Data), `"imported":1`)
	})

	t.Run("missing period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_payroll.NewMockService(ctrl)

		req := importRequest(t, map[string]string{}, "march.csv", csv)
		rec := httptest.NewRecorder()
		newPayrollRouter(svc, domain.RoleAdmin).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_payroll.NewMockService(ctrl)

		req := importRequest(t, map[string]string{"month": "3", "year": "2026"}, "", nil)
		rec := httptest.NewRecorder()
		newPayrollRouter(svc, domain.RoleAdmin).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
