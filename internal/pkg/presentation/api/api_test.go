package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"

	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/application/alerts"
	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/application/thresholds"
	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/presentation/api/auth"
	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func doRequest(t *testing.T, r chi.Router, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	req = req.WithContext(auth.WithAllowedTenants(req.Context(), []string{"acme"}))

	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	return res
}

func TestGetServerAlerts(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		GetServerAlertsFunc: func(ctx context.Context, serverID string, tenants []string) (alerts.AlertsResult, error) {
			is.Equal(serverID, "srv-001")
			is.Equal(tenants, []string{"acme"})
			return alerts.AlertsResult{
				Alerts:  []types.Alert{{ID: "a1", Severity: types.SeverityCritical}},
				Summary: types.AlertSummary{Total: 1, Critical: 1},
			}, nil
		},
	}

	r := chi.NewRouter()
	r.Get("/api/v0/servers/{serverID}/alerts", getServerAlertsHandler(testLogger(), svc, nil))

	res := doRequest(t, r, http.MethodGet, "/api/v0/servers/srv-001/alerts", nil)

	is.Equal(res.Code, http.StatusOK)

	var result alerts.AlertsResult
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &result))
	is.Equal(result.Summary.Total, 1)
}

func TestGetServerAlertsUnknownServerReturns404(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		GetServerAlertsFunc: func(ctx context.Context, serverID string, tenants []string) (alerts.AlertsResult, error) {
			return alerts.AlertsResult{}, alerts.ErrServerNotFound
		},
	}

	r := chi.NewRouter()
	r.Get("/api/v0/servers/{serverID}/alerts", getServerAlertsHandler(testLogger(), svc, nil))

	res := doRequest(t, r, http.MethodGet, "/api/v0/servers/nosuchserver/alerts", nil)

	is.Equal(res.Code, http.StatusNotFound)
}

func TestGetAlertHistoryPagination(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		HistoryFunc: func(ctx context.Context, serverID string, offset, limit int, tenants []string) (types.Collection[types.SeenAlert], error) {
			is.Equal(offset, 20)
			is.Equal(limit, 10)
			return types.Collection[types.SeenAlert]{
				Data:       []types.SeenAlert{{Fingerprint: "fp1"}},
				Count:      1,
				Offset:     20,
				Limit:      10,
				TotalCount: 42,
			}, nil
		},
	}

	r := chi.NewRouter()
	r.Get("/api/v0/servers/{serverID}/alerts/history", getAlertHistoryHandler(testLogger(), svc))

	res := doRequest(t, r, http.MethodGet, "/api/v0/servers/srv-001/alerts/history?offset=20&limit=10", nil)

	is.Equal(res.Code, http.StatusOK)

	var response struct {
		Meta struct {
			TotalRecords uint64 `json:"totalRecords"`
			Count        uint64 `json:"count"`
		} `json:"meta"`
	}
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.Equal(response.Meta.TotalRecords, uint64(42))
	is.Equal(response.Meta.Count, uint64(1))
}

func TestGetServerHealth(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		GetHealthCheckFunc: func(ctx context.Context, serverID string, tenants []string) (types.HealthCheck, error) {
			return types.HealthCheck{Overall: types.HealthStatusHealthy}, nil
		},
	}

	r := chi.NewRouter()
	r.Get("/api/v0/servers/{serverID}/health", getServerHealthHandler(testLogger(), svc, nil))

	res := doRequest(t, r, http.MethodGet, "/api/v0/servers/srv-001/health", nil)

	is.Equal(res.Code, http.StatusOK)

	var hc types.HealthCheck
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &hc))
	is.Equal(hc.Overall, types.HealthStatusHealthy)
}

func TestGetThresholds(t *testing.T) {
	is := is.New(t)

	svc := &thresholds.ThresholdServiceMock{
		GetThresholdsFunc: func(ctx context.Context, tenant string) types.Thresholds {
			is.Equal(tenant, "acme")
			return thresholds.DefaultThresholds()
		},
	}

	r := chi.NewRouter()
	r.Get("/api/v0/thresholds", getThresholdsHandler(testLogger(), svc))

	res := doRequest(t, r, http.MethodGet, "/api/v0/thresholds", nil)

	is.Equal(res.Code, http.StatusOK)

	var th types.Thresholds
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &th))
	is.Equal(th.MemoryPercent.Critical, 95.0)
}

func TestGetThresholdsForeignTenantIsForbidden(t *testing.T) {
	is := is.New(t)

	svc := &thresholds.ThresholdServiceMock{}

	r := chi.NewRouter()
	r.Get("/api/v0/thresholds", getThresholdsHandler(testLogger(), svc))

	res := doRequest(t, r, http.MethodGet, "/api/v0/thresholds?tenant=other", nil)

	is.Equal(res.Code, http.StatusForbidden)
}

func TestUpdateThresholds(t *testing.T) {
	is := is.New(t)

	svc := &thresholds.ThresholdServiceMock{
		UpdateThresholdsFunc: func(ctx context.Context, tenant string, patch types.ThresholdsPatch) types.UpdateResult {
			is.True(patch.QueueMessages != nil)
			is.Equal(patch.QueueMessages.Warning, 500.0)
			is.True(patch.MemoryPercent == nil)
			return types.UpdateResult{Success: true, Message: "thresholds updated"}
		},
	}

	r := chi.NewRouter()
	r.Put("/api/v0/thresholds", updateThresholdsHandler(testLogger(), svc))

	body := strings.NewReader(`{"queueMessages":{"warning":500,"critical":2000}}`)
	res := doRequest(t, r, http.MethodPut, "/api/v0/thresholds", body)

	is.Equal(res.Code, http.StatusOK)
}

func TestUpdateThresholdsRejectionReturns403WithMessage(t *testing.T) {
	is := is.New(t)

	svc := &thresholds.ThresholdServiceMock{
		UpdateThresholdsFunc: func(ctx context.Context, tenant string, patch types.ThresholdsPatch) types.UpdateResult {
			return types.UpdateResult{Success: false, Message: "current plan does not include threshold customization"}
		},
	}

	r := chi.NewRouter()
	r.Put("/api/v0/thresholds", updateThresholdsHandler(testLogger(), svc))

	res := doRequest(t, r, http.MethodPut, "/api/v0/thresholds", strings.NewReader(`{}`))

	is.Equal(res.Code, http.StatusForbidden)

	var result types.UpdateResult
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &result))
	is.True(result.Message != "")
}

func TestGetDefaultThresholds(t *testing.T) {
	is := is.New(t)

	svc := &thresholds.ThresholdServiceMock{
		DefaultsFunc: func() types.Thresholds {
			return thresholds.DefaultThresholds()
		},
	}

	r := chi.NewRouter()
	r.Get("/api/v0/thresholds/defaults", getDefaultThresholdsHandler(testLogger(), svc))

	res := doRequest(t, r, http.MethodGet, "/api/v0/thresholds/defaults", nil)

	is.Equal(res.Code, http.StatusOK)

	var th types.Thresholds
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &th))
	is.Equal(th.QueueMessages.Critical, 50000.0)
}
