package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"

	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/application/alerts"
	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/application/thresholds"
	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/infrastructure/webevents"
	"github.com/rabbitwatch/cluster-mgmt/internal/pkg/presentation/api/auth"
	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

var tracer = otel.Tracer("cluster-mgmt/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, alertSvc alerts.AlertService, thresholdSvc thresholds.ThresholdService, we webevents.WebEvents) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator.RequireAccess(auth.AnyScope))

			r.Route("/servers/{serverID}", func(r chi.Router) {
				r.Get("/alerts", getServerAlertsHandler(log, alertSvc, we))
				r.Get("/alerts/history", getAlertHistoryHandler(log, alertSvc))
				r.Get("/health", getServerHealthHandler(log, alertSvc, we))
			})

			r.Route("/thresholds", func(r chi.Router) {
				r.Get("/", getThresholdsHandler(log, thresholdSvc))
				r.Put("/", updateThresholdsHandler(log, thresholdSvc))
				r.Get("/defaults", getDefaultThresholdsHandler(log, thresholdSvc))
			})
		})

		if we != nil {
			r.Mount("/events", we.Server())
		}
	})

	return router, nil
}

func getServerAlertsHandler(log *slog.Logger, svc alerts.AlertService, we webevents.WebEvents) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetTenantsWithAllowedScopes(r.Context(), auth.AnyScope)

		ctx, span := tracer.Start(r.Context(), "get-server-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		serverID := chi.URLParam(r, "serverID")
		if serverID != "" {
			requestLogger = requestLogger.With(slog.String("server_id", serverID))
		}

		result, err := svc.GetServerAlerts(ctx, serverID, allowedTenants)
		if errors.Is(err, alerts.ErrServerNotFound) {
			requestLogger.Debug("server not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not evaluate alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if we != nil {
			we.PublishAlertSummary(serverID, result.Summary)
		}

		b, err := json.Marshal(result)
		if err != nil {
			requestLogger.Error("unable to marshal alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func getAlertHistoryHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetTenantsWithAllowedScopes(r.Context(), auth.AnyScope)

		ctx, span := tracer.Start(r.Context(), "get-alert-history")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		serverID := chi.URLParam(r, "serverID")
		if serverID != "" {
			requestLogger = requestLogger.With(slog.String("server_id", serverID))
		}

		offset := parseQueryInt(r, "offset", 0)
		limit := parseQueryInt(r, "limit", 100)

		seen, err := svc.History(ctx, serverID, offset, limit, allowedTenants)
		if errors.Is(err, alerts.ErrServerNotFound) {
			requestLogger.Debug("server not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch alert history", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		response := ApiResponse{
			Meta: &meta{
				TotalRecords: seen.TotalCount,
				Offset:       &seen.Offset,
				Limit:        &seen.Limit,
				Count:        seen.Count,
			},
			Data: seen.Data,
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(response.Byte())
	}
}

func getServerHealthHandler(log *slog.Logger, svc alerts.AlertService, we webevents.WebEvents) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetTenantsWithAllowedScopes(r.Context(), auth.AnyScope)

		ctx, span := tracer.Start(r.Context(), "get-server-health")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		serverID := chi.URLParam(r, "serverID")
		if serverID != "" {
			requestLogger = requestLogger.With(slog.String("server_id", serverID))
		}

		hc, err := svc.GetHealthCheck(ctx, serverID, allowedTenants)
		if errors.Is(err, alerts.ErrServerNotFound) {
			requestLogger.Debug("server not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not run health check", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if we != nil {
			we.PublishHealth(serverID, hc)
		}

		b, err := json.Marshal(hc)
		if err != nil {
			requestLogger.Error("unable to marshal health check", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func getThresholdsHandler(log *slog.Logger, svc thresholds.ThresholdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetTenantsWithAllowedScopes(r.Context(), auth.AnyScope)

		ctx, span := tracer.Start(r.Context(), "get-thresholds")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		tenant, ok := selectTenant(r, allowedTenants)
		if !ok {
			requestLogger.Warn("tenant not allowed")
			w.WriteHeader(http.StatusForbidden)
			return
		}

		th := svc.GetThresholds(ctx, tenant)

		b, err := json.Marshal(th)
		if err != nil {
			requestLogger.Error("unable to marshal thresholds", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func updateThresholdsHandler(log *slog.Logger, svc thresholds.ThresholdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetTenantsWithAllowedScopes(r.Context(), auth.AnyScope)

		ctx, span := tracer.Start(r.Context(), "update-thresholds")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		tenant, ok := selectTenant(r, allowedTenants)
		if !ok {
			requestLogger.Warn("tenant not allowed")
			w.WriteHeader(http.StatusForbidden)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var patch types.ThresholdsPatch
		err = json.Unmarshal(body, &patch)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		result := svc.UpdateThresholds(ctx, tenant, patch)

		b, err := json.Marshal(result)
		if err != nil {
			requestLogger.Error("unable to marshal update result", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		if !result.Success {
			w.WriteHeader(http.StatusForbidden)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		w.Write(b)
	}
}

func getDefaultThresholdsHandler(log *slog.Logger, svc thresholds.ThresholdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		b, err := json.Marshal(svc.Defaults())
		if err != nil {
			log.Error("unable to marshal default thresholds", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

// selectTenant picks the tenant a threshold operation applies to. An
// explicit tenant query parameter must be within the caller's allowed
// set; without one the first allowed tenant is used.
func selectTenant(r *http.Request, allowedTenants []string) (string, bool) {
	requested := r.URL.Query().Get("tenant")

	if requested == "" {
		if len(allowedTenants) == 0 {
			return "", false
		}
		return allowedTenants[0], true
	}

	for _, t := range allowedTenants {
		if t == requested {
			return requested, true
		}
	}

	return "", false
}

func parseQueryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}

	return n
}
