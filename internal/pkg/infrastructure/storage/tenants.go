package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

type tenantSettings struct {
	NotificationsEnabled   bool                  `json:"notificationsEnabled"`
	ContactEmail           string                `json:"contactEmail,omitempty"`
	NotificationSeverities []types.Severity      `json:"notificationSeverities,omitempty"`
	Webhooks               []types.WebhookConfig `json:"webhooks,omitempty"`
	SlackIntegrations      []types.SlackConfig   `json:"slackIntegrations,omitempty"`
}

func (s *Storage) GetTenant(ctx context.Context, tenantID string) (types.Tenant, error) {
	if tenantID == "" {
		return types.Tenant{}, ErrMissingTenant
	}

	var name, planTier string
	var data json.RawMessage

	err := s.pool.QueryRow(ctx, `
		SELECT name, plan_tier, settings FROM tenants WHERE tenant_id = @tenant_id;
	`, pgx.NamedArgs{"tenant_id": tenantID}).Scan(&name, &planTier, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Tenant{}, ErrTenantNotFound
		}
		return types.Tenant{}, err
	}

	settings := tenantSettings{}

	err = json.Unmarshal(data, &settings)
	if err != nil {
		return types.Tenant{}, fmt.Errorf("could not unmarshal tenant settings: %w", err)
	}

	return types.Tenant{
		ID:                     tenantID,
		Name:                   name,
		PlanTier:               planTier,
		NotificationsEnabled:   settings.NotificationsEnabled,
		ContactEmail:           settings.ContactEmail,
		NotificationSeverities: settings.NotificationSeverities,
		Webhooks:               settings.Webhooks,
		SlackIntegrations:      settings.SlackIntegrations,
	}, nil
}

func (s *Storage) AddTenant(ctx context.Context, tenant types.Tenant) error {
	if tenant.ID == "" {
		return ErrMissingTenant
	}

	data, err := json.Marshal(tenantSettings{
		NotificationsEnabled:   tenant.NotificationsEnabled,
		ContactEmail:           tenant.ContactEmail,
		NotificationSeverities: tenant.NotificationSeverities,
		Webhooks:               tenant.Webhooks,
		SlackIntegrations:      tenant.SlackIntegrations,
	})
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO tenants (tenant_id, name, plan_tier, settings)
		VALUES (@tenant_id, @name, @plan_tier, @settings)
		ON CONFLICT (tenant_id) DO UPDATE
		SET name = EXCLUDED.name,
		    plan_tier = EXCLUDED.plan_tier,
		    settings = EXCLUDED.settings;
	`, pgx.NamedArgs{
		"tenant_id": tenant.ID,
		"name":      tenant.Name,
		"plan_tier": tenant.PlanTier,
		"settings":  data,
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

// GetServer looks up a registered cluster, constrained to the callers
// allowed tenants when any are given.
func (s *Storage) GetServer(ctx context.Context, serverID string, tenants ...string) (types.Server, error) {
	args := pgx.NamedArgs{"server_id": serverID}

	query := `SELECT server_id, name, url, username, password, tenant FROM servers WHERE server_id = @server_id`
	if len(tenants) > 0 {
		query += ` AND tenant = ANY(@tenants)`
		args["tenants"] = tenants
	}

	var srv types.Server

	err := s.pool.QueryRow(ctx, query+";", args).
		Scan(&srv.ID, &srv.Name, &srv.URL, &srv.Username, &srv.Password, &srv.Tenant)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Server{}, ErrServerNotFound
		}
		return types.Server{}, err
	}

	return srv, nil
}

// GetServers lists every registered cluster, used by the watchdog to
// sweep all tenants.
func (s *Storage) GetServers(ctx context.Context) ([]types.Server, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT server_id, name, url, username, password, tenant FROM servers ORDER BY created_on;
	`)
	if err != nil {
		return nil, err
	}

	var srv types.Server
	servers := make([]types.Server, 0)

	_, err = pgx.ForEachRow(rows, []any{&srv.ID, &srv.Name, &srv.URL, &srv.Username, &srv.Password, &srv.Tenant}, func() error {
		servers = append(servers, srv)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return servers, nil
}

func (s *Storage) AddServer(ctx context.Context, srv types.Server) error {
	if srv.Tenant == "" {
		return ErrMissingTenant
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO servers (server_id, name, url, username, password, tenant)
		VALUES (@server_id, @name, @url, @username, @password, @tenant)
		ON CONFLICT (server_id) DO UPDATE
		SET name = EXCLUDED.name,
		    url = EXCLUDED.url,
		    username = EXCLUDED.username,
		    password = EXCLUDED.password;
	`, pgx.NamedArgs{
		"server_id": srv.ID,
		"name":      srv.Name,
		"url":       srv.URL,
		"username":  srv.Username,
		"password":  srv.Password,
		"tenant":    srv.Tenant,
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}
