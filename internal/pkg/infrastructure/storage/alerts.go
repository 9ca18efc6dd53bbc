package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

// GetSeenAlerts returns every seen alert row for a tenant and server,
// resolved rows included.
func (s *Storage) GetSeenAlerts(ctx context.Context, tenant, serverID string) ([]types.SeenAlert, error) {
	collection, err := s.QuerySeenAlerts(ctx, WithTenant(tenant), WithServerID(serverID), WithLimit(10000))
	if err != nil {
		return nil, err
	}
	return collection.Data, nil
}

func (s *Storage) QuerySeenAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.SeenAlert], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	query := fmt.Sprintf(`
		SELECT fingerprint, tenant, server_id, severity, category, source_type, source_name,
		       first_seen_at, last_seen_at, resolved_at, notified_at, count(*) OVER () AS count
		FROM seen_alerts
		WHERE %s
		ORDER BY %s %s
		%s;
	`, where, condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.SeenAlert]{}, err
	}

	var fingerprint, tenant, serverID, severity, category, sourceType, sourceName string
	var firstSeenAt, lastSeenAt time.Time
	var resolvedAt, notifiedAt *time.Time
	var count int64

	alerts := make([]types.SeenAlert, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&fingerprint, &tenant, &serverID, &severity, &category, &sourceType, &sourceName,
		&firstSeenAt, &lastSeenAt, &resolvedAt, &notifiedAt, &count,
	}, func() error {
		sa := types.SeenAlert{
			Fingerprint: fingerprint,
			Tenant:      tenant,
			ServerID:    serverID,
			Severity:    types.Severity(severity),
			Category:    types.Category(category),
			SourceType:  types.SourceType(sourceType),
			SourceName:  sourceName,
			FirstSeenAt: firstSeenAt,
			LastSeenAt:  lastSeenAt,
		}

		if resolvedAt != nil {
			t := *resolvedAt
			sa.ResolvedAt = &t
		}
		if notifiedAt != nil {
			t := *notifiedAt
			sa.NotifiedAt = &t
		}

		alerts = append(alerts, sa)

		return nil
	})
	if err != nil {
		return types.Collection[types.SeenAlert]{}, err
	}

	return types.Collection[types.SeenAlert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

// UpsertSeenAlert creates the row for a fingerprint on first sight and
// refreshes it on every subsequent sight. The unique constraint on
// (tenant, server_id, fingerprint) makes concurrent passes for the same
// server converge on a single row instead of racing create against
// update.
func (s *Storage) UpsertSeenAlert(ctx context.Context, alert types.SeenAlert) error {
	if alert.Fingerprint == "" {
		return ErrMissingFingerprint
	}
	if alert.Tenant == "" {
		return ErrMissingTenant
	}

	args := pgx.NamedArgs{
		"fingerprint":   alert.Fingerprint,
		"tenant":        alert.Tenant,
		"server_id":     alert.ServerID,
		"severity":      string(alert.Severity),
		"category":      string(alert.Category),
		"source_type":   string(alert.SourceType),
		"source_name":   alert.SourceName,
		"first_seen_at": alert.FirstSeenAt,
		"last_seen_at":  alert.LastSeenAt,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO seen_alerts (fingerprint, tenant, server_id, severity, category, source_type, source_name, first_seen_at, last_seen_at, resolved_at, notified_at)
		VALUES (@fingerprint, @tenant, @server_id, @severity, @category, @source_type, @source_name, @first_seen_at, @last_seen_at, NULL, NULL)
		ON CONFLICT (tenant, server_id, fingerprint) DO UPDATE
		SET last_seen_at = EXCLUDED.last_seen_at,
		    severity = EXCLUDED.severity,
		    resolved_at = NULL;
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

// ResolveAbsent marks every unresolved row of (tenant, server) whose
// fingerprint is not in the present set as resolved. Returns the number
// of rows that were auto-resolved.
func (s *Storage) ResolveAbsent(ctx context.Context, tenant, serverID string, present []string, now time.Time) ([]types.SeenAlert, error) {
	if present == nil {
		present = []string{}
	}

	args := pgx.NamedArgs{
		"tenant":    tenant,
		"server_id": serverID,
		"present":   present,
		"now":       now,
	}

	query := `
		UPDATE seen_alerts
		SET resolved_at = @now
		WHERE tenant = @tenant AND server_id = @server_id
		  AND resolved_at IS NULL
		  AND NOT (fingerprint = ANY(@present))
		RETURNING fingerprint, tenant, server_id, severity, category, source_type, source_name, first_seen_at, last_seen_at, resolved_at, notified_at;
	`

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}

	var fingerprint, rowTenant, rowServerID, severity, category, sourceType, sourceName string
	var firstSeenAt, lastSeenAt time.Time
	var resolvedAt, notifiedAt *time.Time

	resolved := make([]types.SeenAlert, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&fingerprint, &rowTenant, &rowServerID, &severity, &category, &sourceType, &sourceName,
		&firstSeenAt, &lastSeenAt, &resolvedAt, &notifiedAt,
	}, func() error {
		sa := types.SeenAlert{
			Fingerprint: fingerprint,
			Tenant:      rowTenant,
			ServerID:    rowServerID,
			Severity:    types.Severity(severity),
			Category:    types.Category(category),
			SourceType:  types.SourceType(sourceType),
			SourceName:  sourceName,
			FirstSeenAt: firstSeenAt,
			LastSeenAt:  lastSeenAt,
		}
		if resolvedAt != nil {
			t := *resolvedAt
			sa.ResolvedAt = &t
		}
		resolved = append(resolved, sa)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resolved, nil
}

// MarkNotified records a successful delivery for the given fingerprints.
func (s *Storage) MarkNotified(ctx context.Context, tenant, serverID string, fingerprints []string, now time.Time) error {
	if len(fingerprints) == 0 {
		return nil
	}

	args := pgx.NamedArgs{
		"tenant":       tenant,
		"server_id":    serverID,
		"fingerprints": fingerprints,
		"now":          now,
	}

	_, err := s.pool.Exec(ctx, `
		UPDATE seen_alerts
		SET notified_at = @now
		WHERE tenant = @tenant AND server_id = @server_id
		  AND fingerprint = ANY(@fingerprints);
	`, args)

	return err
}
