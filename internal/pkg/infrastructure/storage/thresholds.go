package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

// GetThresholds returns the stored threshold set for a tenant.
// ErrNoRows is returned when the tenant has never stored one.
func (s *Storage) GetThresholds(ctx context.Context, tenant string) (types.Thresholds, error) {
	if tenant == "" {
		return types.Thresholds{}, ErrMissingTenant
	}

	var data json.RawMessage

	err := s.pool.QueryRow(ctx, `
		SELECT data FROM alert_thresholds WHERE tenant = @tenant;
	`, pgx.NamedArgs{"tenant": tenant}).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Thresholds{}, ErrNoRows
		}
		return types.Thresholds{}, err
	}

	thresholds := types.Thresholds{}

	err = json.Unmarshal(data, &thresholds)
	if err != nil {
		return types.Thresholds{}, fmt.Errorf("could not unmarshal stored thresholds: %w", err)
	}

	return thresholds, nil
}

func (s *Storage) UpsertThresholds(ctx context.Context, tenant string, thresholds types.Thresholds) error {
	if tenant == "" {
		return ErrMissingTenant
	}

	data, err := json.Marshal(thresholds)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO alert_thresholds (tenant, data, modified_on)
		VALUES (@tenant, @data, CURRENT_TIMESTAMP)
		ON CONFLICT (tenant) DO UPDATE
		SET data = EXCLUDED.data,
		    modified_on = CURRENT_TIMESTAMP;
	`, pgx.NamedArgs{"tenant": tenant, "data": data})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}
