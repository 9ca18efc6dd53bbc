package thresholds

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

var entitledTiers = []string{"startup", "pro", "enterprise"}

func TestGetThresholdsFallsBackToDefaultsOnReadError(t *testing.T) {
	is := is.New(t)

	storage := &ThresholdStorageMock{
		GetThresholdsFunc: func(ctx context.Context, tenant string) (types.Thresholds, error) {
			return types.Thresholds{}, errors.New("connection refused")
		},
	}

	svc := New(storage, entitledTiers)

	th := svc.GetThresholds(context.Background(), "acme")
	is.Equal(th, DefaultThresholds())
}

func TestGetThresholdsReturnsStoredValues(t *testing.T) {
	is := is.New(t)

	custom := DefaultThresholds()
	custom.MemoryPercent = types.ThresholdPair{Warning: 70, Critical: 90}

	storage := &ThresholdStorageMock{
		GetThresholdsFunc: func(ctx context.Context, tenant string) (types.Thresholds, error) {
			return custom, nil
		},
	}

	svc := New(storage, entitledTiers)

	th := svc.GetThresholds(context.Background(), "acme")
	is.Equal(th.MemoryPercent.Warning, 70.0)
	is.Equal(th.MemoryPercent.Critical, 90.0)
}

func TestDefaultMemoryThresholds(t *testing.T) {
	is := is.New(t)

	th := DefaultThresholds()
	is.Equal(th.MemoryPercent.Warning, 80.0)
	is.Equal(th.MemoryPercent.Critical, 95.0)
}

func TestCanModifyChecksPlanTier(t *testing.T) {
	is := is.New(t)

	storage := &ThresholdStorageMock{
		GetTenantFunc: func(ctx context.Context, tenantID string) (types.Tenant, error) {
			if tenantID == "acme" {
				return types.Tenant{ID: "acme", PlanTier: "pro"}, nil
			}
			return types.Tenant{ID: tenantID, PlanTier: "free"}, nil
		},
	}

	svc := New(storage, entitledTiers)

	is.True(svc.CanModify(context.Background(), "acme"))
	is.True(!svc.CanModify(context.Background(), "smallco"))
}

func TestCanModifyUnknownTenant(t *testing.T) {
	is := is.New(t)

	storage := &ThresholdStorageMock{
		GetTenantFunc: func(ctx context.Context, tenantID string) (types.Tenant, error) {
			return types.Tenant{}, errors.New("tenant not found")
		},
	}

	svc := New(storage, entitledTiers)

	is.True(!svc.CanModify(context.Background(), "ghost"))
}

func TestUpdateThresholdsRejectsUnentitledPlan(t *testing.T) {
	is := is.New(t)

	storage := &ThresholdStorageMock{
		GetTenantFunc: func(ctx context.Context, tenantID string) (types.Tenant, error) {
			return types.Tenant{ID: tenantID, PlanTier: "free"}, nil
		},
	}

	svc := New(storage, entitledTiers)

	result := svc.UpdateThresholds(context.Background(), "smallco", types.ThresholdsPatch{})
	is.True(!result.Success)
	is.True(result.Message != "")
	is.Equal(len(storage.UpsertThresholdsCalls()), 0)
}

func TestUpdateThresholdsAppliesPartialPatch(t *testing.T) {
	is := is.New(t)

	storage := &ThresholdStorageMock{
		GetTenantFunc: func(ctx context.Context, tenantID string) (types.Tenant, error) {
			return types.Tenant{ID: tenantID, PlanTier: "pro"}, nil
		},
		GetThresholdsFunc: func(ctx context.Context, tenant string) (types.Thresholds, error) {
			return types.Thresholds{}, errors.New("no stored thresholds")
		},
		UpsertThresholdsFunc: func(ctx context.Context, tenant string, th types.Thresholds) error {
			return nil
		},
	}

	svc := New(storage, entitledTiers)

	patch := types.ThresholdsPatch{
		QueueMessages: &types.ThresholdPair{Warning: 500, Critical: 2000},
	}

	result := svc.UpdateThresholds(context.Background(), "acme", patch)
	is.True(result.Success)

	is.Equal(len(storage.UpsertThresholdsCalls()), 1)
	stored := storage.UpsertThresholdsCalls()[0].Th

	// the patched category changed, everything else kept its default
	is.Equal(stored.QueueMessages.Warning, 500.0)
	is.Equal(stored.QueueMessages.Critical, 2000.0)
	is.Equal(stored.MemoryPercent, DefaultThresholds().MemoryPercent)
}

func TestUpdateThresholdsReportsStoreFailure(t *testing.T) {
	is := is.New(t)

	storage := &ThresholdStorageMock{
		GetTenantFunc: func(ctx context.Context, tenantID string) (types.Tenant, error) {
			return types.Tenant{ID: tenantID, PlanTier: "enterprise"}, nil
		},
		GetThresholdsFunc: func(ctx context.Context, tenant string) (types.Thresholds, error) {
			return DefaultThresholds(), nil
		},
		UpsertThresholdsFunc: func(ctx context.Context, tenant string, th types.Thresholds) error {
			return errors.New("write failed")
		},
	}

	svc := New(storage, entitledTiers)

	result := svc.UpdateThresholds(context.Background(), "acme", types.ThresholdsPatch{})
	is.True(!result.Success)
}
