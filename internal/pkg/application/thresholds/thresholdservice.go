package thresholds

import (
	"context"
	"slices"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

//go:generate moq -rm -out thresholdstorage_mock.go . ThresholdStorage
type ThresholdStorage interface {
	GetThresholds(ctx context.Context, tenant string) (types.Thresholds, error)
	UpsertThresholds(ctx context.Context, tenant string, th types.Thresholds) error
	GetTenant(ctx context.Context, tenantID string) (types.Tenant, error)
}

//go:generate moq -rm -out thresholdservice_mock.go . ThresholdService
type ThresholdService interface {
	GetThresholds(ctx context.Context, tenant string) types.Thresholds
	UpdateThresholds(ctx context.Context, tenant string, patch types.ThresholdsPatch) types.UpdateResult
	CanModify(ctx context.Context, tenant string) bool
	Defaults() types.Thresholds
}

type thresholdSvc struct {
	storage       ThresholdStorage
	entitledTiers []string
}

func New(s ThresholdStorage, entitledTiers []string) ThresholdService {
	return thresholdSvc{
		storage:       s,
		entitledTiers: entitledTiers,
	}
}

// DefaultThresholds is the process-wide fallback used whenever a tenant
// has no stored configuration or the store cannot be read.
func DefaultThresholds() types.Thresholds {
	return types.Thresholds{
		MemoryPercent:         types.ThresholdPair{Warning: 80, Critical: 95},
		DiskFreePercent:       types.ThresholdPair{Warning: 20, Critical: 10},
		FileDescriptorPercent: types.ThresholdPair{Warning: 80, Critical: 95},
		SocketPercent:         types.ThresholdPair{Warning: 80, Critical: 95},
		ProcessPercent:        types.ThresholdPair{Warning: 80, Critical: 95},
		QueueMessages:         types.ThresholdPair{Warning: 10000, Critical: 50000},
		UnackedMessages:       types.ThresholdPair{Warning: 5000, Critical: 20000},
		ConsumerUtilization:   types.ThresholdPair{Warning: 50, Critical: 25},
		ConnectionCount:       types.ThresholdPair{Warning: 500, Critical: 1000},
		RunQueueLength:        types.ThresholdPair{Warning: 4, Critical: 8},
	}
}

// GetThresholds never fails. A missing row or a store error degrades to
// the default set so an evaluation pass always has thresholds to work with.
func (svc thresholdSvc) GetThresholds(ctx context.Context, tenant string) types.Thresholds {
	th, err := svc.storage.GetThresholds(ctx, tenant)
	if err != nil {
		logging.GetFromContext(ctx).Debug("no stored thresholds, using defaults", "tenant", tenant)
		return DefaultThresholds()
	}

	return th
}

func (svc thresholdSvc) Defaults() types.Thresholds {
	return DefaultThresholds()
}

// CanModify reports whether the tenant's billing plan allows threshold
// customization. An unknown tenant can not modify anything.
func (svc thresholdSvc) CanModify(ctx context.Context, tenant string) bool {
	t, err := svc.storage.GetTenant(ctx, tenant)
	if err != nil {
		return false
	}

	return slices.Contains(svc.entitledTiers, t.PlanTier)
}

// UpdateThresholds applies a partial update on top of the tenant's
// current effective set. Categories left nil in the patch are untouched.
// A plan without entitlement gets a rejection result, not an error.
func (svc thresholdSvc) UpdateThresholds(ctx context.Context, tenant string, patch types.ThresholdsPatch) types.UpdateResult {
	log := logging.GetFromContext(ctx)

	if !svc.CanModify(ctx, tenant) {
		return types.UpdateResult{
			Success: false,
			Message: "current plan does not include threshold customization",
		}
	}

	th := svc.GetThresholds(ctx, tenant)
	applyPatch(&th, patch)

	err := svc.storage.UpsertThresholds(ctx, tenant, th)
	if err != nil {
		log.Error("could not store thresholds", "tenant", tenant, "err", err.Error())
		return types.UpdateResult{
			Success: false,
			Message: "could not store thresholds",
		}
	}

	return types.UpdateResult{
		Success: true,
		Message: "thresholds updated",
	}
}

func applyPatch(th *types.Thresholds, patch types.ThresholdsPatch) {
	pairs := []struct {
		dst *types.ThresholdPair
		src *types.ThresholdPair
	}{
		{&th.MemoryPercent, patch.MemoryPercent},
		{&th.DiskFreePercent, patch.DiskFreePercent},
		{&th.FileDescriptorPercent, patch.FileDescriptorPercent},
		{&th.SocketPercent, patch.SocketPercent},
		{&th.ProcessPercent, patch.ProcessPercent},
		{&th.QueueMessages, patch.QueueMessages},
		{&th.UnackedMessages, patch.UnackedMessages},
		{&th.ConsumerUtilization, patch.ConsumerUtilization},
		{&th.ConnectionCount, patch.ConnectionCount},
		{&th.RunQueueLength, patch.RunQueueLength},
	}

	for _, p := range pairs {
		if p.src != nil {
			*p.dst = *p.src
		}
	}
}
