package alerts

import (
	"context"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

func TestFingerprintIsStableAndExcludesOccurrenceData(t *testing.T) {
	is := is.New(t)

	a := Fingerprint("srv-001", types.CategoryMemory, types.SourceNode, "rabbit@node1")
	b := Fingerprint("srv-001", types.CategoryMemory, types.SourceNode, "rabbit@node1")

	is.Equal(a, b)
	is.Equal(len(a), 32)
}

func TestFingerprintChangesWithAnyIdentityField(t *testing.T) {
	is := is.New(t)

	base := Fingerprint("srv-001", types.CategoryMemory, types.SourceNode, "rabbit@node1")

	is.True(base != Fingerprint("srv-002", types.CategoryMemory, types.SourceNode, "rabbit@node1"))
	is.True(base != Fingerprint("srv-001", types.CategoryDisk, types.SourceNode, "rabbit@node1"))
	is.True(base != Fingerprint("srv-001", types.CategoryMemory, types.SourceQueue, "rabbit@node1"))
	is.True(base != Fingerprint("srv-001", types.CategoryMemory, types.SourceNode, "rabbit@node2"))
}

func TestDecideNotify(t *testing.T) {
	is := is.New(t)

	now := time.Now().UTC()
	recent := now.Add(-1 * time.Hour)
	longAgo := now.Add(-8 * 24 * time.Hour)

	// never seen before
	is.True(decideNotify(nil, now, NotificationCooldown))

	// previously resolved, condition came back
	is.True(decideNotify(&types.SeenAlert{ResolvedAt: &recent, LastSeenAt: recent}, now, NotificationCooldown))

	// seen but never notified
	is.True(decideNotify(&types.SeenAlert{LastSeenAt: recent}, now, NotificationCooldown))

	// notified recently, still within cooldown
	is.True(!decideNotify(&types.SeenAlert{NotifiedAt: &recent, LastSeenAt: recent}, now, NotificationCooldown))

	// cooldown elapsed since last notification
	is.True(decideNotify(&types.SeenAlert{NotifiedAt: &longAgo, LastSeenAt: recent}, now, NotificationCooldown))

	// row went stale without being resolved
	is.True(decideNotify(&types.SeenAlert{NotifiedAt: &recent, LastSeenAt: longAgo}, now, NotificationCooldown))
}

func TestSeverityAllowed(t *testing.T) {
	is := is.New(t)

	is.True(severityAllowed(types.SeverityInfo, nil))
	is.True(severityAllowed(types.SeverityCritical, []types.Severity{types.SeverityCritical}))
	is.True(!severityAllowed(types.SeverityWarning, []types.Severity{types.SeverityCritical}))
}

func newTrackerStorageMock(tenant types.Tenant, existing []types.SeenAlert) *AlertStorageMock {
	return &AlertStorageMock{
		GetTenantFunc: func(ctx context.Context, tenantID string) (types.Tenant, error) {
			return tenant, nil
		},
		GetSeenAlertsFunc: func(ctx context.Context, tenant, serverID string) ([]types.SeenAlert, error) {
			return existing, nil
		},
		UpsertSeenAlertFunc: func(ctx context.Context, alert types.SeenAlert) error {
			return nil
		},
		ResolveAbsentFunc: func(ctx context.Context, tenant, serverID string, present []string, now time.Time) ([]types.SeenAlert, error) {
			return nil, nil
		},
		MarkNotifiedFunc: func(ctx context.Context, tenant, serverID string, fingerprints []string, now time.Time) error {
			return nil
		},
	}
}

func notifyingTenant() types.Tenant {
	return types.Tenant{
		ID:                   "acme",
		Name:                 "Acme Inc",
		PlanTier:             "pro",
		NotificationsEnabled: true,
		ContactEmail:         "ops@acme.example",
	}
}

func criticalMemoryCandidate() types.Alert {
	return types.Alert{
		ID:       "occurrence-1",
		ServerID: "srv-001",
		Severity: types.SeverityCritical,
		Category: types.CategoryMemory,
		Title:    "Critical Memory Usage",
		Source:   types.AlertSource{Type: types.SourceNode, Name: "rabbit@node1"},
	}
}

func TestFirstOccurrenceIsTrackedAndNotified(t *testing.T) {
	is := is.New(t)

	storage := newTrackerStorageMock(notifyingTenant(), nil)
	email := &EmailSenderMock{
		SendAlertEmailFunc: func(ctx context.Context, contact, tenantName, serverName, serverID string, alerts []types.Alert) error {
			return nil
		},
	}

	svc := alertSvc{storage: storage, senders: Senders{Email: email}}
	svc.trackAndNotify(context.Background(), []types.Alert{criticalMemoryCandidate()}, testServer())

	is.Equal(len(storage.UpsertSeenAlertCalls()), 1)
	is.Equal(len(email.SendAlertEmailCalls()), 1)
	is.Equal(email.SendAlertEmailCalls()[0].Contact, "ops@acme.example")
	is.Equal(len(storage.MarkNotifiedCalls()), 1)
}

func TestRepeatWithinCooldownIsTrackedButNotNotified(t *testing.T) {
	is := is.New(t)

	now := time.Now().UTC()
	notified := now.Add(-1 * time.Hour)
	fingerprint := Fingerprint("srv-001", types.CategoryMemory, types.SourceNode, "rabbit@node1")

	storage := newTrackerStorageMock(notifyingTenant(), []types.SeenAlert{{
		Fingerprint: fingerprint,
		Tenant:      "acme",
		ServerID:    "srv-001",
		LastSeenAt:  notified,
		NotifiedAt:  &notified,
	}})
	email := &EmailSenderMock{
		SendAlertEmailFunc: func(ctx context.Context, contact, tenantName, serverName, serverID string, alerts []types.Alert) error {
			return nil
		},
	}

	svc := alertSvc{storage: storage, senders: Senders{Email: email}}
	svc.trackAndNotify(context.Background(), []types.Alert{criticalMemoryCandidate()}, testServer())

	is.Equal(len(storage.UpsertSeenAlertCalls()), 1) // lastSeenAt still moves forward
	is.Equal(len(email.SendAlertEmailCalls()), 0)
}

func TestRepeatAfterCooldownNotifiesAgain(t *testing.T) {
	is := is.New(t)

	now := time.Now().UTC()
	notified := now.Add(-8 * 24 * time.Hour)
	fingerprint := Fingerprint("srv-001", types.CategoryMemory, types.SourceNode, "rabbit@node1")

	storage := newTrackerStorageMock(notifyingTenant(), []types.SeenAlert{{
		Fingerprint: fingerprint,
		Tenant:      "acme",
		ServerID:    "srv-001",
		LastSeenAt:  now.Add(-1 * time.Minute),
		NotifiedAt:  &notified,
	}})
	email := &EmailSenderMock{
		SendAlertEmailFunc: func(ctx context.Context, contact, tenantName, serverName, serverID string, alerts []types.Alert) error {
			return nil
		},
	}

	svc := alertSvc{storage: storage, senders: Senders{Email: email}}
	svc.trackAndNotify(context.Background(), []types.Alert{criticalMemoryCandidate()}, testServer())

	is.Equal(len(email.SendAlertEmailCalls()), 1)
}

func TestAbsentFingerprintsAreResolved(t *testing.T) {
	is := is.New(t)

	storage := newTrackerStorageMock(notifyingTenant(), nil)

	svc := alertSvc{storage: storage}
	svc.trackAndNotify(context.Background(), []types.Alert{criticalMemoryCandidate()}, testServer())

	is.Equal(len(storage.ResolveAbsentCalls()), 1)

	call := storage.ResolveAbsentCalls()[0]
	is.Equal(call.ServerID, "srv-001")
	is.Equal(len(call.Present), 1)
	is.Equal(call.Present[0], Fingerprint("srv-001", types.CategoryMemory, types.SourceNode, "rabbit@node1"))
}

func TestDuplicateFingerprintsWithinOnePassCollapse(t *testing.T) {
	is := is.New(t)

	storage := newTrackerStorageMock(notifyingTenant(), nil)

	critical := criticalMemoryCandidate()
	warning := criticalMemoryCandidate()
	warning.Severity = types.SeverityWarning

	svc := alertSvc{storage: storage}
	svc.trackAndNotify(context.Background(), []types.Alert{critical, warning}, testServer())

	is.Equal(len(storage.UpsertSeenAlertCalls()), 1)
	is.Equal(storage.UpsertSeenAlertCalls()[0].Alert.Severity, types.SeverityCritical)
}

func TestSeverityFilterTracksButDoesNotNotify(t *testing.T) {
	is := is.New(t)

	tenant := notifyingTenant()
	tenant.NotificationSeverities = []types.Severity{types.SeverityCritical}

	storage := newTrackerStorageMock(tenant, nil)
	email := &EmailSenderMock{
		SendAlertEmailFunc: func(ctx context.Context, contact, tenantName, serverName, serverID string, alerts []types.Alert) error {
			return nil
		},
	}

	warning := criticalMemoryCandidate()
	warning.Severity = types.SeverityWarning

	svc := alertSvc{storage: storage, senders: Senders{Email: email}}
	svc.trackAndNotify(context.Background(), []types.Alert{warning}, testServer())

	is.Equal(len(storage.UpsertSeenAlertCalls()), 1)
	is.Equal(len(email.SendAlertEmailCalls()), 0)
}

func TestDisabledNotificationsStillTrackAndResolve(t *testing.T) {
	is := is.New(t)

	tenant := notifyingTenant()
	tenant.NotificationsEnabled = false

	storage := newTrackerStorageMock(tenant, nil)
	email := &EmailSenderMock{
		SendAlertEmailFunc: func(ctx context.Context, contact, tenantName, serverName, serverID string, alerts []types.Alert) error {
			return nil
		},
	}

	svc := alertSvc{storage: storage, senders: Senders{Email: email}}
	svc.trackAndNotify(context.Background(), []types.Alert{criticalMemoryCandidate()}, testServer())

	is.Equal(len(storage.UpsertSeenAlertCalls()), 1)
	is.Equal(len(storage.ResolveAbsentCalls()), 1)
	is.Equal(len(email.SendAlertEmailCalls()), 0)
}
