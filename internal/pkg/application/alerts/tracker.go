package alerts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/rabbitwatch/cluster-mgmt/pkg/types"
)

// NotificationCooldown is the minimum time between repeat notifications
// for the same ongoing fingerprint. It caps re-notification spam for a
// condition that remains continuously true while guaranteeing a maximum
// silence window before long-lived issues alert again.
const NotificationCooldown = 7 * 24 * time.Hour

// Fingerprint derives the stable identity of an alert condition. It
// deliberately excludes timestamps and the occurrence id so that the
// same underlying condition maps to the same fingerprint across polls.
func Fingerprint(serverID string, category types.Category, sourceType types.SourceType, sourceName string) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%s|%s|%s", serverID, category, sourceType, sourceName))
	return hex.EncodeToString(sum[:])[:32]
}

// decideNotify decides whether a candidate whose fingerprint matches
// existing should be notified about, given the state the row had before
// this pass refreshed it. A nil row means the fingerprint was never
// seen before.
func decideNotify(existing *types.SeenAlert, now time.Time, cooldown time.Duration) bool {
	if existing == nil {
		return true
	}

	if existing.ResolvedAt != nil {
		// condition went away and came back
		return true
	}

	if existing.NotifiedAt == nil {
		return true
	}

	if now.Sub(*existing.NotifiedAt) > cooldown {
		return true
	}

	// row went stale without being resolved (no passes ran for a
	// long time) and the condition is still there
	return now.Sub(existing.LastSeenAt) > cooldown
}

func severityAllowed(severity types.Severity, selected []types.Severity) bool {
	if len(selected) == 0 {
		return true
	}
	return slices.Contains(selected, severity)
}

// trackAndNotify performs the bookkeeping and notification side effect
// of one evaluation pass. Any failure is logged and absorbed; the read
// path must never fail because of it.
func (svc alertSvc) trackAndNotify(ctx context.Context, candidates []types.Alert, server types.Server) {
	log := logging.GetFromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error("panic in alert tracking", "server_id", server.ID, "recovered", fmt.Sprintf("%v", r))
		}
	}()

	tenant, err := svc.storage.GetTenant(ctx, server.Tenant)
	if err != nil {
		log.Error("could not load tenant settings, skipping notification pass", "tenant", server.Tenant, "err", err.Error())
		return
	}

	existing, err := svc.storage.GetSeenAlerts(ctx, tenant.ID, server.ID)
	if err != nil {
		log.Error("could not load seen alerts", "server_id", server.ID, "err", err.Error())
		return
	}

	byFingerprint := map[string]types.SeenAlert{}
	for _, sa := range existing {
		byFingerprint[sa.Fingerprint] = sa
	}

	now := time.Now().UTC()

	present := make([]string, 0, len(candidates))
	eligible := make([]types.Alert, 0)
	eligibleFingerprints := make([]string, 0)

	for _, candidate := range candidates {
		fingerprint := Fingerprint(server.ID, candidate.Category, candidate.Source.Type, candidate.Source.Name)

		if slices.Contains(present, fingerprint) {
			// two candidates can share a fingerprint within one
			// pass (e.g. warning and critical variants of the same
			// category); the first, highest ranked one wins
			continue
		}
		present = append(present, fingerprint)

		var previous *types.SeenAlert
		if row, ok := byFingerprint[fingerprint]; ok {
			previous = &row
		}

		err = svc.storage.UpsertSeenAlert(ctx, types.SeenAlert{
			Fingerprint: fingerprint,
			Tenant:      tenant.ID,
			ServerID:    server.ID,
			Severity:    candidate.Severity,
			Category:    candidate.Category,
			SourceType:  candidate.Source.Type,
			SourceName:  candidate.Source.Name,
			FirstSeenAt: now,
			LastSeenAt:  now,
		})
		if err != nil {
			log.Error("could not upsert seen alert", "fingerprint", fingerprint, "err", err.Error())
			continue
		}

		if previous == nil {
			svc.publish(ctx, &AlertCreated{
				Fingerprint: fingerprint,
				Alert:       candidate,
				Tenant:      tenant.ID,
				Timestamp:   now,
			})
		}

		if severityAllowed(candidate.Severity, tenant.NotificationSeverities) &&
			decideNotify(previous, now, NotificationCooldown) {
			eligible = append(eligible, candidate)
			eligibleFingerprints = append(eligibleFingerprints, fingerprint)
		}
	}

	resolved, err := svc.storage.ResolveAbsent(ctx, tenant.ID, server.ID, present, now)
	if err != nil {
		log.Error("could not auto-resolve absent alerts", "server_id", server.ID, "err", err.Error())
	}

	for _, sa := range resolved {
		svc.publish(ctx, &AlertResolved{
			Fingerprint: sa.Fingerprint,
			Tenant:      sa.Tenant,
			ServerID:    sa.ServerID,
			Timestamp:   now,
		})
	}

	if len(eligible) == 0 {
		return
	}

	if !tenant.NotificationsEnabled || tenant.ContactEmail == "" {
		log.Debug("notifications disabled or no contact configured, skipping send", "tenant", tenant.ID)
		return
	}

	svc.dispatch(ctx, tenant, server, eligible, eligibleFingerprints, now)
}
