package monitoring

import (
	"fmt"
	"time"

	"github.com/arvelin/staffdesk-be/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// RetentionPruner deletes audit events older than the retention window on
// a cron schedule.
type RetentionPruner struct {
	eventSvc  services.EventServiceProvider
	schedule  cron.Schedule
	retention time.Duration
	done      chan bool
}

// NewRetentionPruner creates a pruner from a standard cron expression.
// The expression is assumed to be pre-validated by config loading.
func NewRetentionPruner(eventSvc services.EventServiceProvider, cronExpr string, retention time.Duration) (*RetentionPruner, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid prune schedule %q: %w", cronExpr, err)
	}
	return &RetentionPruner{
		eventSvc:  eventSvc,
		schedule:  schedule,
		retention: retention,
		done:      make(chan bool),
	}, nil
}

// Run sleeps until each scheduled activation and prunes.
func (p *RetentionPruner) Run() {
	log.Info().Dur("retention", p.retention).Msg("Starting event retention pruner...")
	for {
		next := p.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-p.done:
			timer.Stop()
			log.Info().Msg("Stopping event retention pruner.")
			return
		case <-timer.C:
			p.prune()
		}
	}
}

// Stop halts the pruner.
func (p *RetentionPruner) Stop() {
	p.done <- true
}

func (p *RetentionPruner) prune() {
	cutoff := time.Now().UTC().Add(-p.retention)
	deleted, err := p.eventSvc.PruneEventsOlderThan(cutoff)
	if err != nil {
		log.Error().Err(err).Msg("Event pruning failed")
		return
	}
	if deleted > 0 {
		msg := fmt.Sprintf("Pruned %d events older than %s", deleted, cutoff.Format(time.RFC3339))
		if _, err := p.eventSvc.CreateEvent("system.events.prune", "info", msg, nil); err != nil {
			log.Error().Err(err).Msg("Failed to record prune event")
		}
	}
	log.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("Event pruning completed")
}
