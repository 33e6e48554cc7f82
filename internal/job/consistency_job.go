package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/ordering"
	"kanban-board-api/internal/repository"
)

// ConsistencyReport summarizes one audit pass
type ConsistencyReport struct {
	Conflicts []repository.PositionConflict
	Repaired  int
	Failed    int
}

// ConsistencyJob audits that no two members of a scope share a position.
// Well-behaved writers never produce ties; they appear after manual edits or
// imports. With repair enabled each affected scope is renumbered 0..n-1 in
// (position, created_at, id) order, which keeps the current read order.
type ConsistencyJob struct {
	auditRepo repository.PositionAuditRepository
	metrics   *metrics.Metrics
	logger    *zap.Logger
	repair    bool
	timeout   time.Duration
}

// NewConsistencyJob creates a new ConsistencyJob instance
func NewConsistencyJob(
	auditRepo repository.PositionAuditRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
	repair bool,
) *ConsistencyJob {
	return &ConsistencyJob{
		auditRepo: auditRepo,
		metrics:   m,
		logger:    logger,
		repair:    repair,
		timeout:   2 * time.Minute,
	}
}

// Run executes one pass; it satisfies cron.Job
func (j *ConsistencyJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if _, err := j.Audit(ctx); err != nil {
		j.logger.Error("Position consistency audit failed", zap.Error(err))
	}
}

// Audit finds position ties, publishes their count per scope kind and
// optionally repairs the affected scopes
func (j *ConsistencyJob) Audit(ctx context.Context) (*ConsistencyReport, error) {
	j.logger.Debug("Starting position consistency audit")

	conflicts, err := j.auditRepo.FindConflicts(ctx)
	if err != nil {
		return nil, err
	}

	report := &ConsistencyReport{Conflicts: conflicts}

	perKind := map[ordering.ScopeKind]int{
		ordering.ScopeKindBoard:  0,
		ordering.ScopeKindColumn: 0,
	}
	var scopes []ordering.Scope
	seen := make(map[ordering.Scope]bool)
	for _, conflict := range conflicts {
		perKind[conflict.Scope.Kind]++
		if !seen[conflict.Scope] {
			seen[conflict.Scope] = true
			scopes = append(scopes, conflict.Scope)
		}
	}
	for kind, count := range perKind {
		j.metrics.SetPositionConflicts(string(kind), count)
	}

	if len(conflicts) == 0 {
		j.logger.Debug("No position conflicts found")
		return report, nil
	}

	for _, conflict := range conflicts {
		j.logger.Warn("Position conflict",
			zap.String("scope", conflict.Scope.String()),
			zap.Int("position", conflict.Position),
			zap.Int("items", conflict.Count),
		)
	}

	if !j.repair {
		j.logger.Info("Position conflicts left in place, repair disabled",
			zap.Int("conflicts", len(conflicts)),
			zap.Int("scopes", len(scopes)),
		)
		return report, nil
	}

	for _, scope := range scopes {
		if err := j.auditRepo.Renumber(ctx, scope); err != nil {
			report.Failed++
			j.logger.Error("Failed to renumber scope",
				zap.String("scope", scope.String()),
				zap.Error(err),
			)
			continue
		}
		report.Repaired++
	}

	j.logger.Info("Position consistency audit completed",
		zap.Int("conflicts", len(conflicts)),
		zap.Int("repaired", report.Repaired),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}
