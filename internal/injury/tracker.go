// Package injury builds per-team injury reports from an injury source.
// Injury data is advisory: callers treat a failed fetch as "no report
// available" rather than failing the overall prediction.
package injury

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nfl-prediction-service/internal/domain"
	"nfl-prediction-service/internal/logging"
	"nfl-prediction-service/internal/providers"
)

// Tracker resolves the current injury picture for a team.
type Tracker struct {
	source providers.InjuryProvider
	logger *slog.Logger
	now    func() time.Time
}

func NewTracker(source providers.InjuryProvider, logger *slog.Logger) *Tracker {
	return &Tracker{source: source, logger: logger, now: time.Now}
}

// Report fetches the team's injury list and rolls it into a report. Healthy
// players are dropped; they carry zero impact and only add noise. A source
// failure is logged and returned so the caller can mark the report absent.
func (t *Tracker) Report(ctx context.Context, team domain.Team) (domain.TeamInjuryReport, error) {
	report := domain.TeamInjuryReport{Team: team, FetchedAt: t.now()}

	players, err := t.source.FetchInjuries(ctx, team)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, t.logger), "injury fetch failed",
			logging.FieldTeam, team.Abbreviation, "err", err)
		return report, fmt.Errorf("injury report for %s: %w", team.Abbreviation, err)
	}

	for _, p := range players {
		if p.Status == domain.StatusHealthy {
			continue
		}
		report.Players = append(report.Players, p)
	}
	return report, nil
}
