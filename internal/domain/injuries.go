package domain

import (
	"sort"
	"strings"
	"time"
)

// InjuryStatus is the league-report designation for an injured player.
type InjuryStatus string

const (
	StatusOut          InjuryStatus = "OUT"
	StatusDoubtful     InjuryStatus = "DOUBTFUL"
	StatusQuestionable InjuryStatus = "QUESTIONABLE"
	StatusProbable     InjuryStatus = "PROBABLE"
	StatusHealthy      InjuryStatus = "HEALTHY"
)

// ParseInjuryStatus maps free-form provider status strings onto the known set.
func ParseInjuryStatus(raw string) InjuryStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "OUT", "INJURED RESERVE", "IR":
		return StatusOut
	case "DOUBTFUL":
		return StatusDoubtful
	case "QUESTIONABLE":
		return StatusQuestionable
	case "PROBABLE":
		return StatusProbable
	default:
		return StatusHealthy
	}
}

// InjuredPlayer is one row of a team injury report.
type InjuredPlayer struct {
	Name        string       `json:"name"`
	Position    string       `json:"position"`
	Status      InjuryStatus `json:"status"`
	Description string       `json:"description,omitempty"`
}

// Impact scores the injury's severity on a 0-1 scale as position weight
// times status multiplier. Quarterbacks dominate; depth positions barely
// register.
func (p InjuredPlayer) Impact() float64 {
	return positionWeight(p.Position) * statusMultiplier(p.Status)
}

func positionWeight(position string) float64 {
	switch strings.ToUpper(strings.TrimSpace(position)) {
	case "QB":
		return 1.0
	case "RB", "WR":
		return 0.6
	case "TE", "OT", "OG", "C", "OL":
		return 0.4
	case "CB", "S", "DE", "DT", "LB", "EDGE":
		return 0.3
	default:
		return 0.1
	}
}

func statusMultiplier(status InjuryStatus) float64 {
	switch status {
	case StatusOut:
		return 1.0
	case StatusDoubtful:
		return 0.75
	case StatusQuestionable:
		return 0.4
	case StatusProbable:
		return 0.15
	default:
		return 0.0
	}
}

// TeamInjuryReport is a team's current injury list plus fetch metadata.
type TeamInjuryReport struct {
	Team      Team            `json:"team"`
	Players   []InjuredPlayer `json:"players"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// TotalImpact aggregates individual impacts with diminishing returns: the
// three worst injuries count at 1.0/0.5/0.25 and the result is capped at 1,
// so one elite injury dominates but a long tail of minor ones cannot push
// the score past the ceiling.
func (r TeamInjuryReport) TotalImpact() float64 {
	if len(r.Players) == 0 {
		return 0
	}

	impacts := make([]float64, 0, len(r.Players))
	for _, p := range r.Players {
		impacts = append(impacts, p.Impact())
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(impacts)))

	weights := []float64{1.0, 0.5, 0.25}
	total := 0.0
	for i, w := range weights {
		if i >= len(impacts) {
			break
		}
		total += impacts[i] * w
	}
	if total > 1.0 {
		return 1.0
	}
	return total
}
