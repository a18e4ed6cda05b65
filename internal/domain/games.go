package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// gameNamespace scopes deterministic game UUIDs to this pipeline.
var gameNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("nfl-prediction-service/game"))

// GameID derives a stable UUID for a game from its provider-neutral
// identity. Different providers returning the same matchup produce the
// same ID, which is what makes cross-query dedup work.
func GameID(season, week int, homeAbbr, awayAbbr string) string {
	identity := fmt.Sprintf("%d/%d/%s/%s", season, week, homeAbbr, awayAbbr)
	return uuid.NewSHA1(gameNamespace, []byte(identity)).String()
}

// MergeGames combines game lists, keeping exactly one copy of each game
// identity. Overlap is expected: a home-team query and an away-team query
// both return their shared matchup. First occurrence wins.
func MergeGames(lists ...[]Game) []Game {
	seen := make(map[string]struct{})
	var merged []Game
	for _, list := range lists {
		for _, g := range list {
			if _, ok := seen[g.ID]; ok {
				continue
			}
			seen[g.ID] = struct{}{}
			merged = append(merged, g)
		}
	}
	return merged
}

// Record summarizes a team's completed games.
type Record struct {
	Wins   int
	Losses int
	Ties   int
}

// Games returns the number of decided games in the record.
func (r Record) Games() int {
	return r.Wins + r.Losses + r.Ties
}

// WinRate returns wins over decided games, counting ties as half a win.
// A team with no completed games gets a neutral 0.5.
func (r Record) WinRate() float64 {
	total := r.Games()
	if total == 0 {
		return 0.5
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(total)
}

// TeamRecord computes a team's record from its completed games.
func TeamRecord(abbr string, games []Game) Record {
	var rec Record
	for _, g := range games {
		if g.Outcome == nil {
			continue
		}
		switch {
		case g.HomeTeam.Abbreviation == abbr:
			switch g.Outcome.Winner {
			case WinnerHome:
				rec.Wins++
			case WinnerAway:
				rec.Losses++
			default:
				rec.Ties++
			}
		case g.AwayTeam.Abbreviation == abbr:
			switch g.Outcome.Winner {
			case WinnerAway:
				rec.Wins++
			case WinnerHome:
				rec.Losses++
			default:
				rec.Ties++
			}
		}
	}
	return rec
}

// UpcomingGames filters to games that have not finished (scheduled in the
// future or missing an outcome) and sorts them by scheduled time ascending.
func UpcomingGames(games []Game, now time.Time) []Game {
	var upcoming []Game
	for _, g := range games {
		if g.Outcome == nil || g.Scheduled.After(now) {
			upcoming = append(upcoming, g)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].Scheduled.Before(upcoming[j].Scheduled)
	})
	return upcoming
}
