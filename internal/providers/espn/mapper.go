package espn

import (
	"strconv"
	"time"

	"nfl-prediction-service/internal/domain"
)

// mapEvent converts an upstream event into a domain game. Events missing a
// home or away competitor are skipped rather than failing the whole payload.
func (c *Client) mapEvent(event eventResponse) (domain.Game, bool) {
	if len(event.Competitions) == 0 {
		return domain.Game{}, false
	}
	comp := event.Competitions[0]

	var home, away *competitorResponse
	for i := range comp.Competitors {
		switch comp.Competitors[i].HomeAway {
		case "home":
			home = &comp.Competitors[i]
		case "away":
			away = &comp.Competitors[i]
		}
	}
	if home == nil || away == nil {
		return domain.Game{}, false
	}

	homeTeam := c.resolveTeam(home.Team)
	awayTeam := c.resolveTeam(away.Team)

	game := domain.Game{
		ID:        domain.GameID(event.Season.Year, event.Week.Number, homeTeam.Abbreviation, awayTeam.Abbreviation),
		Provider:  ProviderName,
		HomeTeam:  homeTeam,
		AwayTeam:  awayTeam,
		Scheduled: parseEventDate(event.Date),
		Week:      event.Week.Number,
		Season:    event.Season.Year,
	}

	if comp.Status.Type.Completed {
		homeScore, _ := strconv.Atoi(home.Score)
		awayScore, _ := strconv.Atoi(away.Score)
		outcome := domain.NewOutcome(homeScore, awayScore)
		game.Outcome = &outcome
	}

	return game, true
}

// resolveTeam prefers the catalog entry for an abbreviation so names stay
// canonical; unknown teams fall back to the payload's own naming.
func (c *Client) resolveTeam(t teamResponse) domain.Team {
	if c.catalog != nil {
		if team, err := c.catalog.Lookup(t.Abbreviation); err == nil {
			return team
		}
	}
	return domain.Team{Abbreviation: t.Abbreviation, Name: t.DisplayName}
}

func parseEventDate(raw string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func mapInjury(injury injuryResponse) domain.InjuredPlayer {
	return domain.InjuredPlayer{
		Name:        injury.Athlete.DisplayName,
		Position:    injury.Athlete.Position.Abbreviation,
		Status:      domain.ParseInjuryStatus(injury.Status),
		Description: injury.Details.Detail,
	}
}
