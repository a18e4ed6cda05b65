package domain

import "time"

// Winner identifies which side of a completed game won.
type Winner string

const (
	WinnerHome Winner = "HOME"
	WinnerAway Winner = "AWAY"
	WinnerTie  Winner = "TIE"
)

// Outcome captures the final score of a completed game. It is only ever
// derived from a finished Game, never constructed on its own.
type Outcome struct {
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
	Winner    Winner `json:"winner"`
}

// Game is the canonical game shape exposed by the pipeline. Identity is the
// ID field; providers may return the same game through multiple queries, so
// equality and dedup are by ID rather than by matchup or date.
type Game struct {
	ID        string    `json:"id"`
	Provider  string    `json:"provider"`
	HomeTeam  Team      `json:"homeTeam"`
	AwayTeam  Team      `json:"awayTeam"`
	Scheduled time.Time `json:"scheduled"`
	Week      int       `json:"week"`
	Season    int       `json:"season"`
	Outcome   *Outcome  `json:"outcome,omitempty"`
}

// Completed reports whether the game has a final score.
func (g Game) Completed() bool {
	return g.Outcome != nil
}

// NewOutcome derives an Outcome from final scores.
func NewOutcome(homeScore, awayScore int) Outcome {
	winner := WinnerTie
	switch {
	case homeScore > awayScore:
		winner = WinnerHome
	case awayScore > homeScore:
		winner = WinnerAway
	}
	return Outcome{HomeScore: homeScore, AwayScore: awayScore, Winner: winner}
}

// Article is a news item related to one or more teams. Immutable once fetched.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	Published time.Time `json:"published"`
	Teams     []string  `json:"teams"`
}

// BettingOdds holds a bookmaker's current line for a single game.
type BettingOdds struct {
	HomeMoneyline int     `json:"homeMoneyline"`
	AwayMoneyline int     `json:"awayMoneyline"`
	Spread        float64 `json:"spread"`
	Total         float64 `json:"total"`
	Bookmaker     string  `json:"bookmaker"`
}

// PredictionFactor attributes a signed probability adjustment to a named
// input so clients can surface why the model favors a side.
type PredictionFactor struct {
	Name        string  `json:"name"`
	Impact      float64 `json:"impact"`
	Description string  `json:"description"`
}

// Prediction is the pipeline's final output for a prospective game.
// HomeWinProbability and AwayWinProbability always sum to 1. Confidence is
// independent of the probability split; it reflects how much evidence
// backed the call.
type Prediction struct {
	Game               Game               `json:"game"`
	HomeWinProbability float64            `json:"homeWinProbability"`
	AwayWinProbability float64            `json:"awayWinProbability"`
	Confidence         float64            `json:"confidence"`
	Reasoning          string             `json:"reasoning"`
	Odds               *BettingOdds       `json:"odds,omitempty"`
	Factors            []PredictionFactor `json:"factors,omitempty"`
}
