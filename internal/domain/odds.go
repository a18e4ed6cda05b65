package domain

import "fmt"

// MoneylineProbability converts American odds to an implied win probability.
// Negative lines (favorites) map above 0.5, positive lines (underdogs)
// below; -100 and +100 both imply an even coin flip.
func MoneylineProbability(moneyline int) float64 {
	if moneyline < 0 {
		ml := float64(-moneyline)
		return ml / (ml + 100)
	}
	return 100 / (float64(moneyline) + 100)
}

// ImpliedProbabilities returns the home and away implied probabilities,
// normalized so they sum to 1 (removing the bookmaker's vig).
func (o BettingOdds) ImpliedProbabilities() (home, away float64) {
	home = MoneylineProbability(o.HomeMoneyline)
	away = MoneylineProbability(o.AwayMoneyline)
	total := home + away
	if total <= 0 {
		return 0.5, 0.5
	}
	return home / total, away / total
}

// MatchupKey builds the snapshot map key for a game: "Away Name @ Home Name"
// using catalog display names. Provider name drift degrades to a cache miss
// rather than a wrong match because lookups go through the same constructor.
func MatchupKey(home, away Team) string {
	return fmt.Sprintf("%s @ %s", away.Name, home.Name)
}
