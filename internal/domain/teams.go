package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Team represents the normalized team shape. Abbreviation is the unique key.
type Team struct {
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
}

// ErrUnknownTeam is returned when an abbreviation is not in the catalog.
var ErrUnknownTeam = errors.New("unknown team")

// Catalog is an immutable lookup table of the 32 NFL teams keyed by
// abbreviation. Loaded once at process start.
type Catalog struct {
	byAbbr map[string]Team
	teams  []Team
}

// NewCatalog builds the static team catalog.
func NewCatalog() *Catalog {
	c := &Catalog{byAbbr: make(map[string]Team, len(allTeams))}
	for _, t := range allTeams {
		c.byAbbr[t.Abbreviation] = t
		c.teams = append(c.teams, t)
	}
	return c
}

// Lookup resolves a team abbreviation, case-insensitively.
func (c *Catalog) Lookup(abbr string) (Team, error) {
	key := strings.ToUpper(strings.TrimSpace(abbr))
	if t, ok := c.byAbbr[key]; ok {
		return t, nil
	}
	return Team{}, fmt.Errorf("%w: %q", ErrUnknownTeam, abbr)
}

// Teams returns a copy of the full catalog.
func (c *Catalog) Teams() []Team {
	out := make([]Team, len(c.teams))
	copy(out, c.teams)
	return out
}

var allTeams = []Team{
	{Abbreviation: "ARI", Name: "Arizona Cardinals", Conference: "NFC", Division: "West"},
	{Abbreviation: "ATL", Name: "Atlanta Falcons", Conference: "NFC", Division: "South"},
	{Abbreviation: "BAL", Name: "Baltimore Ravens", Conference: "AFC", Division: "North"},
	{Abbreviation: "BUF", Name: "Buffalo Bills", Conference: "AFC", Division: "East"},
	{Abbreviation: "CAR", Name: "Carolina Panthers", Conference: "NFC", Division: "South"},
	{Abbreviation: "CHI", Name: "Chicago Bears", Conference: "NFC", Division: "North"},
	{Abbreviation: "CIN", Name: "Cincinnati Bengals", Conference: "AFC", Division: "North"},
	{Abbreviation: "CLE", Name: "Cleveland Browns", Conference: "AFC", Division: "North"},
	{Abbreviation: "DAL", Name: "Dallas Cowboys", Conference: "NFC", Division: "East"},
	{Abbreviation: "DEN", Name: "Denver Broncos", Conference: "AFC", Division: "West"},
	{Abbreviation: "DET", Name: "Detroit Lions", Conference: "NFC", Division: "North"},
	{Abbreviation: "GB", Name: "Green Bay Packers", Conference: "NFC", Division: "North"},
	{Abbreviation: "HOU", Name: "Houston Texans", Conference: "AFC", Division: "South"},
	{Abbreviation: "IND", Name: "Indianapolis Colts", Conference: "AFC", Division: "South"},
	{Abbreviation: "JAX", Name: "Jacksonville Jaguars", Conference: "AFC", Division: "South"},
	{Abbreviation: "KC", Name: "Kansas City Chiefs", Conference: "AFC", Division: "West"},
	{Abbreviation: "LAC", Name: "Los Angeles Chargers", Conference: "AFC", Division: "West"},
	{Abbreviation: "LAR", Name: "Los Angeles Rams", Conference: "NFC", Division: "West"},
	{Abbreviation: "LV", Name: "Las Vegas Raiders", Conference: "AFC", Division: "West"},
	{Abbreviation: "MIA", Name: "Miami Dolphins", Conference: "AFC", Division: "East"},
	{Abbreviation: "MIN", Name: "Minnesota Vikings", Conference: "NFC", Division: "North"},
	{Abbreviation: "NE", Name: "New England Patriots", Conference: "AFC", Division: "East"},
	{Abbreviation: "NO", Name: "New Orleans Saints", Conference: "NFC", Division: "South"},
	{Abbreviation: "NYG", Name: "New York Giants", Conference: "NFC", Division: "East"},
	{Abbreviation: "NYJ", Name: "New York Jets", Conference: "AFC", Division: "East"},
	{Abbreviation: "PHI", Name: "Philadelphia Eagles", Conference: "NFC", Division: "East"},
	{Abbreviation: "PIT", Name: "Pittsburgh Steelers", Conference: "AFC", Division: "North"},
	{Abbreviation: "SEA", Name: "Seattle Seahawks", Conference: "NFC", Division: "West"},
	{Abbreviation: "SF", Name: "San Francisco 49ers", Conference: "NFC", Division: "West"},
	{Abbreviation: "TB", Name: "Tampa Bay Buccaneers", Conference: "NFC", Division: "South"},
	{Abbreviation: "TEN", Name: "Tennessee Titans", Conference: "AFC", Division: "South"},
	{Abbreviation: "WAS", Name: "Washington Commanders", Conference: "NFC", Division: "East"},
}
