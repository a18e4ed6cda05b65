package domain

import (
	"math"
	"testing"
)

func TestInjuredPlayerImpact(t *testing.T) {
	cases := []struct {
		position string
		status   InjuryStatus
		want     float64
	}{
		{"QB", StatusOut, 1.0},
		{"QB", StatusProbable, 0.15},
		{"WR", StatusOut, 0.6},
		{"LB", StatusQuestionable, 0.12},
		{"K", StatusOut, 0.1},
		{"QB", StatusHealthy, 0.0},
	}

	for _, tc := range cases {
		p := InjuredPlayer{Position: tc.position, Status: tc.status}
		if got := p.Impact(); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("Impact(%s, %s) = %f, want %f", tc.position, tc.status, got, tc.want)
		}
	}
}

func TestParseInjuryStatus(t *testing.T) {
	cases := map[string]InjuryStatus{
		"Out":          StatusOut,
		"IR":           StatusOut,
		"doubtful":     StatusDoubtful,
		"QUESTIONABLE": StatusQuestionable,
		"Probable":     StatusProbable,
		"":             StatusHealthy,
		"Active":       StatusHealthy,
	}
	for raw, want := range cases {
		if got := ParseInjuryStatus(raw); got != want {
			t.Fatalf("ParseInjuryStatus(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestTotalImpactEmptyReport(t *testing.T) {
	if got := (TeamInjuryReport{}).TotalImpact(); got != 0 {
		t.Fatalf("expected zero impact for empty report, got %f", got)
	}
}

func TestTotalImpactWeightsTopThree(t *testing.T) {
	report := TeamInjuryReport{Players: []InjuredPlayer{
		{Position: "QB", Status: StatusOut}, // 1.0
		{Position: "WR", Status: StatusOut}, // 0.6
		{Position: "RB", Status: StatusOut}, // 0.6
	}}

	// 1.0*1.0 + 0.6*0.5 + 0.6*0.25 = 1.45 -> capped at 1.0
	if got := report.TotalImpact(); got != 1.0 {
		t.Fatalf("expected capped impact 1.0, got %f", got)
	}
}

func TestTotalImpactBounded(t *testing.T) {
	report := TeamInjuryReport{}
	for i := 0; i < 20; i++ {
		report.Players = append(report.Players, InjuredPlayer{Position: "QB", Status: StatusOut})
	}
	if got := report.TotalImpact(); got < 0 || got > 1 {
		t.Fatalf("impact out of [0,1]: %f", got)
	}
}

func TestTotalImpactTailDoesNotIncrease(t *testing.T) {
	report := TeamInjuryReport{Players: []InjuredPlayer{
		{Position: "QB", Status: StatusOut},
		{Position: "WR", Status: StatusOut},
		{Position: "RB", Status: StatusOut},
	}}
	before := report.TotalImpact()

	for i := 0; i < 10; i++ {
		report.Players = append(report.Players, InjuredPlayer{Position: "K", Status: StatusQuestionable})
	}
	after := report.TotalImpact()

	if after > before {
		t.Fatalf("adding minor injuries increased impact: %f -> %f", before, after)
	}
}

func TestTotalImpactSingleInjury(t *testing.T) {
	report := TeamInjuryReport{Players: []InjuredPlayer{
		{Position: "WR", Status: StatusDoubtful}, // 0.6 * 0.75 = 0.45
	}}
	if got := report.TotalImpact(); math.Abs(got-0.45) > 1e-9 {
		t.Fatalf("expected 0.45, got %f", got)
	}
}
