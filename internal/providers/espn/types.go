package espn

// ProviderName identifies this client in logs, metrics, and game records.
const ProviderName = "espn"

type scheduleResponse struct {
	Events []eventResponse `json:"events"`
}

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Week         weekResponse          `json:"week"`
	Season       seasonResponse        `json:"season"`
	Competitions []competitionResponse `json:"competitions"`
}

type weekResponse struct {
	Number int `json:"number"`
}

type seasonResponse struct {
	Year int `json:"year"`
}

type competitionResponse struct {
	Competitors []competitorResponse `json:"competitors"`
	Status      statusResponse       `json:"status"`
}

type competitorResponse struct {
	HomeAway string       `json:"homeAway"`
	Team     teamResponse `json:"team"`
	Score    string       `json:"score"`
}

type teamResponse struct {
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
}

type statusResponse struct {
	Type statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	Completed bool `json:"completed"`
}

type injuriesResponse struct {
	Injuries []injuryGroupResponse `json:"injuries"`
}

type injuryGroupResponse struct {
	Injuries []injuryResponse `json:"injuries"`
}

type injuryResponse struct {
	Status  string                `json:"status"`
	Athlete athleteResponse       `json:"athlete"`
	Details injuryDetailsResponse `json:"details"`
}

type athleteResponse struct {
	DisplayName string           `json:"displayName"`
	Position    positionResponse `json:"position"`
}

type positionResponse struct {
	Abbreviation string `json:"abbreviation"`
}

type injuryDetailsResponse struct {
	Detail string `json:"detail"`
}
