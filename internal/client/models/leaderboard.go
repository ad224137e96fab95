package models

// LeaderboardEntry is one row of the contributor leaderboard, ranked by the
// server. Rank is implied by position in the returned slice.
type LeaderboardEntry struct {
	EmployeeNumber string `json:"employeeNumber"`
	Name           string `json:"name"`
	Department     string `json:"department,omitempty"`
	CreditPoints   int    `json:"creditPoints"`
	IdeasSubmitted int    `json:"ideasSubmitted"`
}
