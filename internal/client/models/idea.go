package models

import (
	"fmt"
	"strings"
	"time"
)

// IdeaStatus enumerates the review pipeline stages an idea can be in.
type IdeaStatus string

const (
	StatusUnderReview  IdeaStatus = "under review"
	StatusApproved     IdeaStatus = "approved"
	StatusImplementing IdeaStatus = "implementing"
	StatusImplemented  IdeaStatus = "implemented"
	StatusRejected     IdeaStatus = "rejected"
)

// Statuses lists all valid pipeline stages in display order.
var Statuses = []IdeaStatus{
	StatusUnderReview,
	StatusApproved,
	StatusImplementing,
	StatusImplemented,
	StatusRejected,
}

// Valid reports whether s is one of the known pipeline stages.
func (s IdeaStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus normalizes raw user/server input into an IdeaStatus.
// Underscores are accepted in place of spaces ("under_review").
func ParseStatus(raw string) (IdeaStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, "_", " ")
	s := IdeaStatus(normalized)
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", raw)
	}
	return s, nil
}

// Submitter is a back-reference to the employee who submitted an idea.
type Submitter struct {
	EmployeeNumber string `json:"employeeNumber"`
	Name           string `json:"name"`
}

// Idea is an improvement idea record. The remote service is the system of
// record; the client cache holds possibly-stale copies in server order.
type Idea struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      IdeaStatus `json:"status"`
	SubmittedBy Submitter  `json:"submittedBy"`
	CreatedAt   time.Time  `json:"createdAt,omitzero"`
}
