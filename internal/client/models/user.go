// Package models defines the client-side data model: the authenticated user,
// ideas moving through the review pipeline, notifications, and leaderboard
// rows. All records are owned by the remote service; the client holds
// read-mostly copies.
package models

import "time"

// Role is the authorization role assigned to a user by the backend.
// The client never enforces permissions itself; roles are only used to
// decide which commands to offer.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleReviewer Role = "reviewer"
	RoleAdmin    Role = "admin"
)

// User is the identity record returned by OTP verification. After login the
// bearer token is merged into the record before it is persisted, so a single
// durable entry is enough to restore a session.
type User struct {
	EmployeeNumber string    `json:"employeeNumber"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	Role           Role      `json:"role"`
	Department     string    `json:"department,omitempty"`
	Designation    string    `json:"designation,omitempty"`
	CreditPoints   int       `json:"creditPoints"`
	CreatedAt      time.Time `json:"createdAt,omitzero"`
	Token          string    `json:"token,omitempty"`
}

// Initials returns the capitalized initials of the user's display name,
// e.g. "Anil Kumar" -> "AK". Used by the profile view.
func (u *User) Initials() string {
	initials := ""
	word := true
	for _, r := range u.Name {
		if r == ' ' {
			word = true
			continue
		}
		if word {
			initials += string(r)
			word = false
		}
	}
	return initials
}
