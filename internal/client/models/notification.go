package models

import "time"

// Notification is a message pushed by the backend when an idea changes
// state or requires attention.
type Notification struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}
