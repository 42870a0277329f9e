package domain

import "time"

// Message is a single mailbox search result. Messages are transient: they are
// produced per search call and never persisted. ID is the server-assigned
// sequence number and is only unique within that search session.
type Message struct {
	ID      uint32    `json:"id"`
	From    string    `json:"from"`
	Subject string    `json:"subject"`
	Date    time.Time `json:"date"`
	Body    string    `json:"body"`    // HTML when present, else plain text
	Snippet string    `json:"snippet"` // first 150 chars of the plain-text rendering
}
