package domain

import "time"

// SearchHistory is an audit record written after every completed search.
type SearchHistory struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"index:idx_history_email;not null"`
	SearchedAt   time.Time `json:"searched_at" gorm:"index:idx_history_searched_at"`
	ResultsCount int       `json:"results_count"`
	BlockedCount int       `json:"blocked_count"`
	IPAddress    string    `json:"ip_address,omitempty"`
	UserAgent    string    `json:"user_agent,omitempty"`
}
