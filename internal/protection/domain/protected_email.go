package domain

import "time"

// ProtectedEmail gates search access to a single recipient address. While
// IsLocked is true, callers must present the access key before searching.
type ProtectedEmail struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null"` // stored lowercase
	AccessKey      string     `json:"accessKey" gorm:"not null"`
	IsLocked       bool       `json:"isLocked" gorm:"index"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	LastAccessedAt *time.Time `json:"lastAccessedAt,omitempty"`
	AccessCount    int64      `json:"accessCount"`
}

// StoreStats aggregates record counts for the admin dashboard.
type StoreStats struct {
	Total    int64 `json:"totalProtectedEmails"`
	Locked   int64 `json:"totalLocked"`
	Unlocked int64 `json:"totalUnlocked"`
}
