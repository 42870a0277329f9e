package domain

import "time"

// AdminSession is a server-side record backing one issued dashboard token.
// A token is only honored while its session is active and unexpired.
type AdminSession struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	Token          string    `json:"-" gorm:"uniqueIndex;not null"`
	Username       string    `json:"username" gorm:"not null"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	CreatedAt      time.Time `json:"created_at"`
	ExpiresAt      time.Time `json:"expires_at" gorm:"index"`
	LastActivityAt time.Time `json:"last_activity_at"`
	IsActive       bool      `json:"is_active" gorm:"index"`
}
