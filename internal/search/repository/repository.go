package repository

import searchdomain "mailscope-backend/internal/search/domain"

// SearchHistoryRepository stores the per-search audit trail.
type SearchHistoryRepository interface {
	Record(entry *searchdomain.SearchHistory) error
	FindRecent(limit int) ([]*searchdomain.SearchHistory, error)
}
