package usecase

import (
	searchdomain "mailscope-backend/internal/search/domain"
	searchdto "mailscope-backend/internal/search/dto"
)

// Mailbox performs the remote bounded search. Satisfied by *imap.Service.
type Mailbox interface {
	Search(targetEmail string) ([]*searchdomain.Message, error)
}

type SearchUsecase interface {
	// Search runs the mailbox query for targetEmail, filters out
	// verification emails and records an audit entry. Callers are expected
	// to have passed the access gate first.
	Search(targetEmail, ipAddress, userAgent string) (*searchdto.SearchResponse, error)

	RecentHistory(limit int) ([]*searchdomain.SearchHistory, error)
}
