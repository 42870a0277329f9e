package usecase

import (
	"log"
	"strings"
	"time"

	searchdomain "mailscope-backend/internal/search/domain"
	searchdto "mailscope-backend/internal/search/dto"
	"mailscope-backend/internal/search/repository"
	"mailscope-backend/pkg/filter"
)

// searchUsecase implements SearchUsecase
type searchUsecase struct {
	mailbox     Mailbox
	filter      *filter.Filter
	historyRepo repository.SearchHistoryRepository
}

// NewSearchUsecase creates a new instance of searchUsecase
func NewSearchUsecase(mailbox Mailbox, f *filter.Filter, historyRepo repository.SearchHistoryRepository) SearchUsecase {
	return &searchUsecase{
		mailbox:     mailbox,
		filter:      f,
		historyRepo: historyRepo,
	}
}

func (u *searchUsecase) Search(targetEmail, ipAddress, userAgent string) (*searchdto.SearchResponse, error) {
	scanned, err := u.mailbox.Search(targetEmail)
	if err != nil {
		return nil, err
	}

	stats := u.filter.Stats(scanned)
	safe := u.filter.Apply(scanned)

	// The audit trail is best-effort; a failed write must not fail the search.
	entry := &searchdomain.SearchHistory{
		Email:        strings.ToLower(strings.TrimSpace(targetEmail)),
		SearchedAt:   time.Now(),
		ResultsCount: len(safe),
		BlockedCount: stats.Filtered,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
	}
	if err := u.historyRepo.Record(entry); err != nil {
		log.Printf("search: record history for %s: %v", entry.Email, err)
	}

	return &searchdto.SearchResponse{
		Success:  true,
		Count:    len(safe),
		Messages: safe,
		Security: &searchdto.SecuritySummary{
			TotalScanned:              stats.Total,
			VerificationEmailsBlocked: stats.Filtered,
			SafeEmailsReturned:        stats.Remaining,
		},
	}, nil
}

func (u *searchUsecase) RecentHistory(limit int) ([]*searchdomain.SearchHistory, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return u.historyRepo.FindRecent(limit)
}
