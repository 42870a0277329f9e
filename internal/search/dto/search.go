package dto

import searchdomain "mailscope-backend/internal/search/domain"

type SearchRequest struct {
	TargetEmail string `json:"targetEmail" binding:"required,email"`
}

// SecuritySummary tells the caller how many verification emails were
// withheld from the result set.
type SecuritySummary struct {
	TotalScanned              int `json:"totalScanned"`
	VerificationEmailsBlocked int `json:"verificationEmailsBlocked"`
	SafeEmailsReturned        int `json:"safeEmailsReturned"`
}

type SearchResponse struct {
	Success  bool                    `json:"success"`
	Count    int                     `json:"count"`
	Messages []*searchdomain.Message `json:"messages"`
	Security *SecuritySummary        `json:"security,omitempty"`
}

type HistoryResponse struct {
	Success bool                          `json:"success"`
	History []*searchdomain.SearchHistory `json:"history"`
}
