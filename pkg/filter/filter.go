package filter

import (
	"math"
	"strings"

	searchdomain "mailscope-backend/internal/search/domain"
)

// DefaultDenylist holds the known verification-email subject phrases.
// Blocking a new sender is an entry here, not a code change.
var DefaultDenylist = []string{
	"kode verifikasimu",
	"your verification code",
}

// Filter removes one-time-code and account-verification emails from search
// results. Only the subject line is consulted: scanning bodies for numeric
// codes flagged too much legitimate mail.
type Filter struct {
	denylist []string
}

// Stats describes the outcome of filtering a batch of messages.
type Stats struct {
	Total      int     `json:"total"`
	Filtered   int     `json:"filtered"`
	Remaining  int     `json:"remaining"`
	FilterRate float64 `json:"filterRate"` // percentage, rounded to 2 decimals
}

// New builds a Filter from a denylist of subject phrases. Phrases are matched
// case-insensitively as substrings; empty entries are ignored.
func New(denylist []string) *Filter {
	normalized := make([]string, 0, len(denylist))
	for _, phrase := range denylist {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" {
			continue
		}
		normalized = append(normalized, phrase)
	}
	return &Filter{denylist: normalized}
}

// Match reports whether the subject belongs to a verification email.
func (f *Filter) Match(subject string) bool {
	if subject == "" {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(subject))
	for _, phrase := range f.denylist {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// Apply removes verification emails, preserving the relative order of the
// survivors. Applying it twice yields the same result.
func (f *Filter) Apply(messages []*searchdomain.Message) []*searchdomain.Message {
	kept := make([]*searchdomain.Message, 0, len(messages))
	for _, msg := range messages {
		if f.Match(msg.Subject) {
			continue
		}
		kept = append(kept, msg)
	}
	return kept
}

// Stats reports how many messages a filtering pass would remove.
func (f *Filter) Stats(messages []*searchdomain.Message) Stats {
	total := len(messages)
	remaining := len(f.Apply(messages))
	filtered := total - remaining

	rate := 0.0
	if total > 0 {
		rate = float64(filtered) / float64(total) * 100
	}

	return Stats{
		Total:      total,
		Filtered:   filtered,
		Remaining:  remaining,
		FilterRate: math.Round(rate*100) / 100,
	}
}
