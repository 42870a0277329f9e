package usecase

import (
	"errors"
	"testing"
	"time"

	searchdomain "mailscope-backend/internal/search/domain"
	"mailscope-backend/internal/search/repository"
	"mailscope-backend/pkg/filter"
)

type fakeMailbox struct {
	messages []*searchdomain.Message
	err      error
	calls    int
}

func (f *fakeMailbox) Search(targetEmail string) ([]*searchdomain.Message, error) {
	f.calls++
	return f.messages, f.err
}

type failingHistoryRepo struct{}

func (failingHistoryRepo) Record(*searchdomain.SearchHistory) error {
	return errors.New("disk full")
}

func (failingHistoryRepo) FindRecent(int) ([]*searchdomain.SearchHistory, error) {
	return nil, nil
}

func newMessages() []*searchdomain.Message {
	day := func(d int) time.Time {
		return time.Date(2024, time.March, d, 10, 0, 0, 0, time.UTC)
	}
	return []*searchdomain.Message{
		{ID: 1, Subject: "Meeting notes", Date: day(5)},
		{ID: 2, Subject: "Your verification code is 552211", Date: day(4)},
		{ID: 3, Subject: "Invoice", Date: day(3)},
	}
}

func TestSearch_FiltersVerificationEmails(t *testing.T) {
	t.Parallel()

	mailbox := &fakeMailbox{messages: newMessages()}
	uc := NewSearchUsecase(mailbox, filter.New(filter.DefaultDenylist), repository.NewMemoryHistoryRepository())

	resp, err := uc.Search("shared@example.com", "10.0.0.1", "go-test")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if !resp.Success {
		t.Error("Success = false, want true")
	}
	if resp.Count != 2 || len(resp.Messages) != 2 {
		t.Fatalf("Count = %d, len(Messages) = %d, want 2", resp.Count, len(resp.Messages))
	}
	for _, msg := range resp.Messages {
		if msg.ID == 2 {
			t.Error("verification email leaked into results")
		}
	}

	if resp.Security == nil {
		t.Fatal("Security summary missing")
	}
	if resp.Security.TotalScanned != 3 || resp.Security.VerificationEmailsBlocked != 1 || resp.Security.SafeEmailsReturned != 2 {
		t.Errorf("unexpected security summary: %+v", resp.Security)
	}
}

func TestSearch_RecordsHistory(t *testing.T) {
	t.Parallel()

	historyRepo := repository.NewMemoryHistoryRepository()
	uc := NewSearchUsecase(&fakeMailbox{messages: newMessages()}, filter.New(filter.DefaultDenylist), historyRepo)

	if _, err := uc.Search("Shared@Example.com", "10.0.0.1", "go-test"); err != nil {
		t.Fatalf("Search error: %v", err)
	}

	entries, err := historyRepo.FindRecent(10)
	if err != nil {
		t.Fatalf("FindRecent error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}

	entry := entries[0]
	if entry.Email != "shared@example.com" {
		t.Errorf("Email = %q, want lowercase address", entry.Email)
	}
	if entry.ResultsCount != 2 || entry.BlockedCount != 1 {
		t.Errorf("counts = (%d, %d), want (2, 1)", entry.ResultsCount, entry.BlockedCount)
	}
	if entry.IPAddress != "10.0.0.1" || entry.UserAgent != "go-test" {
		t.Errorf("client info not recorded: %+v", entry)
	}
}

func TestSearch_HistoryFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	uc := NewSearchUsecase(&fakeMailbox{messages: newMessages()}, filter.New(filter.DefaultDenylist), failingHistoryRepo{})

	resp, err := uc.Search("shared@example.com", "", "")
	if err != nil {
		t.Fatalf("Search should tolerate a failing audit write, got %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("Count = %d, want 2", resp.Count)
	}
}

func TestSearch_MailboxErrorIsFatal(t *testing.T) {
	t.Parallel()

	mailboxErr := errors.New("imap fetch: connection reset")
	uc := NewSearchUsecase(&fakeMailbox{err: mailboxErr}, filter.New(filter.DefaultDenylist), repository.NewMemoryHistoryRepository())

	if _, err := uc.Search("shared@example.com", "", ""); !errors.Is(err, mailboxErr) {
		t.Fatalf("Search error = %v, want mailbox error", err)
	}
}

func TestSearch_EmptyMailboxResult(t *testing.T) {
	t.Parallel()

	uc := NewSearchUsecase(&fakeMailbox{messages: []*searchdomain.Message{}}, filter.New(filter.DefaultDenylist), repository.NewMemoryHistoryRepository())

	resp, err := uc.Search("shared@example.com", "", "")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if resp.Count != 0 || len(resp.Messages) != 0 {
		t.Errorf("expected empty result, got %+v", resp)
	}
}

func TestRecentHistory_ClampsLimit(t *testing.T) {
	t.Parallel()

	historyRepo := repository.NewMemoryHistoryRepository()
	uc := NewSearchUsecase(&fakeMailbox{}, filter.New(nil), historyRepo)

	for i := 0; i < 60; i++ {
		if _, err := uc.Search("a@example.com", "", ""); err != nil {
			t.Fatalf("Search error: %v", err)
		}
	}

	entries, err := uc.RecentHistory(-1)
	if err != nil {
		t.Fatalf("RecentHistory error: %v", err)
	}
	if len(entries) != 50 {
		t.Errorf("len(entries) = %d, want default limit 50", len(entries))
	}
}
