package imap

import (
	"testing"
	"time"

	searchdomain "mailscope-backend/internal/search/domain"
)

func TestCapMostRecent_KeepsNewestTail(t *testing.T) {
	t.Parallel()

	seqNums := make([]uint32, 73)
	for i := range seqNums {
		seqNums[i] = uint32(i + 1)
	}

	capped := capMostRecent(seqNums, maxMessages)
	if len(capped) != 50 {
		t.Fatalf("capped length = %d, want 50", len(capped))
	}
	// The server reports matches in ascending order, so the newest 50 are 24..73.
	if capped[0] != 24 || capped[len(capped)-1] != 73 {
		t.Errorf("capped range = [%d..%d], want [24..73]", capped[0], capped[len(capped)-1])
	}
}

func TestCapMostRecent_UnderCap(t *testing.T) {
	t.Parallel()

	seqNums := []uint32{3, 7, 9}
	capped := capMostRecent(seqNums, maxMessages)
	if len(capped) != 3 {
		t.Fatalf("capped length = %d, want 3", len(capped))
	}
}

func TestSortByDateDesc_CompletionOrderIrrelevant(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time {
		return time.Date(2024, time.January, d, 12, 0, 0, 0, time.UTC)
	}

	// Arrival order mimics out-of-order parse completion: 03, 01, 02.
	messages := []*searchdomain.Message{
		{ID: 1, Date: day(3)},
		{ID: 2, Date: day(1)},
		{ID: 3, Date: day(2)},
	}

	sortByDateDesc(messages)

	wantDays := []int{3, 2, 1}
	for i, msg := range messages {
		if msg.Date.Day() != wantDays[i] {
			t.Errorf("messages[%d].Date.Day() = %d, want %d", i, msg.Date.Day(), wantDays[i])
		}
	}
}

func TestSearch_MissingCredentials(t *testing.T) {
	t.Parallel()

	s := &Service{host: "imap.example.com", port: "993"}
	if _, err := s.Search("anyone@example.com"); err != ErrCredentialsNotConfigured {
		t.Fatalf("Search() error = %v, want ErrCredentialsNotConfigured", err)
	}
}

func TestMakeSnippet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short", "hello world", "hello world"},
		{"collapses whitespace", "hello\n\n  world\t!", "hello world !"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := makeSnippet(tt.in, snippetLength); got != tt.want {
				t.Errorf("makeSnippet(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMakeSnippet_TruncatesWithEllipsis(t *testing.T) {
	t.Parallel()

	long := ""
	for i := 0; i < 40; i++ {
		long += "words "
	}

	got := makeSnippet(long, snippetLength)
	if len([]rune(got)) > snippetLength+len(snippetEllipsis) {
		t.Fatalf("snippet too long: %d runes", len([]rune(got)))
	}
	if got[len(got)-3:] != snippetEllipsis {
		t.Errorf("snippet %q does not end with ellipsis", got)
	}
}

func TestHTMLToText(t *testing.T) {
	t.Parallel()

	got := htmlToText("<p>Hello <b>there</b> &amp; welcome</p>")
	want := " Hello  there  & welcome "
	if got != want {
		t.Errorf("htmlToText = %q, want %q", got, want)
	}
}
