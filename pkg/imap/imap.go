package imap

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"sort"
	"sync"
	"time"

	goimap "github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"

	searchdomain "mailscope-backend/internal/search/domain"
	"mailscope-backend/pkg/config"
)

const (
	// searchWindow bounds the query to messages received within the last day.
	searchWindow = 24 * time.Hour

	// maxMessages caps how many matches are fetched and parsed per search.
	// Older matches past the cap are dropped; this bounds memory and parse
	// cost, it is not a completeness guarantee.
	maxMessages = 50
)

// ErrCredentialsNotConfigured is returned when IMAP_USER/IMAP_PASS are absent.
// The check happens at call time so the server can still boot without them.
var ErrCredentialsNotConfigured = errors.New("IMAP credentials not configured")

// Service performs bounded searches against a single shared mailbox.
type Service struct {
	host string
	port string
	user string
	pass string
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		host: cfg.IMAPHost,
		port: cfg.IMAPPort,
		user: cfg.IMAPUser,
		pass: cfg.IMAPPass,
	}
}

// Search opens a fresh read-only connection, runs a single TO+SINCE query
// against INBOX and returns the parsed matches sorted by date descending.
// The connection is torn down before returning; nothing is pooled or retried
// across calls. Protocol-level failures fail the whole call; a message that
// cannot be parsed is logged and dropped from the result set.
func (s *Service) Search(targetEmail string) ([]*searchdomain.Message, error) {
	if s.user == "" || s.pass == "" {
		return nil, ErrCredentialsNotConfigured
	}

	addr := net.JoinHostPort(s.host, s.port)
	c, err := client.DialTLS(addr, &tls.Config{ServerName: s.host})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", addr, err)
	}
	defer c.Logout()

	if err := c.Login(s.user, s.pass); err != nil {
		return nil, fmt.Errorf("imap login: %w", err)
	}

	if _, err := c.Select("INBOX", true); err != nil {
		return nil, fmt.Errorf("select inbox: %w", err)
	}

	criteria := goimap.NewSearchCriteria()
	criteria.Header.Add("To", targetEmail)
	// SINCE only has calendar-day granularity; the protocol drops the time part.
	criteria.Since = time.Now().Add(-searchWindow)

	seqNums, err := c.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("imap search: %w", err)
	}

	if len(seqNums) == 0 {
		return []*searchdomain.Message{}, nil
	}

	seqNums = capMostRecent(seqNums, maxMessages)

	seqSet := new(goimap.SeqSet)
	seqSet.AddNum(seqNums...)

	section := &goimap.BodySectionName{Peek: true}
	items := []goimap.FetchItem{section.FetchItem()}

	fetched := make(chan *goimap.Message, len(seqNums))
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqSet, items, fetched)
	}()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		messages []*searchdomain.Message
	)

	for msg := range fetched {
		body := msg.GetBody(section)
		if body == nil {
			log.Printf("imap: message %d has no body section", msg.SeqNum)
			continue
		}

		// One parser goroutine per fetched message. The body literal is
		// already buffered in memory, so parsing can outlive this loop
		// iteration. Completion order is arbitrary.
		wg.Add(1)
		go func(seqNum uint32, r io.Reader) {
			defer wg.Done()
			parsed, err := parseMessage(seqNum, r)
			if err != nil {
				log.Printf("imap: parse message %d: %v", seqNum, err)
				return
			}
			mu.Lock()
			messages = append(messages, parsed)
			mu.Unlock()
		}(msg.SeqNum, body)
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("imap fetch: %w", err)
	}
	wg.Wait()

	sortByDateDesc(messages)
	return messages, nil
}

// capMostRecent keeps the tail of an ascending sequence-number list. The
// server returns matches oldest-first, so the tail holds the newest ones.
func capMostRecent(seqNums []uint32, max int) []uint32 {
	if len(seqNums) <= max {
		return seqNums
	}
	return seqNums[len(seqNums)-max:]
}

// sortByDateDesc restores a deterministic order after the concurrent parse
// stage, which appends in completion order rather than fetch order.
func sortByDateDesc(messages []*searchdomain.Message) {
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Date.After(messages[j].Date)
	})
}
