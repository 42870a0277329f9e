package imap

import (
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"

	searchdomain "mailscope-backend/internal/search/domain"
)

const (
	snippetLength   = 150
	defaultSubject  = "(No Subject)"
	defaultFrom     = "Unknown"
	snippetEllipsis = "..."
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// parseMessage decodes a raw RFC 822 message into the search result shape.
// The subject falls back to a placeholder and the date to the parse time when
// the message lacks them.
func parseMessage(seqNum uint32, r io.Reader) (*searchdomain.Message, error) {
	mr, err := mail.CreateReader(r)
	if err != nil {
		// Unknown charsets are decoded best-effort; anything else is fatal
		// for this message.
		if mr == nil || !message.IsUnknownCharset(err) {
			return nil, err
		}
	}

	msg := &searchdomain.Message{
		ID:      seqNum,
		From:    defaultFrom,
		Subject: defaultSubject,
		Date:    time.Now(),
	}

	header := mr.Header
	if subject, err := header.Subject(); err == nil && subject != "" {
		msg.Subject = subject
	}
	if date, err := header.Date(); err == nil && !date.IsZero() {
		msg.Date = date
	}
	if addrs, err := header.AddressList("From"); err == nil && len(addrs) > 0 {
		msg.From = formatAddress(addrs[0])
	}

	var textBody, htmlBody string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			if message.IsUnknownCharset(err) {
				continue
			}
			return nil, err
		}

		inline, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}

		mediaType, _, _ := inline.ContentType()
		data, err := io.ReadAll(part.Body)
		if err != nil {
			continue
		}

		switch mediaType {
		case "text/html":
			if htmlBody == "" {
				htmlBody = string(data)
			}
		case "text/plain":
			if textBody == "" {
				textBody = string(data)
			}
		}
	}

	// HTML is preferred for display, plain text for the snippet.
	msg.Body = htmlBody
	if msg.Body == "" {
		msg.Body = textBody
	}

	snippetSource := textBody
	if snippetSource == "" {
		snippetSource = htmlToText(htmlBody)
	}
	msg.Snippet = makeSnippet(snippetSource, snippetLength)

	return msg, nil
}

func formatAddress(addr *mail.Address) string {
	if addr.Name != "" {
		return fmt.Sprintf("%s <%s>", addr.Name, addr.Address)
	}
	return addr.Address
}

// htmlToText strips tags and entities to get a rough text rendering, good
// enough for snippets when a message has no text/plain part.
func htmlToText(s string) string {
	return html.UnescapeString(htmlTagPattern.ReplaceAllString(s, " "))
}

// makeSnippet collapses whitespace and truncates to limit characters,
// appending an ellipsis marker when the text was longer.
func makeSnippet(text string, limit int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	runes := []rune(collapsed)
	if len(runes) <= limit {
		return collapsed
	}
	return strings.TrimSpace(string(runes[:limit])) + snippetEllipsis
}
