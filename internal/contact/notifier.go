package contact

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Notifier delivers a new-message notification to the site owner.
type Notifier interface {
	Notify(ctx context.Context, m Message) error
}

// SMTPNotifier sends notifications over plain SMTP with optional auth.
// No third-party mail client appears anywhere in our stack, so this
// stays on net/smtp.
type SMTPNotifier struct {
	Host     string
	Port     string
	User     string
	Password string
	To       string
}

func (n *SMTPNotifier) Notify(ctx context.Context, m Message) error {
	if n.Host == "" || n.To == "" {
		return nil
	}

	var auth smtp.Auth
	if n.User != "" {
		auth = smtp.PlainAuth("", n.User, n.Password, n.Host)
	}

	addr := n.Host + ":" + n.Port
	if err := smtp.SendMail(addr, auth, n.User, []string{n.To}, n.buildMessage(m)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func (n *SMTPNotifier) buildMessage(m Message) []byte {
	subject := headerValue(m.Subject)
	if subject == "" {
		subject = "New contact message"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "From: portfolio <%s>\r\n", n.User)
	fmt.Fprintf(&sb, "To: %s\r\n", n.To)
	fmt.Fprintf(&sb, "Subject: %s\r\n", subject)
	fmt.Fprintf(&sb, "Reply-To: %s\r\n", headerValue(m.Email))
	sb.WriteString("\r\n")
	fmt.Fprintf(&sb, "From: %s <%s>\r\n\r\n%s\r\n", headerValue(m.Name), headerValue(m.Email), m.Body)
	return []byte(sb.String())
}

// headerValue flattens CR and LF so a submitted field cannot terminate
// its header line and smuggle extra headers into the message.
func headerValue(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return ' '
		}
		return r
	}, s)
}

var _ Notifier = (*SMTPNotifier)(nil)
