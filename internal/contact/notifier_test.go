package contact

import (
	"strings"
	"testing"
)

func TestBuildMessageSanitizesHeaders(t *testing.T) {
	n := &SMTPNotifier{User: "noreply@example.com", To: "owner@example.com"}
	msg := string(n.buildMessage(Message{
		Name:    "Eve\r\nX-Injected: 1",
		Email:   "eve@example.com\r\nBcc: spam@example.com",
		Subject: "hi\r\nBcc: a@example.com,b@example.com",
		Body:    "hello",
	}))

	headers, _, ok := strings.Cut(msg, "\r\n\r\n")
	if !ok {
		t.Fatalf("message has no header/body separator:\n%s", msg)
	}
	for _, line := range strings.Split(headers, "\r\n") {
		if strings.HasPrefix(line, "Bcc:") || strings.HasPrefix(line, "X-Injected:") {
			t.Errorf("injected header survived: %q", line)
		}
	}
	if !strings.Contains(headers, "Subject: hi Bcc: a@example.com,b@example.com") {
		t.Errorf("subject not flattened onto one line:\n%s", headers)
	}
}

func TestBuildMessageDefaultSubject(t *testing.T) {
	n := &SMTPNotifier{User: "noreply@example.com", To: "owner@example.com"}
	msg := string(n.buildMessage(Message{Name: "Ada", Email: "ada@example.com", Body: "hello"}))
	if !strings.Contains(msg, "Subject: New contact message\r\n") {
		t.Errorf("default subject missing:\n%s", msg)
	}
}
