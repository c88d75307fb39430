package contact

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeNotifier struct {
	sent []Message
	err  error
}

func (f *fakeNotifier) Notify(ctx context.Context, m Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

func validMessage() Message {
	return Message{
		Name:    "Sam Reader",
		Email:   "sam@example.com",
		Subject: "Hello",
		Body:    "I liked your projects page.",
	}
}

func TestSubmitStoresAndNotifies(t *testing.T) {
	ctx := context.Background()
	notifier := &fakeNotifier{}
	svc := NewService(NewMemoryRepo(), notifier)

	m, err := svc.Submit(ctx, validMessage())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if m.ID == "" || m.Read {
		t.Errorf("bad stored message: %+v", m)
	}
	if len(notifier.sent) != 1 {
		t.Errorf("notifications sent = %d, want 1", len(notifier.sent))
	}
}

func TestSubmitSurvivesNotifierFailure(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepo(), &fakeNotifier{err: errors.New("smtp down")})

	if _, err := svc.Submit(ctx, validMessage()); err != nil {
		t.Fatalf("submit must not fail on notification error: %v", err)
	}
	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("stored %d messages, want 1", len(items))
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo(), nil)
	ctx := context.Background()

	cases := []struct {
		name string
		mut  func(*Message)
	}{
		{"missing name", func(m *Message) { m.Name = "" }},
		{"bad email", func(m *Message) { m.Email = "not-an-email" }},
		{"missing body", func(m *Message) { m.Body = "  " }},
		{"subject too long", func(m *Message) { m.Subject = strings.Repeat("s", maxSubjectLen+1) }},
		{"body too long", func(m *Message) { m.Body = strings.Repeat("b", maxBodyLen+1) }},
	}
	for _, c := range cases {
		m := validMessage()
		c.mut(&m)
		if _, err := svc.Submit(ctx, m); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", c.name, err)
		}
	}
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepo(), nil)

	m, err := svc.Submit(ctx, validMessage())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := svc.MarkRead(ctx, m.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || !items[0].Read {
		t.Errorf("message not marked read: %+v", items)
	}
	if err := svc.MarkRead(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing id: err = %v, want ErrNotFound", err)
	}
}
