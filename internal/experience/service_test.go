package experience

import (
	"context"
	"errors"
	"testing"
)

func TestCreateValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		e    Entry
	}{
		{"missing title", Entry{Company: "C", StartDate: "Jan 2020"}},
		{"missing company", Entry{Title: "T", StartDate: "Jan 2020"}},
		{"missing start date", Entry{Title: "T", Company: "C"}},
		{"current with end date", Entry{Title: "T", Company: "C", StartDate: "Jan 2020", Current: true, EndDate: "Dec 2021"}},
	}
	for _, c := range cases {
		if _, err := svc.Create(ctx, c.e); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", c.name, err)
		}
	}
}

func TestListOrdering(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	for _, e := range []Entry{
		{Title: "Second", Company: "C", StartDate: "2019", Order: 2},
		{Title: "First", Company: "C", StartDate: "2021", Order: 1},
	} {
		if _, err := svc.Create(ctx, e); err != nil {
			t.Fatalf("create %s: %v", e.Title, err)
		}
	}

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d", len(items))
	}
	if items[0].Title != "First" || items[1].Title != "Second" {
		t.Errorf("order: got %s, %s", items[0].Title, items[1].Title)
	}
}

func TestUpdateMissing(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	_, err := svc.Update(context.Background(), "missing", Entry{Title: "T", Company: "C", StartDate: "2020"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
