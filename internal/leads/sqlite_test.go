package leads

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	lead := &Lead{
		ID:        uuid.NewString(),
		Name:      "Priya Sharma",
		Email:     "priya@example.com",
		Company:   "Acme Retail",
		CreatedAt: time.Now().Round(time.Second),
	}

	if err := s.Save(ctx, lead); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 lead, got %d", len(got))
	}
	if got[0].ID != lead.ID {
		t.Errorf("expected ID %s, got %s", lead.ID, got[0].ID)
	}
	if got[0].Email != "priya@example.com" {
		t.Errorf("expected email, got %q", got[0].Email)
	}
	if got[0].Company != "Acme Retail" {
		t.Errorf("expected company, got %q", got[0].Company)
	}
}

func TestSaveRequiresID(t *testing.T) {
	s := newTestStore(t)

	err := s.Save(context.Background(), &Lead{Name: "No ID", Email: "x@example.com"})
	if err == nil {
		t.Fatal("expected error for missing ID")
	}
}

func TestListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Now().Round(time.Second)
	for i := 0; i < 5; i++ {
		lead := &Lead{
			ID:        uuid.NewString(),
			Name:      fmt.Sprintf("Lead %d", i),
			Email:     fmt.Sprintf("lead%d@example.com", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := s.Save(ctx, lead); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	got, err := s.List(ctx, 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 leads, got %d", len(got))
	}
	if got[0].Name != "Lead 4" {
		t.Errorf("expected newest lead first, got %s", got[0].Name)
	}
}

func TestPing(t *testing.T) {
	s := newTestStore(t)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
