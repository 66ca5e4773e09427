package group_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/ignite/bulkmail/internal/domain"
	"github.com/ignite/bulkmail/internal/service/group"
)

// memRepo is an in-memory group repository for unit testing.
type memRepo struct {
	mu     sync.Mutex
	groups map[string]*domain.Group // keyed by id
	err    error
}

func newMemRepo() *memRepo {
	return &memRepo{groups: make(map[string]*domain.Group)}
}

func (m *memRepo) Get(_ context.Context, id string) (*domain.Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.groups[id]
	if !ok {
		return nil, group.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (m *memRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Group
	for _, g := range m.groups {
		if g.OwnerID == ownerID {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memRepo) Create(_ context.Context, g *domain.Group) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	cp := *g
	m.groups[g.ID] = &cp
	return nil
}

func (m *memRepo) Delete(_ context.Context, ownerID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.groups[id]
	if !ok || g.OwnerID != ownerID {
		return group.ErrNotFound
	}
	delete(m.groups, id)
	return nil
}

func TestCreate(t *testing.T) {
	repo := newMemRepo()
	svc := group.NewService(repo)

	g, err := svc.Create(context.Background(), "owner-1", group.CreateInput{
		Name:   "  Customers ",
		Emails: []string{" a@example.com", "", "b@example.com "},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID == "" {
		t.Fatal("expected generated id")
	}
	if g.Name != "Customers" {
		t.Errorf("name = %q, want Customers", g.Name)
	}
	if len(g.Emails) != 2 || g.Emails[0] != "a@example.com" || g.Emails[1] != "b@example.com" {
		t.Errorf("emails = %v", g.Emails)
	}
	if g.OwnerID != "owner-1" {
		t.Errorf("owner = %q", g.OwnerID)
	}
	if _, ok := repo.groups[g.ID]; !ok {
		t.Error("group not persisted")
	}
}

func TestCreateEmptyGroup(t *testing.T) {
	svc := group.NewService(newMemRepo())
	g, err := svc.Create(context.Background(), "owner-1", group.CreateInput{Name: "Nobody"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(g.Emails) != 0 {
		t.Errorf("emails = %v, want empty", g.Emails)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := group.NewService(newMemRepo())

	_, err := svc.Create(context.Background(), "owner-1", group.CreateInput{Name: " "})
	if !errors.Is(err, group.ErrNameRequired) {
		t.Errorf("blank name: got %v, want ErrNameRequired", err)
	}

	_, err = svc.Create(context.Background(), "owner-1", group.CreateInput{
		Name:   "Bad",
		Emails: []string{"a@example.com", "not-an-email"},
	})
	if !errors.Is(err, group.ErrInvalidEmail) {
		t.Errorf("bad email: got %v, want ErrInvalidEmail", err)
	}
}

func TestCreateRepositoryError(t *testing.T) {
	repo := newMemRepo()
	repo.err = errors.New("db down")
	svc := group.NewService(repo)

	if _, err := svc.Create(context.Background(), "owner-1", group.CreateInput{Name: "x"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestListAndDelete(t *testing.T) {
	svc := group.NewService(newMemRepo())
	ctx := context.Background()

	a, _ := svc.Create(ctx, "owner-1", group.CreateInput{Name: "A"})
	_, _ = svc.Create(ctx, "owner-1", group.CreateInput{Name: "B"})
	_, _ = svc.Create(ctx, "owner-2", group.CreateInput{Name: "C"})

	list, err := svc.List(ctx, "owner-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}

	if err := svc.Delete(ctx, "owner-2", a.ID); !errors.Is(err, group.ErrNotFound) {
		t.Errorf("foreign delete: got %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, "owner-1", a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, "owner-1", a.ID); !errors.Is(err, group.ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}

	list, _ = svc.List(ctx, "owner-1")
	if len(list) != 1 || list[0].Name != "B" {
		t.Errorf("after delete: %v", list)
	}
}
