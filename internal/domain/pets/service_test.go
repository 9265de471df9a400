package pets

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory, ordenado como el slice real)
// -------------------------

type testRepo struct {
	list []Pet
}

func newTestRepo() *testRepo {
	return &testRepo{list: []Pet{}}
}

func (r *testRepo) Add(ctx context.Context, p Pet) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	for _, existing := range r.list {
		if existing.ID == p.ID {
			return errors.New("repo: already exists")
		}
	}
	r.list = append(r.list, p)
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	for i := range r.list {
		if r.list[i].ID == p.ID {
			r.list[i] = p
			return nil
		}
	}
	return ErrNotFound
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	for i := range r.list {
		if r.list[i].ID == id {
			r.list = append(r.list[:i], r.list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *testRepo) ReplaceAll(ctx context.Context, ps []Pet) error {
	r.list = append([]Pet{}, ps...)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	for _, p := range r.list {
		if p.ID == id {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	return append([]Pet{}, r.list...), nil
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2024, 8, 25, 12, 0, 0, 0, time.UTC) }
	return svc
}

func seedRepo(t *testing.T, repo Repository) {
	t.Helper()
	err := repo.ReplaceAll(context.Background(), []Pet{
		{ID: "a", Name: "Milo", Type: TypeDog, Breed: "mixed"},
		{ID: "b", Name: "Luna", Type: TypeCat, Breed: "siamese", Favorite: true},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestCreateThenDelete_RestoresList(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := newTestService(repo)
	seedRepo(t, repo)

	before, _ := repo.List(ctx)

	p, err := svc.Create(ctx, "owner-1", CreateInput{
		Name: "Rocky", Type: "dog", Breed: "beagle", Age: 4, Weight: 12,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	after, _ := repo.List(ctx)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("expected list restored after add+delete, got %+v", after)
	}
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newTestRepo())

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"empty name", CreateInput{Type: "dog"}},
		{"unknown type", CreateInput{Name: "X", Type: "dragon"}},
		{"negative age", CreateInput{Name: "X", Type: "dog", Age: -1}},
		{"negative weight", CreateInput{Name: "X", Type: "dog", Weight: -0.5}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, "owner-1", tc.in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestUpdate_PresentReplacesExactlyOne(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := newTestService(repo)
	seedRepo(t, repo)

	name := "Milo Updated"
	updated, err := svc.Update(ctx, "a", UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Milo Updated" || updated.Breed != "mixed" {
		t.Fatalf("unexpected updated pet: %+v", updated)
	}

	list, _ := repo.List(ctx)
	if len(list) != 2 {
		t.Fatalf("expected length preserved, got %d", len(list))
	}
	if list[0].Name != "Milo Updated" || list[1].Name != "Luna" {
		t.Fatalf("expected exactly one entry replaced, got %+v", list)
	}
}

func TestUpdate_AbsentLeavesListUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := newTestService(repo)
	seedRepo(t, repo)

	before, _ := repo.List(ctx)

	name := "Ghost"
	if _, err := svc.Update(ctx, "missing", UpdateInput{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	after, _ := repo.List(ctx)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("expected list unchanged on missing id, got %+v", after)
	}
}

func TestDelete_AbsentLeavesListUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := newTestService(repo)
	seedRepo(t, repo)

	before, _ := repo.List(ctx)

	if err := svc.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	after, _ := repo.List(ctx)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("expected list unchanged on missing id, got %+v", after)
	}
}

func TestToggleFavorite_IsItsOwnInverse(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := newTestService(repo)
	seedRepo(t, repo)

	for _, id := range []string{"a", "b"} {
		original, _ := repo.GetByID(ctx, id)

		once, err := svc.ToggleFavorite(ctx, id)
		if err != nil {
			t.Fatalf("toggle %s: %v", id, err)
		}
		if once.Favorite == original.Favorite {
			t.Fatalf("%s: expected favorite flipped", id)
		}

		twice, err := svc.ToggleFavorite(ctx, id)
		if err != nil {
			t.Fatalf("toggle %s: %v", id, err)
		}
		if twice.Favorite != original.Favorite {
			t.Fatalf("%s: expected favorite restored after double toggle", id)
		}
	}
}

func TestReplaceAll_CoercesUnknownTypes(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := newTestService(repo)

	err := svc.ReplaceAll(ctx, []Pet{
		{ID: "x", Name: "Old", Type: "hamster"},
	})
	if err != nil {
		t.Fatalf("replace all: %v", err)
	}

	p, _ := repo.GetByID(ctx, "x")
	if p.Type != TypeOther {
		t.Fatalf("expected unknown type coerced to other, got %q", p.Type)
	}
}

func TestSearch_FiltersByNameBreedAndType(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := newTestService(repo)
	seedRepo(t, repo)

	cases := []struct {
		name    string
		query   string
		petType string
		wantIDs []string
	}{
		{"substring on name, case-insensitive", "mIL", "", []string{"a"}},
		{"substring on breed", "siam", "", []string{"b"}},
		{"type filter", "", "cat", []string{"b"}},
		{"type all", "", "all", []string{"a", "b"}},
		{"no match", "zzz", "", []string{}},
		{"query and type must both match", "milo", "cat", []string{}},
	}

	for _, tc := range cases {
		got, err := svc.Search(ctx, tc.query, tc.petType)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		ids := make([]string, 0, len(got))
		for _, p := range got {
			ids = append(ids, p.ID)
		}
		if !reflect.DeepEqual(ids, tc.wantIDs) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.wantIDs, ids)
		}
	}
}
