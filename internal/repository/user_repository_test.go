package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/welcomehome/inventory/internal/database"
	"github.com/welcomehome/inventory/internal/model"
)

func newTestDB(t *testing.T) *UserRepo {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepo(db)
}

func TestUserRepoCreateAndGet(t *testing.T) {
	users := newTestDB(t)
	ctx := context.Background()

	u := model.User{Username: "alice", PasswordHash: "hash", Salt: "salt", Role: model.RoleStaff}
	if err := users.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := users.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != u {
		t.Fatalf("got %+v, want %+v", got, u)
	}

	ok, err := users.Exists(ctx, "alice")
	if err != nil || !ok {
		t.Fatalf("exists(alice) = %v, %v", ok, err)
	}
	ok, err = users.Exists(ctx, "bob")
	if err != nil || ok {
		t.Fatalf("exists(bob) = %v, %v", ok, err)
	}
}

func TestUserRepoDuplicate(t *testing.T) {
	users := newTestDB(t)
	ctx := context.Background()

	u := model.User{Username: "alice", PasswordHash: "h1", Salt: "s1", Role: model.RoleClient}
	if err := users.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	u.PasswordHash = "h2"
	if err := users.Create(ctx, u); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("duplicate create: got %v, want ErrDuplicateUser", err)
	}
	got, err := users.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PasswordHash != "h1" {
		t.Fatalf("stored hash %q, want the original h1", got.PasswordHash)
	}
}

func TestUserRepoGetUnknown(t *testing.T) {
	users := newTestDB(t)
	if _, err := users.GetByUsername(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
