package service

import (
	"context"
	"errors"
	"testing"

	"github.com/welcomehome/inventory/internal/database"
	"github.com/welcomehome/inventory/internal/model"
	"github.com/welcomehome/inventory/internal/repository"
)

// testIterations keeps the KDF cheap in tests; production loads the
// count from config which enforces a much higher floor.
const testIterations = 1200

func newTestApp(t *testing.T) *App {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return New(db, testIterations, nil)
}

// login registers a user with the given role and authenticates, returning
// the live session.
func login(t *testing.T, app *App, username, password string, role model.Role) *Session {
	t.Helper()
	ctx := context.Background()
	if err := app.Register(ctx, username, password, role); err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	sess, err := app.Authenticate(ctx, username, password)
	if err != nil {
		t.Fatalf("authenticate %s: %v", username, err)
	}
	return sess
}

func TestRegisterAndAuthenticate(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	if err := app.Register(ctx, "alice", "s3cret", model.RoleClient); err != nil {
		t.Fatalf("register: %v", err)
	}
	sess, err := app.Authenticate(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if sess.Username != "alice" || sess.Role != model.RoleClient {
		t.Fatalf("unexpected session identity: %s/%s", sess.Username, sess.Role)
	}
	if sess.ID == "" {
		t.Fatal("expected a session ID")
	}
	if got := app.Session(sess.ID); got != sess {
		t.Fatal("session not resolvable from registry")
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	if err := app.Register(ctx, "alice", "s3cret", model.RoleClient); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := app.Authenticate(ctx, "alice", "wrong"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("wrong password: got %v, want ErrAuthenticationFailed", err)
	}
	// Unknown usernames surface the same error as bad passwords.
	if _, err := app.Authenticate(ctx, "nobody", "s3cret"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("unknown user: got %v, want ErrAuthenticationFailed", err)
	}
}

func TestRegisterDuplicateKeepsOriginalCredentials(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	if err := app.Register(ctx, "alice", "first", model.RoleClient); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := app.Register(ctx, "alice", "second", model.RoleAdmin); !errors.Is(err, repository.ErrDuplicateUser) {
		t.Fatalf("duplicate register: got %v, want ErrDuplicateUser", err)
	}
	// The first password still authenticates; the second never took effect.
	if _, err := app.Authenticate(ctx, "alice", "first"); err != nil {
		t.Fatalf("original password rejected: %v", err)
	}
	if _, err := app.Authenticate(ctx, "alice", "second"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("replacement password accepted: %v", err)
	}
}

func TestLogoutRemovesSession(t *testing.T) {
	app := newTestApp(t)
	sess := login(t, app, "alice", "pw", model.RoleClient)

	app.Logout(sess.ID)
	if app.Session(sess.ID) != nil {
		t.Fatal("session survived logout")
	}
	// A second logout with the same ID is a no-op.
	app.Logout(sess.ID)
}
