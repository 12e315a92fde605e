package service

import (
	"context"
	"database/sql"

	"github.com/welcomehome/inventory/internal/queue"
	"github.com/welcomehome/inventory/internal/repository"
)

// EventPublisher emits domain events after a mutating operation
// commits. Publish failures must not fail the operation; the default
// implementation logs and moves on.
type EventPublisher interface {
	PublishDonationRecorded(ctx context.Context, ev queue.DonationRecordedEvent) error
	PublishOrderPrepared(ctx context.Context, ev queue.OrderPreparedEvent) error
}

// App is the application service. It orchestrates the credential,
// catalog, order and donation stores and owns the session registry.
type App struct {
	db         *sql.DB
	iterations int // PBKDF2 iteration count for password hashing

	users      *repository.UserRepo
	donors     *repository.DonorRepo
	categories *repository.CategoryRepo
	items      *repository.ItemRepo
	orders     *repository.OrderRepo
	donations  *repository.DonationRepo

	sessions  *SessionRegistry
	publisher EventPublisher // may be nil; events are then skipped
}

// New constructs the application service over an open store handle.
func New(db *sql.DB, iterations int, publisher EventPublisher) *App {
	return &App{
		db:         db,
		iterations: iterations,
		users:      repository.NewUserRepo(db),
		donors:     repository.NewDonorRepo(db),
		categories: repository.NewCategoryRepo(db),
		items:      repository.NewItemRepo(db),
		orders:     repository.NewOrderRepo(db),
		donations:  repository.NewDonationRepo(db),
		sessions:   NewSessionRegistry(),
		publisher:  publisher,
	}
}

// Session resolves a session ID to its live session, or nil.
func (a *App) Session(id string) *Session { return a.sessions.Get(id) }
