package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/bibletrack/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Slot is one named document in durable storage.
type Slot struct {
	Name      string
	Value     string
	UpdatedAt time.Time
}

type SlotRepo interface {
	Get(ctx context.Context, name string) (*Slot, error)
	Put(ctx context.Context, name, value string) error
	Delete(ctx context.Context, name string) error
}

type ActivityRepo interface {
	Append(ctx context.Context, a *domain.Activity) error
	ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error)
	Count(ctx context.Context) (int, error)
}
