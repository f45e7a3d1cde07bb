package investor

import (
	"context"
	"errors"
)

var (
	ErrNotFound          = errors.New("investor not found")
	ErrDuplicateIDNumber = errors.New("id_number already exists")
)

type Repository interface {
	Create(ctx context.Context, inv *Investor) error
	GetByID(ctx context.Context, id uint64) (*Investor, error)
	// ListAll returns every record ordered created_at DESC, id DESC.
	ListAll(ctx context.Context) ([]Investor, error)
	Update(ctx context.Context, inv *Investor) error
	Delete(ctx context.Context, id uint64) error
}
