package investormock

import (
	"context"

	domain "investiq/internal/domain/investor"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn  func(ctx context.Context, inv *domain.Investor) error
	GetByIDFn func(ctx context.Context, id uint64) (*domain.Investor, error)
	ListAllFn func(ctx context.Context) ([]domain.Investor, error)
	UpdateFn  func(ctx context.Context, inv *domain.Investor) error
	DeleteFn  func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, inv *domain.Investor) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Investor, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Investor, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Update(ctx context.Context, inv *domain.Investor) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
