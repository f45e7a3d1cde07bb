package postgres

import (
	"context"
	"errors"

	investorDomain "investiq/internal/domain/investor"

	"gorm.io/gorm"
)

type InvestorRepository struct{ db *gorm.DB }

func NewInvestorRepository(db *gorm.DB) *InvestorRepository {
	return &InvestorRepository{db: db}
}

// translateErr maps gorm errors to the domain taxonomy. Duplicate-key
// detection relies on gorm.Config{TranslateError: true} so it works under
// both the postgres and sqlite drivers.
func translateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return investorDomain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return investorDomain.ErrDuplicateIDNumber
	default:
		return err
	}
}

func (r *InvestorRepository) Create(ctx context.Context, inv *investorDomain.Investor) error {
	return translateErr(r.db.WithContext(ctx).Create(inv).Error)
}

func (r *InvestorRepository) GetByID(ctx context.Context, id uint64) (*investorDomain.Investor, error) {
	var out investorDomain.Investor
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if res.Error != nil {
		return nil, translateErr(res.Error)
	}
	return &out, nil
}

func (r *InvestorRepository) ListAll(ctx context.Context) ([]investorDomain.Investor, error) {
	var out []investorDomain.Investor
	res := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&out)
	if res.Error != nil {
		return nil, translateErr(res.Error)
	}
	return out, nil
}

func (r *InvestorRepository) Update(ctx context.Context, inv *investorDomain.Investor) error {
	// Save would upsert a fresh row when the id is gone (e.g. deleted by a
	// concurrent request); an explicit WHERE keeps this a pure update.
	res := r.db.WithContext(ctx).
		Model(&investorDomain.Investor{}).
		Where("id = ?", inv.ID).
		Select("*").Omit("id", "created_at").
		Updates(inv)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return investorDomain.ErrNotFound
	}
	return nil
}

func (r *InvestorRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&investorDomain.Investor{}, id)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return investorDomain.ErrNotFound
	}
	return nil
}
