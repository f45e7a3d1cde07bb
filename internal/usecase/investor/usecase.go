package investor

import (
	"context"
	"fmt"
	"time"

	"investiq/internal/domain/investor"
)

type Usecase struct{ repo investor.Repository }

func NewUsecase(r investor.Repository) *Usecase { return &Usecase{repo: r} }

const dateLayout = "2006-01-02"

func (u *Usecase) Create(ctx context.Context, in UpsertInvestorInput) (*InvestorDTO, error) {
	startDate, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date: %w", err)
	}

	inv := &investor.Investor{
		FullName:         in.FullName,
		IDNumber:         in.IDNumber,
		Email:            in.Email,
		Phone:            in.Phone,
		InvestmentAmount: in.InvestmentAmount,
		StartDate:        startDate,
		InvestorType:     in.InvestorType,
		Notes:            in.Notes,
	}
	if err := u.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return toDTO(inv), nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*InvestorDTO, error) {
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(inv), nil
}

func (u *Usecase) List(ctx context.Context) ([]InvestorDTO, error) {
	list, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]InvestorDTO, 0, len(list))
	for i := range list {
		out = append(out, *toDTO(&list[i]))
	}
	return out, nil
}

// Update is a full replacement of every mutable field. Each field is copied
// explicitly so a schema change is a compile-time-visible edit here.
func (u *Usecase) Update(ctx context.Context, id uint64, in UpsertInvestorInput) (*InvestorDTO, error) {
	startDate, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date: %w", err)
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inv.FullName = in.FullName
	inv.IDNumber = in.IDNumber
	inv.Email = in.Email
	inv.Phone = in.Phone
	inv.InvestmentAmount = in.InvestmentAmount
	inv.StartDate = startDate
	inv.InvestorType = in.InvestorType
	inv.Notes = in.Notes
	now := time.Now().UTC()
	inv.UpdatedAt = &now

	if err := u.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return toDTO(inv), nil
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.repo.Delete(ctx, id)
}

func toDTO(inv *investor.Investor) *InvestorDTO {
	return &InvestorDTO{
		ID:               inv.ID,
		FullName:         inv.FullName,
		IDNumber:         inv.IDNumber,
		Email:            inv.Email,
		Phone:            inv.Phone,
		InvestmentAmount: inv.InvestmentAmount,
		StartDate:        inv.StartDate.Format(dateLayout),
		InvestorType:     inv.InvestorType,
		Notes:            inv.Notes,
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
	}
}
