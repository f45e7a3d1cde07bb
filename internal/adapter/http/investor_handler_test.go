package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domain "investiq/internal/domain/investor"
	"investiq/internal/testutil/investormock"
	uc "investiq/internal/usecase/investor"

	"github.com/labstack/echo/v4"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func validBody() map[string]any {
	return map[string]any{
		"full_name":         "Dana Levi",
		"id_number":         "123456789",
		"email":             "d@x.com",
		"phone":             "0501234567",
		"investment_amount": 50000.0,
		"start_date":        "2024-01-01",
		"investor_type":     "private",
	}
}

// -------- tests --------

func TestCreateInvestor_Success(t *testing.T) {
	e := newEchoWithValidator()

	repo := &investormock.Repo{
		CreateFn: func(ctx context.Context, inv *domain.Investor) error {
			inv.ID = 1
			inv.CreatedAt = time.Now().UTC()
			return nil
		},
	}
	h := NewInvestorHandler(uc.NewUsecase(repo))

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/investors", mustJSON(validBody()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got uc.InvestorDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.ID != 1 || got.IDNumber != "123456789" {
		t.Fatalf("unexpected dto: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("created_at not set")
	}
	if got.UpdatedAt != nil {
		t.Fatalf("updated_at should be absent on create")
	}
}

func TestCreateInvestor_DuplicateIDNumber(t *testing.T) {
	e := newEchoWithValidator()
	repo := &investormock.Repo{
		CreateFn: func(ctx context.Context, inv *domain.Investor) error {
			return domain.ErrDuplicateIDNumber
		},
	}
	h := NewInvestorHandler(uc.NewUsecase(repo))

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/investors", mustJSON(validBody()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestCreateInvestor_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewInvestorHandler(uc.NewUsecase(&investormock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/investors", strings.NewReader(`{"full_name":`)) // broken JSON
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Error != "invalid body" {
		t.Fatalf("error = %q, want %q", er.Error, "invalid body")
	}
}

func TestCreateInvestor_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewInvestorHandler(uc.NewUsecase(&investormock.Repo{})) // won't be called

	body := validBody()
	body["email"] = "not-an-email"
	body["start_date"] = "01/01/2024"
	body["investment_amount"] = -5.0
	delete(body, "full_name")

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/investors", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if er.Error != "validation failed" {
		t.Fatalf("error = %q, want %q", er.Error, "validation failed")
	}
	if !hasFieldError(er.Details, "FullName", "is required") {
		t.Fatalf("missing required detail: %+v", er.Details)
	}
	if !hasFieldError(er.Details, "Email", "valid email") {
		t.Fatalf("missing email detail: %+v", er.Details)
	}
	if !hasFieldError(er.Details, "StartDate", "YYYY-MM-DD") {
		t.Fatalf("missing datetime detail: %+v", er.Details)
	}
	if !hasFieldError(er.Details, "InvestmentAmount", "greater than or equal to") {
		t.Fatalf("missing gte detail: %+v", er.Details)
	}
}

func TestListInvestors(t *testing.T) {
	e := echo.New()
	now := time.Now().UTC()
	repo := &investormock.Repo{
		ListAllFn: func(ctx context.Context) ([]domain.Investor, error) {
			return []domain.Investor{
				{ID: 2, IDNumber: "222222222", StartDate: now, CreatedAt: now},
				{ID: 1, IDNumber: "111111111", StartDate: now, CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	h := NewInvestorHandler(uc.NewUsecase(repo))

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/investors", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []uc.InvestorDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestGetInvestor_NotFound(t *testing.T) {
	e := echo.New()
	repo := &investormock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domain.Investor, error) {
			return nil, domain.ErrNotFound
		},
	}
	h := NewInvestorHandler(uc.NewUsecase(repo))

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/investors/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Error != "Investor not found" {
		t.Fatalf("error = %q", er.Error)
	}
}

func TestGetInvestor_BadID(t *testing.T) {
	e := echo.New()
	h := NewInvestorHandler(uc.NewUsecase(&investormock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/investors/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateInvestor_Success(t *testing.T) {
	e := newEchoWithValidator()

	stored := &domain.Investor{
		ID: 5, FullName: "Old", IDNumber: "000000000",
		Email: "old@x.com", Phone: "000", InvestmentAmount: 1,
		StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		InvestorType: "institutional", CreatedAt: time.Now().UTC().Add(-time.Hour),
	}
	repo := &investormock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domain.Investor, error) {
			cp := *stored
			return &cp, nil
		},
		UpdateFn: func(ctx context.Context, inv *domain.Investor) error { return nil },
	}
	h := NewInvestorHandler(uc.NewUsecase(repo))

	req := httptest.NewRequest(stdhttp.MethodPut, "/api/investors/5", mustJSON(validBody()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got uc.InvestorDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.FullName != "Dana Levi" || got.UpdatedAt == nil {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

func TestUpdateInvestor_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	repo := &investormock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domain.Investor, error) {
			return nil, domain.ErrNotFound
		},
	}
	h := NewInvestorHandler(uc.NewUsecase(repo))

	req := httptest.NewRequest(stdhttp.MethodPut, "/api/investors/99", mustJSON(validBody()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateInvestor_DuplicateIDNumber(t *testing.T) {
	e := newEchoWithValidator()
	repo := &investormock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domain.Investor, error) {
			return &domain.Investor{ID: id, CreatedAt: time.Now().UTC()}, nil
		},
		UpdateFn: func(ctx context.Context, inv *domain.Investor) error {
			return domain.ErrDuplicateIDNumber
		},
	}
	h := NewInvestorHandler(uc.NewUsecase(repo))

	req := httptest.NewRequest(stdhttp.MethodPut, "/api/investors/5", mustJSON(validBody()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestDeleteInvestor_Success(t *testing.T) {
	e := echo.New()
	repo := &investormock.Repo{
		DeleteFn: func(ctx context.Context, id uint64) error { return nil },
	}
	h := NewInvestorHandler(uc.NewUsecase(repo))

	req := httptest.NewRequest(stdhttp.MethodDelete, "/api/investors/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var m map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &m)
	if m["message"] != "Investor deleted successfully" {
		t.Fatalf("message = %q", m["message"])
	}
}

func TestDeleteInvestor_NotFound(t *testing.T) {
	e := echo.New()
	repo := &investormock.Repo{
		DeleteFn: func(ctx context.Context, id uint64) error { return domain.ErrNotFound },
	}
	h := NewInvestorHandler(uc.NewUsecase(repo))

	req := httptest.NewRequest(stdhttp.MethodDelete, "/api/investors/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
