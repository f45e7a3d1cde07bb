package http

import (
	"errors"
	"net/http"
	"strconv"

	investorDomain "investiq/internal/domain/investor"
	"investiq/internal/usecase/investor"

	"github.com/labstack/echo/v4"
)

type InvestorHandler struct{ uc *investor.Usecase }

func NewInvestorHandler(uc *investor.Usecase) *InvestorHandler {
	return &InvestorHandler{uc: uc}
}

// Map domain errors → HTTP codes
func mapInvestorErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, investorDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Investor not found"})
	case errors.Is(err, investorDomain.ErrDuplicateIDNumber):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "id_number already exists"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func (h *InvestorHandler) bindUpsert(c echo.Context) (*investor.UpsertInvestorInput, error) {
	var req investor.UpsertInvestorInput
	if err := c.Bind(&req); err != nil {
		return nil, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return nil, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return &req, nil
}

func (h *InvestorHandler) Create(c echo.Context) error {
	req, err := h.bindUpsert(c)
	if req == nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), *req)
	if err != nil {
		return mapInvestorErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InvestorHandler) List(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return mapInvestorErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *InvestorHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Investor not found"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return mapInvestorErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InvestorHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Investor not found"})
	}
	req, err := h.bindUpsert(c)
	if req == nil {
		return err
	}
	dto, err := h.uc.Update(c.Request().Context(), id, *req)
	if err != nil {
		return mapInvestorErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InvestorHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Investor not found"})
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return mapInvestorErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Investor deleted successfully"})
}
