package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fincalc-service/internal/api/dto"
	"github.com/spec-kit/fincalc-service/internal/service"
	"github.com/spec-kit/fincalc-service/internal/validation"
	apperrors "github.com/spec-kit/fincalc-service/pkg/util/errorutil"
)

// CalculatorHandler exposes the financial calculation endpoints. All routes
// sit behind the auth middleware.
type CalculatorHandler struct {
	calculator *service.CalculatorService
}

// NewCalculatorHandler constructs handler.
func NewCalculatorHandler(calculatorService *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{calculator: calculatorService}
}

// SimpleInterest handles POST /calculator/simple-interest.
func (h *CalculatorHandler) SimpleInterest(c *fiber.Ctx) error {
	var req dto.SimpleInterestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid JSON data")
	}
	if msgs := validation.SimpleInterestInput(req.Principal, req.Rate, req.Time); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	response := h.calculator.SimpleInterest(c.UserContext(), *req.Principal, *req.Rate, *req.Time)
	return c.JSON(response)
}

// CompoundInterest handles POST /calculator/compound-interest.
func (h *CalculatorHandler) CompoundInterest(c *fiber.Ctx) error {
	var req dto.CompoundInterestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid JSON data")
	}
	if msgs := validation.CompoundInterestInput(req.Principal, req.Rate, req.Time, req.CompoundingFrequency); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	frequency := service.DefaultCompoundingFrequency
	if req.CompoundingFrequency != nil {
		frequency = *req.CompoundingFrequency
	}

	response := h.calculator.CompoundInterest(c.UserContext(), *req.Principal, *req.Rate, *req.Time, frequency)
	return c.JSON(response)
}

// Installment handles POST /calculator/installment.
func (h *CalculatorHandler) Installment(c *fiber.Ctx) error {
	var req dto.InstallmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid JSON data")
	}
	if msgs := validation.InstallmentInput(req.Principal, req.Rate, req.Installments); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	response := h.calculator.Installment(c.UserContext(), *req.Principal, *req.Rate, *req.Installments)
	return c.JSON(response)
}
