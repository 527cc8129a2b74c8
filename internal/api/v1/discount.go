package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promokit/promokit/internal/api/dto"
	ierr "github.com/promokit/promokit/internal/errors"
	"github.com/promokit/promokit/internal/logger"
	"github.com/promokit/promokit/internal/service"
)

type DiscountHandler struct {
	discountService service.DiscountService
	logger          *logger.Logger
}

func NewDiscountHandler(discountService service.DiscountService, logger *logger.Logger) *DiscountHandler {
	return &DiscountHandler{
		discountService: discountService,
		logger:          logger,
	}
}

// @Summary Evaluate cart discounts
// @Description Evaluates the shop's discount rules against a cart snapshot and returns the discount operations to apply
// @Tags Discounts
// @Accept json
// @Produce json
// @Param request body dto.EvaluateCartRequest true "Evaluation request"
// @Success 200 {object} dto.EvaluateCartResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /discounts/evaluate [post]
func (h *DiscountHandler) EvaluateCart(c *gin.Context) {
	var req dto.EvaluateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.discountService.EvaluateCart(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Validate a rule set record
// @Description Checks a merchant-authored rule set record for configuration problems
// @Tags Discounts
// @Accept json
// @Produce json
// @Param request body dto.ValidateRuleSetRequest true "Validation request"
// @Success 200 {object} dto.ValidateRuleSetResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /rulesets/validate [post]
func (h *DiscountHandler) ValidateRuleSet(c *gin.Context) {
	var req dto.ValidateRuleSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.discountService.ValidateRuleSet(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
