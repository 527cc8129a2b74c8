package service

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/promokit/promokit/internal/api/dto"
	"github.com/promokit/promokit/internal/domain/ruleset"
	"github.com/promokit/promokit/internal/engine"
	"github.com/promokit/promokit/internal/logger"
	"github.com/promokit/promokit/internal/types"
)

// DiscountService hosts the evaluation engine behind the service boundary
type DiscountService interface {
	// EvaluateCart runs both pipelines over one invocation and returns the
	// accumulated operations: order, then product, then shipping.
	EvaluateCart(ctx context.Context, req dto.EvaluateCartRequest) (*dto.EvaluateCartResponse, error)

	// ValidateRuleSet reports configuration problems in a rule-set record.
	// Authoring-time tooling; the evaluation path stays permissive.
	ValidateRuleSet(ctx context.Context, req dto.ValidateRuleSetRequest) (*dto.ValidateRuleSetResponse, error)
}

type discountService struct {
	engine *engine.Engine
	logger *logger.Logger
}

// NewDiscountService creates a new discount service
func NewDiscountService(eng *engine.Engine, log *logger.Logger) DiscountService {
	return &discountService{
		engine: eng,
		logger: log,
	}
}

func (s *discountService) EvaluateCart(ctx context.Context, req dto.EvaluateCartRequest) (*dto.EvaluateCartResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	evaluationID := ulid.Make().String()
	evalCtx := req.ToEvaluationContext()

	s.logger.Debugw("evaluating cart discounts",
		"evaluation_id", evaluationID,
		"line_count", len(req.Cart.Lines),
		"discount_classes", evalCtx.DiscountClasses,
		"code_supplied", evalCtx.DiscountCode != "")

	operations := []types.Operation{}
	cartResult := s.engine.EvaluateCartDiscounts(&req.Cart, req.Shop.RuleSet, evalCtx)
	operations = append(operations, cartResult.Operations...)

	deliveryResult := s.engine.EvaluateDeliveryDiscounts(&req.Cart, req.Shop.RuleSet, evalCtx)
	operations = append(operations, deliveryResult.Operations...)

	s.logger.Infow("cart discounts evaluated",
		"evaluation_id", evaluationID,
		"operation_count", len(operations))

	return &dto.EvaluateCartResponse{Operations: operations}, nil
}

func (s *discountService) ValidateRuleSet(ctx context.Context, req dto.ValidateRuleSetRequest) (*dto.ValidateRuleSetResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rules, err := ruleset.ParseStrict(req.RuleSet)
	if err != nil {
		return nil, err
	}

	findings := ruleset.Validate(rules)

	s.logger.Infow("rule set validated",
		"rule_count", len(rules),
		"finding_count", len(findings))

	return &dto.ValidateRuleSetResponse{
		Valid:     len(findings) == 0,
		RuleCount: len(rules),
		Findings:  findings,
	}, nil
}
