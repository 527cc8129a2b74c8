// Package ruleset handles the merchant's rule-set configuration record:
// the JSON array of discount rules attached to the shop. Parsing is
// deliberately permissive (the evaluation contract is total); authoring
// mistakes are surfaced separately through Validate.
package ruleset

import (
	"encoding/json"
	"strings"

	ierr "github.com/promokit/promokit/internal/errors"
	"github.com/promokit/promokit/internal/logger"
	"github.com/promokit/promokit/internal/types"
)

// Parse decodes a rule-set record into discount rules. Malformed or absent
// JSON yields an empty rule set, never an error: a broken configuration
// must degrade to "no discounts", not break checkout. Unknown fields are
// ignored.
func Parse(raw string, log *logger.Logger) []types.DiscountRule {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []types.DiscountRule{}
	}

	var rules []types.DiscountRule
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		log.Warnw("discarding malformed rule set record", "error", err)
		return []types.DiscountRule{}
	}
	if rules == nil {
		return []types.DiscountRule{}
	}

	log.Debugw("parsed rule set record", "rule_count", len(rules))
	return rules
}

// ParseStrict decodes a rule-set record and reports malformed JSON instead
// of swallowing it. Used by authoring-time validation, where the merchant
// wants to hear about the breakage the runtime path hides.
func ParseStrict(raw string) ([]types.DiscountRule, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []types.DiscountRule{}, nil
	}

	var rules []types.DiscountRule
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Rule set record is not a valid JSON array of discount rules").
			Mark(ierr.ErrValidation)
	}
	if rules == nil {
		return []types.DiscountRule{}, nil
	}
	return rules, nil
}
