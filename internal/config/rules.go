package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/errors"
)

// RulesConfig holds rule variations applied to every board.
type RulesConfig struct {
	// Promotions lists the kinds a pawn may promote to, in generation order
	Promotions []chess.Kind
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		Promotions: slices.Clone(chess.DefaultPromotions),
	}
}

// Validate checks that the promotion set is usable.
func (r *RulesConfig) Validate() error {
	if len(r.Promotions) == 0 {
		return fmt.Errorf("empty promotion set: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Apply configures b with these rules.
func (r *RulesConfig) Apply(b *chess.Board) error {
	if err := b.SetPromotionKinds(r.Promotions...); err != nil {
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}

// ParsePromotions parses a promotion set such as "qn" or "qrbn".
// The keyword "all" selects every kind.
func ParsePromotions(text string) ([]chess.Kind, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "all" {
		return slices.Clone(chess.AllPromotions), nil
	}
	if text == "" {
		return nil, fmt.Errorf("empty promotion set: %w", errors.ErrInvalidConfig)
	}
	var kinds []chess.Kind
	for i := 0; i < len(text); i++ {
		k, ok := chess.KindFromLetter(text[i])
		if !ok || k == chess.PawnKind || k == chess.KingKind {
			return nil, fmt.Errorf("invalid promotion piece %q: %w", text[i], errors.ErrInvalidConfig)
		}
		if slices.Contains(kinds, k) {
			return nil, fmt.Errorf("duplicate promotion piece %q: %w", text[i], errors.ErrInvalidConfig)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
