package models

import (
	"fmt"
	"time"
)

// MembershipKind distinguishes the per-user recipe sets.
type MembershipKind string

const (
	MembershipFavorite MembershipKind = "favorite"
	MembershipCart     MembershipKind = "cart"
)

func (k MembershipKind) Valid() bool {
	return k == MembershipFavorite || k == MembershipCart
}

// Label is the human name used in messages.
func (k MembershipKind) Label() string {
	switch k {
	case MembershipFavorite:
		return "favorites"
	case MembershipCart:
		return "shopping cart"
	default:
		return fmt.Sprintf("membership(%s)", string(k))
	}
}

// RecipeMembership places a recipe in one of a user's sets.
type RecipeMembership struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"index;uniqueIndex:idx_user_recipe_kind"`
	RecipeID  uint           `json:"recipe_id" gorm:"index;uniqueIndex:idx_user_recipe_kind"`
	Kind      MembershipKind `json:"kind" gorm:"size:16;uniqueIndex:idx_user_recipe_kind"`
	CreatedAt time.Time      `json:"created_at"`
}
