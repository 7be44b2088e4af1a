package services

import (
	"context"
	"fmt"

	"github.com/anonto42/foodgram/backend/internal/models"
	"github.com/anonto42/foodgram/backend/internal/repositories"
)

// MembershipService toggles recipes in a user's favorites or shopping cart.
type MembershipService struct {
	recipes     repositories.RecipeRepository
	memberships repositories.MembershipRepository
}

func NewMembershipService(recipes repositories.RecipeRepository, memberships repositories.MembershipRepository) *MembershipService {
	return &MembershipService{recipes: recipes, memberships: memberships}
}

// Add puts the recipe into the set named by kind. Adding twice is a validation error.
func (s *MembershipService) Add(ctx context.Context, user *models.User, recipeID uint, kind models.MembershipKind) (*models.RecipeMinified, error) {
	if !kind.Valid() {
		return nil, invalid("kind", "unknown membership kind %q", string(kind))
	}
	recipe, err := s.recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, notFound(err, "recipe")
	}

	exists, err := s.memberships.HasMembership(ctx, user.ID, recipeID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", kind.Label(), err)
	}
	if exists {
		return nil, invalid("errors", "recipe is already in %s", kind.Label())
	}

	err = s.memberships.AddMembership(ctx, &models.RecipeMembership{UserID: user.ID, RecipeID: recipeID, Kind: kind})
	if isDuplicate(err) {
		return nil, invalid("errors", "recipe is already in %s", kind.Label())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add recipe to %s: %w", kind.Label(), err)
	}

	minified := recipe.ToMinified()
	return &minified, nil
}

// Remove takes the recipe out of the set. Removing an absent entry is ErrNotFound.
func (s *MembershipService) Remove(ctx context.Context, user *models.User, recipeID uint, kind models.MembershipKind) error {
	if !kind.Valid() {
		return invalid("kind", "unknown membership kind %q", string(kind))
	}
	if _, err := s.recipes.GetRecipeByID(ctx, recipeID); err != nil {
		return notFound(err, "recipe")
	}
	if err := s.memberships.RemoveMembership(ctx, user.ID, recipeID, kind); err != nil {
		return notFound(err, "recipe in "+kind.Label())
	}
	return nil
}
