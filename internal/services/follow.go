package services

import (
	"context"
	"fmt"

	"github.com/anonto42/foodgram/backend/internal/models"
	"github.com/anonto42/foodgram/backend/internal/repositories"
)

type FollowService struct {
	users   repositories.UserRepository
	follows repositories.FollowRepository
	recipes repositories.RecipeRepository
}

func NewFollowService(users repositories.UserRepository, follows repositories.FollowRepository, recipes repositories.RecipeRepository) *FollowService {
	return &FollowService{users: users, follows: follows, recipes: recipes}
}

// Follow subscribes follower to the author. recipesLimit caps the recipe
// preview in the result; zero or less means no cap.
func (s *FollowService) Follow(ctx context.Context, follower *models.User, authorID uint, recipesLimit int) (*models.AuthorWithRecipes, error) {
	if follower.ID == authorID {
		return nil, invalid("errors", "you cannot subscribe to yourself")
	}
	author, err := s.users.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, notFound(err, "author")
	}

	following, err := s.follows.IsFollowing(ctx, follower.ID, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}
	if following {
		return nil, invalid("errors", "you are already subscribed to %s", author.Username)
	}

	err = s.follows.CreateFollow(ctx, &models.Follow{FollowerID: follower.ID, FollowingID: authorID})
	if isDuplicate(err) {
		return nil, invalid("errors", "you are already subscribed to %s", author.Username)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	counts, err := s.recipes.CountRecipesByAuthors(ctx, []uint{author.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to count recipes of %s: %w", author.Username, err)
	}
	return s.withRecipes(ctx, author, recipesLimit, counts[author.ID])
}

func (s *FollowService) Unfollow(ctx context.Context, follower *models.User, authorID uint) error {
	if _, err := s.users.GetUserByID(ctx, authorID); err != nil {
		return notFound(err, "author")
	}
	if err := s.follows.DeleteFollow(ctx, follower.ID, authorID); err != nil {
		return notFound(err, "subscription")
	}
	return nil
}

// Subscriptions lists every author follower is subscribed to, with their recipes.
func (s *FollowService) Subscriptions(ctx context.Context, follower *models.User, recipesLimit int) ([]models.AuthorWithRecipes, error) {
	authors, err := s.follows.GetFollowing(ctx, follower.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}
	ids := make([]uint, len(authors))
	for i := range authors {
		ids[i] = authors[i].ID
	}
	counts, err := s.recipes.CountRecipesByAuthors(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count recipes: %w", err)
	}

	out := make([]models.AuthorWithRecipes, 0, len(authors))
	for i := range authors {
		entry, err := s.withRecipes(ctx, &authors[i], recipesLimit, counts[authors[i].ID])
		if err != nil {
			return nil, err
		}
		out = append(out, *entry)
	}
	return out, nil
}

func (s *FollowService) withRecipes(ctx context.Context, author *models.User, recipesLimit int, count int64) (*models.AuthorWithRecipes, error) {
	filter := models.RecipeFilter{AuthorID: author.ID}
	if recipesLimit > 0 {
		filter.Limit = recipesLimit
	}
	recipes, err := s.recipes.ListRecipes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes of %s: %w", author.Username, err)
	}

	minified := make([]models.RecipeMinified, len(recipes))
	for i := range recipes {
		minified[i] = recipes[i].ToMinified()
	}
	return &models.AuthorWithRecipes{
		UserResponse: author.ToResponse(true),
		Recipes:      minified,
		RecipesCount: count,
	}, nil
}
