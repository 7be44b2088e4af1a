package services

import (
	"context"
	"fmt"

	"github.com/anonto42/foodgram/backend/internal/models"
	"github.com/anonto42/foodgram/backend/internal/repositories"
)

// ListRecipesQuery is what the listing endpoint accepts. The two booleans
// are scoped to the requester.
type ListRecipesQuery struct {
	TagIDs    []uint
	AuthorID  uint
	Favorited bool
	InCart    bool
	Limit     int
}

type RecipeService struct {
	recipes     repositories.RecipeRepository
	tags        repositories.TagRepository
	ingredients repositories.IngredientRepository
	memberships repositories.MembershipRepository
	follows     repositories.FollowRepository
}

func NewRecipeService(
	recipes repositories.RecipeRepository,
	tags repositories.TagRepository,
	ingredients repositories.IngredientRepository,
	memberships repositories.MembershipRepository,
	follows repositories.FollowRepository,
) *RecipeService {
	return &RecipeService{
		recipes:     recipes,
		tags:        tags,
		ingredients: ingredients,
		memberships: memberships,
		follows:     follows,
	}
}

// ValidateComposition checks the tag and ingredient lists of a recipe before anything is stored.
func ValidateComposition(tagIDs []uint, ingredients []models.RecipeIngredientInput) error {
	if err := validateTags(tagIDs); err != nil {
		return err
	}
	return validateIngredients(ingredients)
}

func validateTags(tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return invalid("tags", "at least one tag is required")
	}
	seen := make(map[uint]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		if _, dup := seen[id]; dup {
			return invalid("tags", "tag %d is listed more than once", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func validateIngredients(ingredients []models.RecipeIngredientInput) error {
	if len(ingredients) == 0 {
		return invalid("ingredients", "at least one ingredient is required")
	}
	seen := make(map[uint]struct{}, len(ingredients))
	for _, in := range ingredients {
		if in.ID == 0 {
			return invalid("ingredients", "ingredient id is required")
		}
		if in.Amount == nil || *in.Amount < 1 {
			return invalid("ingredients", "amount of ingredient %d must be at least 1", in.ID)
		}
		if *in.Amount > models.MaxIngredientAmount {
			return invalid("ingredients", "amount of ingredient %d must be at most %d", in.ID, models.MaxIngredientAmount)
		}
		if _, dup := seen[in.ID]; dup {
			return invalid("ingredients", "ingredient %d is listed more than once", in.ID)
		}
		seen[in.ID] = struct{}{}
	}
	return nil
}

func validateCookingTime(minutes int) error {
	if minutes < models.MinCookingTime || minutes > models.MaxCookingTime {
		return invalid("cooking_time", "must be between %d and %d minutes", models.MinCookingTime, models.MaxCookingTime)
	}
	return nil
}

// resolveTags fails with ErrNotFound when any referenced tag does not exist.
func (s *RecipeService) resolveTags(ctx context.Context, ids []uint) error {
	found, err := s.tags.GetTagsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}
	if len(found) != len(ids) {
		return fmt.Errorf("tag: %w", ErrNotFound)
	}
	return nil
}

func (s *RecipeService) resolveIngredients(ctx context.Context, inputs []models.RecipeIngredientInput) ([]models.RecipeIngredient, error) {
	ids := make([]uint, len(inputs))
	for i, in := range inputs {
		ids[i] = in.ID
	}
	found, err := s.ingredients.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}
	if len(found) != len(ids) {
		return nil, fmt.Errorf("ingredient: %w", ErrNotFound)
	}
	links := make([]models.RecipeIngredient, len(inputs))
	for i, in := range inputs {
		links[i] = models.RecipeIngredient{IngredientID: in.ID, Amount: *in.Amount}
	}
	return links, nil
}

// Create validates and stores a new recipe owned by author.
func (s *RecipeService) Create(ctx context.Context, author *models.User, req models.CreateRecipeRequest) (*models.RecipeResponse, error) {
	if err := ValidateComposition(req.Tags, req.Ingredients); err != nil {
		return nil, err
	}
	if err := validateCookingTime(req.CookingTime); err != nil {
		return nil, err
	}
	if err := s.resolveTags(ctx, req.Tags); err != nil {
		return nil, err
	}
	links, err := s.resolveIngredients(ctx, req.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		AuthorID:    author.ID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       req.Image,
	}
	if err := s.recipes.CreateRecipe(ctx, recipe, req.Tags, links); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return s.Get(ctx, author, recipe.ID)
}

// Update applies a partial update. Supplied tag or ingredient lists replace the stored ones.
func (s *RecipeService) Update(ctx context.Context, user *models.User, id uint, req models.UpdateRecipeRequest) (*models.RecipeResponse, error) {
	recipe, err := s.editable(ctx, user, id)
	if err != nil {
		return nil, err
	}

	if req.Tags != nil {
		if err := validateTags(req.Tags); err != nil {
			return nil, err
		}
	}
	if req.Ingredients != nil {
		if err := validateIngredients(req.Ingredients); err != nil {
			return nil, err
		}
	}
	if req.CookingTime != nil {
		if err := validateCookingTime(*req.CookingTime); err != nil {
			return nil, err
		}
		recipe.CookingTime = *req.CookingTime
	}
	if req.Name != nil {
		recipe.Name = *req.Name
	}
	if req.Text != nil {
		recipe.Text = *req.Text
	}
	if req.Image != nil {
		recipe.Image = *req.Image
	}

	if req.Tags != nil {
		if err := s.resolveTags(ctx, req.Tags); err != nil {
			return nil, err
		}
	}
	var links []models.RecipeIngredient
	if req.Ingredients != nil {
		if links, err = s.resolveIngredients(ctx, req.Ingredients); err != nil {
			return nil, err
		}
	}

	if err := s.recipes.UpdateRecipe(ctx, recipe, req.Tags, links); err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}
	return s.Get(ctx, user, recipe.ID)
}

func (s *RecipeService) Delete(ctx context.Context, user *models.User, id uint) error {
	if _, err := s.editable(ctx, user, id); err != nil {
		return err
	}
	if err := s.recipes.DeleteRecipe(ctx, id); err != nil {
		return notFound(err, "recipe")
	}
	return nil
}

// editable loads the recipe and checks that user is its author or an admin.
func (s *RecipeService) editable(ctx context.Context, user *models.User, id uint) (*models.Recipe, error) {
	recipe, err := s.recipes.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "recipe")
	}
	if recipe.AuthorID != user.ID && !user.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	return recipe, nil
}

// Get returns one recipe. requester may be nil for anonymous access.
func (s *RecipeService) Get(ctx context.Context, requester *models.User, id uint) (*models.RecipeResponse, error) {
	recipe, err := s.recipes.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "recipe")
	}
	responses, err := s.responses(ctx, requester, []models.Recipe{*recipe})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// List returns recipes matching query. Favorite and cart filters need a
// requester; for anonymous callers they match nothing.
func (s *RecipeService) List(ctx context.Context, requester *models.User, query ListRecipesQuery) ([]models.RecipeResponse, error) {
	if requester == nil && (query.Favorited || query.InCart) {
		return []models.RecipeResponse{}, nil
	}

	filter := models.RecipeFilter{TagIDs: query.TagIDs, AuthorID: query.AuthorID, Limit: query.Limit}
	if query.Favorited {
		filter.FavoritedBy = requester.ID
	}
	if query.InCart {
		filter.InCartOf = requester.ID
	}

	recipes, err := s.recipes.ListRecipes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return s.responses(ctx, requester, recipes)
}

// responses attaches requester flags using one lookup per flag kind.
func (s *RecipeService) responses(ctx context.Context, requester *models.User, recipes []models.Recipe) ([]models.RecipeResponse, error) {
	out := make([]models.RecipeResponse, len(recipes))
	if requester == nil {
		for i := range recipes {
			out[i] = recipes[i].ToResponse(models.RecipeFlags{})
		}
		return out, nil
	}

	recipeIDs := make([]uint, len(recipes))
	authorIDs := make([]uint, len(recipes))
	for i, r := range recipes {
		recipeIDs[i] = r.ID
		authorIDs[i] = r.AuthorID
	}

	favorited, err := s.memberships.GetMemberRecipeIDs(ctx, requester.ID, models.MembershipFavorite, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	inCart, err := s.memberships.GetMemberRecipeIDs(ctx, requester.ID, models.MembershipCart, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load shopping cart: %w", err)
	}
	following, err := s.follows.GetFollowingIDs(ctx, requester.ID, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	for i := range recipes {
		out[i] = recipes[i].ToResponse(models.RecipeFlags{
			AuthorSubscribed: following[recipes[i].AuthorID],
			Favorited:        favorited[recipes[i].ID],
			InCart:           inCart[recipes[i].ID],
		})
	}
	return out, nil
}
