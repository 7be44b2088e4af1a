package services

import (
	"context"
	"errors"
	"testing"

	"github.com/anonto42/foodgram/backend/internal/models"
	"github.com/anonto42/foodgram/backend/internal/testutil"
)

func TestValidateComposition(t *testing.T) {
	one := []models.RecipeIngredientInput{{ID: 1, Amount: intPtr(1)}}

	tests := []struct {
		name        string
		tags        []uint
		ingredients []models.RecipeIngredientInput
		wantField   string
	}{
		{name: "single tag and ingredient", tags: []uint{1}, ingredients: one},
		{name: "no tags", tags: nil, ingredients: one, wantField: "tags"},
		{name: "empty tags", tags: []uint{}, ingredients: one, wantField: "tags"},
		{name: "duplicate tags", tags: []uint{1, 2, 1}, ingredients: one, wantField: "tags"},
		{name: "no ingredients", tags: []uint{1}, ingredients: nil, wantField: "ingredients"},
		{name: "zero amount", tags: []uint{1}, ingredients: []models.RecipeIngredientInput{{ID: 1, Amount: intPtr(0)}}, wantField: "ingredients"},
		{name: "null amount", tags: []uint{1}, ingredients: []models.RecipeIngredientInput{{ID: 1}}, wantField: "ingredients"},
		{name: "negative amount", tags: []uint{1}, ingredients: []models.RecipeIngredientInput{{ID: 1, Amount: intPtr(-3)}}, wantField: "ingredients"},
		{name: "maximum amount", tags: []uint{1}, ingredients: []models.RecipeIngredientInput{{ID: 1, Amount: intPtr(models.MaxIngredientAmount)}}},
		{name: "amount above maximum", tags: []uint{1}, ingredients: []models.RecipeIngredientInput{{ID: 1, Amount: intPtr(models.MaxIngredientAmount + 1)}}, wantField: "ingredients"},
		{name: "missing ingredient id", tags: []uint{1}, ingredients: []models.RecipeIngredientInput{{Amount: intPtr(2)}}, wantField: "ingredients"},
		{
			name: "duplicate ingredients",
			tags: []uint{1},
			ingredients: []models.RecipeIngredientInput{
				{ID: 1, Amount: intPtr(5)},
				{ID: 1, Amount: intPtr(7)},
			},
			wantField: "ingredients",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComposition(tt.tags, tt.ingredients)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateComposition() error = %v, want nil", err)
				}
				return
			}
			assertValidation(t, err, tt.wantField)
		})
	}
}

func TestRecipeService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := testutil.CreateUser(t, env.db, "chef")
	tag := testutil.CreateTag(t, env.db, "lunch")
	flour := testutil.CreateIngredient(t, env.db, "Flour", "g")

	base := func() models.CreateRecipeRequest {
		return models.CreateRecipeRequest{
			Tags:        []uint{tag.ID},
			Ingredients: []models.RecipeIngredientInput{{ID: flour.ID, Amount: intPtr(1)}},
			Name:        "Flatbread",
			Text:        "Mix and bake.",
			CookingTime: 20,
		}
	}

	t.Run("amount of one succeeds", func(t *testing.T) {
		got, err := env.recipes.Create(ctx, author, base())
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got.Author.ID != author.ID || len(got.Tags) != 1 || len(got.Ingredients) != 1 {
			t.Fatalf("Create() = %+v", got)
		}
		if ing := got.Ingredients[0]; ing.Name != "Flour" || ing.MeasurementUnit != "g" || ing.Amount != 1 {
			t.Errorf("ingredient = %+v, want Flour (g) x1", ing)
		}
	})

	failures := []struct {
		name   string
		mutate func(*models.CreateRecipeRequest)
		check  func(*testing.T, error)
	}{
		{
			name:   "zero tags",
			mutate: func(r *models.CreateRecipeRequest) { r.Tags = nil },
			check:  func(t *testing.T, err error) { assertValidation(t, err, "tags") },
		},
		{
			name:   "duplicate tags",
			mutate: func(r *models.CreateRecipeRequest) { r.Tags = []uint{tag.ID, tag.ID} },
			check:  func(t *testing.T, err error) { assertValidation(t, err, "tags") },
		},
		{
			name:   "zero amount",
			mutate: func(r *models.CreateRecipeRequest) { r.Ingredients[0].Amount = intPtr(0) },
			check:  func(t *testing.T, err error) { assertValidation(t, err, "ingredients") },
		},
		{
			name:   "null amount",
			mutate: func(r *models.CreateRecipeRequest) { r.Ingredients[0].Amount = nil },
			check:  func(t *testing.T, err error) { assertValidation(t, err, "ingredients") },
		},
		{
			name:   "amount above maximum",
			mutate: func(r *models.CreateRecipeRequest) { r.Ingredients[0].Amount = intPtr(32768) },
			check:  func(t *testing.T, err error) { assertValidation(t, err, "ingredients") },
		},
		{
			name:   "cooking time out of range",
			mutate: func(r *models.CreateRecipeRequest) { r.CookingTime = models.MaxCookingTime + 1 },
			check:  func(t *testing.T, err error) { assertValidation(t, err, "cooking_time") },
		},
		{
			name:   "unknown ingredient",
			mutate: func(r *models.CreateRecipeRequest) { r.Ingredients[0].ID = 999 },
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrNotFound) {
					t.Errorf("error = %v, want ErrNotFound", err)
				}
			},
		},
		{
			name:   "unknown tag",
			mutate: func(r *models.CreateRecipeRequest) { r.Tags = []uint{tag.ID, 999} },
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrNotFound) {
					t.Errorf("error = %v, want ErrNotFound", err)
				}
			},
		},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			var before int64
			env.db.Model(&models.Recipe{}).Count(&before)

			req := base()
			tt.mutate(&req)
			_, err := env.recipes.Create(ctx, author, req)
			tt.check(t, err)

			var after int64
			env.db.Model(&models.Recipe{}).Count(&after)
			if after != before {
				t.Errorf("recipe count changed from %d to %d on failure", before, after)
			}
		})
	}
}

func TestRecipeService_UpdatePermissionsAndReplacement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := testutil.CreateUser(t, env.db, "author")
	stranger := testutil.CreateUser(t, env.db, "stranger")
	admin := testutil.CreateUser(t, env.db, "admin")
	admin.Role = models.RoleAdmin

	tag := testutil.CreateTag(t, env.db, "soup")
	water := testutil.CreateIngredient(t, env.db, "Water", "ml")
	onion := testutil.CreateIngredient(t, env.db, "Onion", "pcs")
	recipe := testutil.CreateRecipe(t, env.db, author, "Broth", []*models.Tag{tag}, testutil.Amounts{water.ID: 500})

	newName := "Onion soup"
	_, err := env.recipes.Update(ctx, stranger, recipe.ID, models.UpdateRecipeRequest{Name: &newName})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("Update() by stranger error = %v, want ErrPermissionDenied", err)
	}

	got, err := env.recipes.Update(ctx, author, recipe.ID, models.UpdateRecipeRequest{
		Name:        &newName,
		Ingredients: []models.RecipeIngredientInput{{ID: onion.ID, Amount: intPtr(3)}},
	})
	if err != nil {
		t.Fatalf("Update() by author error = %v", err)
	}
	if got.Name != newName || len(got.Ingredients) != 1 || got.Ingredients[0].ID != onion.ID {
		t.Errorf("Update() = %+v, want renamed recipe with only onion", got)
	}
	if len(got.Tags) != 1 {
		t.Errorf("Tags = %+v, want unchanged", got.Tags)
	}

	_, err = env.recipes.Update(ctx, author, recipe.ID, models.UpdateRecipeRequest{Tags: []uint{}})
	assertValidation(t, err, "tags")

	if _, err := env.recipes.Update(ctx, admin, recipe.ID, models.UpdateRecipeRequest{CookingTime: intPtr(45)}); err != nil {
		t.Errorf("Update() by admin error = %v", err)
	}

	if _, err := env.recipes.Update(ctx, author, recipe.ID+100, models.UpdateRecipeRequest{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrNotFound", err)
	}
}

func TestRecipeService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := testutil.CreateUser(t, env.db, "author")
	stranger := testutil.CreateUser(t, env.db, "stranger")
	tag := testutil.CreateTag(t, env.db, "snack")
	nuts := testutil.CreateIngredient(t, env.db, "Nuts", "g")
	recipe := testutil.CreateRecipe(t, env.db, author, "Nuts", []*models.Tag{tag}, testutil.Amounts{nuts.ID: 50})

	if err := env.recipes.Delete(ctx, stranger, recipe.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("Delete() by stranger error = %v, want ErrPermissionDenied", err)
	}
	if err := env.recipes.Delete(ctx, author, recipe.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := env.recipes.Get(ctx, nil, recipe.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}

func TestRecipeService_ListFlagsAndFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := testutil.CreateUser(t, env.db, "author")
	reader := testutil.CreateUser(t, env.db, "reader")
	tag := testutil.CreateTag(t, env.db, "dessert")
	sugar := testutil.CreateIngredient(t, env.db, "Sugar", "g")

	cake := testutil.CreateRecipe(t, env.db, author, "Cake", []*models.Tag{tag}, testutil.Amounts{sugar.ID: 200})
	testutil.CreateRecipe(t, env.db, author, "Pie", []*models.Tag{tag}, testutil.Amounts{sugar.ID: 100})
	testutil.AddMembership(t, env.db, reader, cake, models.MembershipFavorite)
	if _, err := env.follows.Follow(ctx, reader, author.ID, 0); err != nil {
		t.Fatalf("Follow() error = %v", err)
	}

	all, err := env.recipes.List(ctx, reader, ListRecipesQuery{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List() returned %d recipes, want 2", len(all))
	}
	if !all[0].IsFavorited || all[1].IsFavorited {
		t.Errorf("IsFavorited = %v, %v; want true, false", all[0].IsFavorited, all[1].IsFavorited)
	}
	if !all[0].Author.IsSubscribed {
		t.Errorf("Author.IsSubscribed = false, want true")
	}

	favorites, err := env.recipes.List(ctx, reader, ListRecipesQuery{Favorited: true})
	if err != nil {
		t.Fatalf("List(favorited) error = %v", err)
	}
	if len(favorites) != 1 || favorites[0].Name != "Cake" {
		t.Errorf("List(favorited) = %+v, want Cake", favorites)
	}

	anonymous, err := env.recipes.List(ctx, nil, ListRecipesQuery{InCart: true})
	if err != nil || len(anonymous) != 0 {
		t.Errorf("anonymous List(in cart) = %+v, %v; want empty", anonymous, err)
	}

	public, err := env.recipes.List(ctx, nil, ListRecipesQuery{})
	if err != nil {
		t.Fatalf("anonymous List() error = %v", err)
	}
	for _, r := range public {
		if r.IsFavorited || r.IsInShoppingCart || r.Author.IsSubscribed {
			t.Errorf("anonymous response carries requester flags: %+v", r)
		}
	}
}
