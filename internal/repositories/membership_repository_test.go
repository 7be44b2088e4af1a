package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/anonto42/foodgram/backend/internal/models"
	"github.com/anonto42/foodgram/backend/internal/repositories"
	"github.com/anonto42/foodgram/backend/internal/testutil"
	"gorm.io/gorm"
)

func TestPostgresMembershipRepository_AddThenRemoveRestoresAbsence(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := repositories.NewPostgresMembershipRepository(db)

	user := testutil.CreateUser(t, db, "user")
	tag := testutil.CreateTag(t, db, "tag")
	flour := testutil.CreateIngredient(t, db, "Flour", "g")
	recipe := testutil.CreateRecipe(t, db, user, "Bread", []*models.Tag{tag}, testutil.Amounts{flour.ID: 500})

	for _, kind := range []models.MembershipKind{models.MembershipFavorite, models.MembershipCart} {
		t.Run(string(kind), func(t *testing.T) {
			if err := repo.AddMembership(ctx, &models.RecipeMembership{UserID: user.ID, RecipeID: recipe.ID, Kind: kind}); err != nil {
				t.Fatalf("AddMembership() error = %v", err)
			}
			if ok, _ := repo.HasMembership(ctx, user.ID, recipe.ID, kind); !ok {
				t.Fatalf("HasMembership() = false after add")
			}
			if err := repo.RemoveMembership(ctx, user.ID, recipe.ID, kind); err != nil {
				t.Fatalf("RemoveMembership() error = %v", err)
			}
			if ok, _ := repo.HasMembership(ctx, user.ID, recipe.ID, kind); ok {
				t.Errorf("HasMembership() = true after remove")
			}
			if err := repo.RemoveMembership(ctx, user.ID, recipe.ID, kind); !errors.Is(err, gorm.ErrRecordNotFound) {
				t.Errorf("RemoveMembership(absent) error = %v, want ErrRecordNotFound", err)
			}
		})
	}
}

func TestPostgresMembershipRepository_KindsAreIndependent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := repositories.NewPostgresMembershipRepository(db)

	user := testutil.CreateUser(t, db, "user")
	tag := testutil.CreateTag(t, db, "tag")
	flour := testutil.CreateIngredient(t, db, "Flour", "g")
	bread := testutil.CreateRecipe(t, db, user, "Bread", []*models.Tag{tag}, testutil.Amounts{flour.ID: 500})
	bun := testutil.CreateRecipe(t, db, user, "Bun", []*models.Tag{tag}, testutil.Amounts{flour.ID: 100})

	testutil.AddMembership(t, db, user, bread, models.MembershipFavorite)

	favorites, err := repo.GetMemberRecipeIDs(ctx, user.ID, models.MembershipFavorite, []uint{bread.ID, bun.ID})
	if err != nil {
		t.Fatalf("GetMemberRecipeIDs() error = %v", err)
	}
	if !favorites[bread.ID] || favorites[bun.ID] {
		t.Errorf("favorites = %v, want only bread", favorites)
	}

	cart, err := repo.GetMemberRecipeIDs(ctx, user.ID, models.MembershipCart, []uint{bread.ID, bun.ID})
	if err != nil {
		t.Fatalf("GetMemberRecipeIDs() error = %v", err)
	}
	if len(cart) != 0 {
		t.Errorf("cart = %v, want empty", cart)
	}

	err = repo.AddMembership(ctx, &models.RecipeMembership{UserID: user.ID, RecipeID: bread.ID, Kind: models.MembershipFavorite})
	if err == nil {
		t.Errorf("duplicate AddMembership() error = nil, want unique constraint violation")
	}
}
