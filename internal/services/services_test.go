package services

import (
	"errors"
	"testing"

	"github.com/anonto42/foodgram/backend/internal/repositories"
	"github.com/anonto42/foodgram/backend/internal/testutil"
	"gorm.io/gorm"
)

type testEnv struct {
	db          *gorm.DB
	recipes     *RecipeService
	memberships *MembershipService
	follows     *FollowService
	users       *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)

	userRepo := repositories.NewPostgresUserRepository(db)
	recipeRepo := repositories.NewPostgresRecipeRepository(db)
	membershipRepo := repositories.NewPostgresMembershipRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)

	return &testEnv{
		db: db,
		recipes: NewRecipeService(recipeRepo,
			repositories.NewPostgresTagRepository(db),
			repositories.NewPostgresIngredientRepository(db),
			membershipRepo, followRepo),
		memberships: NewMembershipService(recipeRepo, membershipRepo),
		follows:     NewFollowService(userRepo, followRepo, recipeRepo),
		users:       NewUserService(userRepo, followRepo),
	}
}

func intPtr(v int) *int { return &v }

func assertValidation(t *testing.T, err error, field string) {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError on %q", err, field)
	}
	if verr.Field != field {
		t.Errorf("ValidationError.Field = %q, want %q", verr.Field, field)
	}
}
