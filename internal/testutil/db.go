// Package testutil builds in-memory databases and fixtures for tests.
package testutil

import (
	"context"
	"testing"

	"github.com/anonto42/foodgram/backend/internal/models"
	"github.com/anonto42/foodgram/backend/internal/repositories"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// NewDB opens a migrated SQLite in-memory database. Every call gets a fresh database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// one connection, otherwise each pooled connection sees its own empty :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := repositories.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Email:     username + "@example.com",
		Username:  username,
		FirstName: username,
		LastName:  "Tester",
		Role:      models.RoleUser,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func CreateTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name, Color: "#E26C2D", Slug: name}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("failed to create tag %s: %v", name, err)
	}
	return tag
}

func CreateIngredient(t *testing.T, db *gorm.DB, name, unit string) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{Name: name, MeasurementUnit: unit}
	if err := db.Create(ingredient).Error; err != nil {
		t.Fatalf("failed to create ingredient %s: %v", name, err)
	}
	return ingredient
}

// Amounts maps ingredient IDs to recipe amounts.
type Amounts map[uint]int

// CreateRecipe stores a recipe by author with the given tags and ingredient amounts.
func CreateRecipe(t *testing.T, db *gorm.DB, author *models.User, name string, tags []*models.Tag, amounts Amounts) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		AuthorID:    author.ID,
		Name:        name,
		Text:        name + " instructions",
		CookingTime: 30,
	}
	tagIDs := make([]uint, len(tags))
	for i, tag := range tags {
		tagIDs[i] = tag.ID
	}
	links := make([]models.RecipeIngredient, 0, len(amounts))
	for id, amount := range amounts {
		links = append(links, models.RecipeIngredient{IngredientID: id, Amount: amount})
	}
	repo := repositories.NewPostgresRecipeRepository(db)
	if err := repo.CreateRecipe(context.Background(), recipe, tagIDs, links); err != nil {
		t.Fatalf("failed to create recipe %s: %v", name, err)
	}
	return recipe
}

// AddMembership puts recipe into user's favorites or cart.
func AddMembership(t *testing.T, db *gorm.DB, user *models.User, recipe *models.Recipe, kind models.MembershipKind) {
	t.Helper()
	m := &models.RecipeMembership{UserID: user.ID, RecipeID: recipe.ID, Kind: kind}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("failed to add recipe %d to %s: %v", recipe.ID, kind, err)
	}
}
