package repositories

import (
	"github.com/anonto42/foodgram/backend/internal/models"
	"gorm.io/gorm"
)

// AutoMigrate registers the recipe/tag join table and migrates every relational model.
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Recipe{}, "Tags", &models.RecipeTag{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeTag{},
		&models.RecipeIngredient{},
		&models.RecipeMembership{},
		&models.Follow{},
	)
}
