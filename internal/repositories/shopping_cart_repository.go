//go:generate mockgen -destination=mock/shopping_list.go -package=mock . ShoppingCartRepository,ShoppingListArchiveRepository

package repositories

import (
	"context"

	"github.com/anonto42/foodgram/backend/internal/models"
	"gorm.io/gorm"
)

// ShoppingCartRepository aggregates the ingredients of the recipes in a user's cart.
type ShoppingCartRepository interface {
	AggregateCart(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
}

type PostgresShoppingCartRepository struct {
	db *gorm.DB
}

func NewPostgresShoppingCartRepository(db *gorm.DB) *PostgresShoppingCartRepository {
	return &PostgresShoppingCartRepository{db: db}
}

// AggregateCart sums amounts in a single grouped query. Rows are grouped by
// ingredient (name, unit) rather than ingredient id, so two ingredient records
// sharing a name and unit collapse into one line. Ordered by name, then unit.
func (r *PostgresShoppingCartRepository) AggregateCart(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	cart := r.db.Model(&models.RecipeMembership{}).
		Select("recipe_id").
		Where("user_id = ? AND kind = ?", userID, models.MembershipCart)

	items := []models.ShoppingListItem{}
	err := r.db.WithContext(ctx).
		Table("recipe_ingredients").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id IN (?)", cart).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name ASC").
		Order("ingredients.measurement_unit ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
