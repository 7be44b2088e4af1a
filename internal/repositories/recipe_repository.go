package repositories

import (
	"context"

	"github.com/anonto42/foodgram/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeRepository defines the interface for recipe data operations
type RecipeRepository interface {
	CreateRecipe(ctx context.Context, recipe *models.Recipe, tagIDs []uint, ingredients []models.RecipeIngredient) error
	UpdateRecipe(ctx context.Context, recipe *models.Recipe, tagIDs []uint, ingredients []models.RecipeIngredient) error
	DeleteRecipe(ctx context.Context, id uint) error
	GetRecipeByID(ctx context.Context, id uint) (*models.Recipe, error)
	ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)
	CountRecipesByAuthors(ctx context.Context, authorIDs []uint) (map[uint]int64, error)
}

// PostgresRecipeRepository implements RecipeRepository for PostgreSQL
type PostgresRecipeRepository struct {
	db *gorm.DB
}

func NewPostgresRecipeRepository(db *gorm.DB) *PostgresRecipeRepository {
	return &PostgresRecipeRepository{db: db}
}

// CreateRecipe inserts the recipe with its tag and ingredient links in one transaction.
func (r *PostgresRecipeRepository) CreateRecipe(ctx context.Context, recipe *models.Recipe, tagIDs []uint, ingredients []models.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		if err := replaceTags(tx, recipe.ID, tagIDs); err != nil {
			return err
		}
		return replaceIngredients(tx, recipe.ID, ingredients)
	})
}

// UpdateRecipe saves scalar fields. A nil tagIDs or ingredients slice leaves
// that relation untouched; otherwise its rows are deleted and recreated.
func (r *PostgresRecipeRepository) UpdateRecipe(ctx context.Context, recipe *models.Recipe, tagIDs []uint, ingredients []models.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(recipe).
			Select("name", "text", "cooking_time", "image", "updated_at").
			Omit(clause.Associations).
			Updates(recipe).Error
		if err != nil {
			return err
		}
		if tagIDs != nil {
			if err := replaceTags(tx, recipe.ID, tagIDs); err != nil {
				return err
			}
		}
		if ingredients != nil {
			if err := replaceIngredients(tx, recipe.ID, ingredients); err != nil {
				return err
			}
		}
		return nil
	})
}

func replaceTags(tx *gorm.DB, recipeID uint, tagIDs []uint) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	links := make([]models.RecipeTag, len(tagIDs))
	for i, id := range tagIDs {
		links[i] = models.RecipeTag{RecipeID: recipeID, TagID: id}
	}
	return tx.Create(&links).Error
}

func replaceIngredients(tx *gorm.DB, recipeID uint, ingredients []models.RecipeIngredient) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{}).Error; err != nil {
		return err
	}
	if len(ingredients) == 0 {
		return nil
	}
	links := make([]models.RecipeIngredient, len(ingredients))
	for i, in := range ingredients {
		links[i] = models.RecipeIngredient{RecipeID: recipeID, IngredientID: in.IngredientID, Amount: in.Amount}
	}
	return tx.Omit(clause.Associations).Create(&links).Error
}

// DeleteRecipe removes the recipe together with its links and memberships.
func (r *PostgresRecipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{&models.RecipeTag{}, &models.RecipeIngredient{}, &models.RecipeMembership{}} {
			if err := tx.Where("recipe_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&models.Recipe{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *PostgresRecipeRepository) GetRecipeByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.withDetails(r.db.WithContext(ctx)).First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes applies the filter; multiple tag IDs match recipes carrying any of them.
func (r *PostgresRecipeRepository) ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	q := r.db.WithContext(ctx).Model(&models.Recipe{})

	if len(filter.TagIDs) > 0 {
		q = q.Where("recipes.id IN (?)",
			r.db.Model(&models.RecipeTag{}).Select("recipe_id").Where("tag_id IN ?", filter.TagIDs))
	}
	if filter.AuthorID != 0 {
		q = q.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if filter.FavoritedBy != 0 {
		q = q.Where("recipes.id IN (?)", r.memberRecipeIDs(filter.FavoritedBy, models.MembershipFavorite))
	}
	if filter.InCartOf != 0 {
		q = q.Where("recipes.id IN (?)", r.memberRecipeIDs(filter.InCartOf, models.MembershipCart))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var recipes []models.Recipe
	err := r.withDetails(q).Order("recipes.name ASC").Order("recipes.id ASC").Find(&recipes).Error
	return recipes, err
}

// CountRecipesByAuthors counts recipes per author in a single grouped query.
// Authors without recipes are absent from the result.
func (r *PostgresRecipeRepository) CountRecipesByAuthors(ctx context.Context, authorIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(authorIDs))
	if len(authorIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		AuthorID uint
		Count    int64
	}
	err := r.db.WithContext(ctx).Model(&models.Recipe{}).
		Select("author_id, COUNT(*) AS count").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.AuthorID] = row.Count
	}
	return counts, nil
}

func (r *PostgresRecipeRepository) memberRecipeIDs(userID uint, kind models.MembershipKind) *gorm.DB {
	return r.db.Model(&models.RecipeMembership{}).Select("recipe_id").Where("user_id = ? AND kind = ?", userID, kind)
}

func (r *PostgresRecipeRepository) withDetails(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name ASC") }).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("recipe_ingredients.id ASC") }).
		Preload("Ingredients.Ingredient")
}
