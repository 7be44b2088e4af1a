package repositories

import (
	"context"
	"strings"

	"github.com/anonto42/foodgram/backend/internal/models"
	"gorm.io/gorm"
)

// IngredientRepository defines the interface for ingredient reference data
type IngredientRepository interface {
	CreateIngredient(ctx context.Context, ingredient *models.Ingredient) error
	GetIngredientByID(ctx context.Context, id uint) (*models.Ingredient, error)
	GetIngredientsByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error)
	SearchIngredients(ctx context.Context, namePrefix string) ([]models.Ingredient, error)
}

// PostgresIngredientRepository implements IngredientRepository for PostgreSQL
type PostgresIngredientRepository struct {
	db *gorm.DB
}

func NewPostgresIngredientRepository(db *gorm.DB) *PostgresIngredientRepository {
	return &PostgresIngredientRepository{db: db}
}

func (r *PostgresIngredientRepository) CreateIngredient(ctx context.Context, ingredient *models.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *PostgresIngredientRepository) GetIngredientByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.WithContext(ctx).First(&ingredient, id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *PostgresIngredientRepository) GetIngredientsByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}

// SearchIngredients matches names starting with namePrefix, ignoring case. An empty prefix lists everything.
func (r *PostgresIngredientRepository) SearchIngredients(ctx context.Context, namePrefix string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	q := r.db.WithContext(ctx).Model(&models.Ingredient{})
	if namePrefix != "" {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, escapeLike(strings.ToLower(namePrefix))+"%")
	}
	err := q.Order("name ASC").Order("id ASC").Find(&ingredients).Error
	return ingredients, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
