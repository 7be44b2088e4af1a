package repositories

import (
	"context"

	"github.com/anonto42/foodgram/backend/internal/models"
	"gorm.io/gorm"
)

// MembershipRepository stores per-user recipe sets (favorites, shopping cart).
type MembershipRepository interface {
	AddMembership(ctx context.Context, membership *models.RecipeMembership) error
	RemoveMembership(ctx context.Context, userID, recipeID uint, kind models.MembershipKind) error
	HasMembership(ctx context.Context, userID, recipeID uint, kind models.MembershipKind) (bool, error)
	GetMemberRecipeIDs(ctx context.Context, userID uint, kind models.MembershipKind, recipeIDs []uint) (map[uint]bool, error)
}

// PostgresMembershipRepository implements MembershipRepository
type PostgresMembershipRepository struct {
	db *gorm.DB
}

func NewPostgresMembershipRepository(db *gorm.DB) *PostgresMembershipRepository {
	return &PostgresMembershipRepository{db: db}
}

func (r *PostgresMembershipRepository) AddMembership(ctx context.Context, membership *models.RecipeMembership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

// RemoveMembership returns gorm.ErrRecordNotFound when the recipe was not in the set.
func (r *PostgresMembershipRepository) RemoveMembership(ctx context.Context, userID, recipeID uint, kind models.MembershipKind) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ? AND kind = ?", userID, recipeID, kind).
		Delete(&models.RecipeMembership{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PostgresMembershipRepository) HasMembership(ctx context.Context, userID, recipeID uint, kind models.MembershipKind) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RecipeMembership{}).
		Where("user_id = ? AND recipe_id = ? AND kind = ?", userID, recipeID, kind).
		Count(&count).Error
	return count > 0, err
}

// GetMemberRecipeIDs reports which of recipeIDs are in the user's set.
func (r *PostgresMembershipRepository) GetMemberRecipeIDs(ctx context.Context, userID uint, kind models.MembershipKind, recipeIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool)
	if userID == 0 || len(recipeIDs) == 0 {
		return result, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.RecipeMembership{}).
		Where("user_id = ? AND kind = ? AND recipe_id IN ?", userID, kind, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}
