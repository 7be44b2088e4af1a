package services

import (
	"context"
	"fmt"
	"time"

	"github.com/anonto42/foodgram/backend/internal/models"
	"github.com/anonto42/foodgram/backend/internal/repositories"
	"github.com/anonto42/foodgram/backend/pkg/logger"
)

// ShoppingListHistoryLimit caps how many archived lists History returns.
const ShoppingListHistoryLimit = 20

// ShoppingListService builds shopping lists from a user's cart.
type ShoppingListService struct {
	cart    repositories.ShoppingCartRepository
	archive repositories.ShoppingListArchiveRepository
	now     func() time.Time
}

// NewShoppingListService wires the aggregator. archive may be nil, which disables history.
func NewShoppingListService(cart repositories.ShoppingCartRepository, archive repositories.ShoppingListArchiveRepository) *ShoppingListService {
	return &ShoppingListService{cart: cart, archive: archive, now: time.Now}
}

// Generate aggregates the user's cart into a list. Archiving is best effort.
func (s *ShoppingListService) Generate(ctx context.Context, user *models.User) (*models.ShoppingList, error) {
	items, err := s.cart.AggregateCart(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate shopping cart: %w", err)
	}
	if items == nil {
		items = []models.ShoppingListItem{}
	}

	list := &models.ShoppingList{
		UserID:      user.ID,
		Username:    user.Username,
		Items:       items,
		GeneratedAt: s.now().UTC(),
	}

	if s.archive != nil {
		if err := s.archive.ArchiveShoppingList(ctx, list); err != nil {
			logger.Warn().Err(err).Uint("user_id", user.ID).Msg("Failed to archive shopping list")
		}
	}
	return list, nil
}

// History returns the user's most recent archived lists, newest first.
func (s *ShoppingListService) History(ctx context.Context, userID uint) ([]models.ShoppingList, error) {
	if s.archive == nil {
		return []models.ShoppingList{}, nil
	}
	lists, err := s.archive.GetShoppingListsByUser(ctx, userID, ShoppingListHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load shopping list history: %w", err)
	}
	return lists, nil
}
