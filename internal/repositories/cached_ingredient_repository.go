package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anonto42/foodgram/backend/internal/models"
	"github.com/anonto42/foodgram/backend/pkg/logger"
	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
)

const (
	ingredientSearchKeyPrefix = "ingredients:search"
	ingredientVersionKey      = "ingredients:version"
)

// CachedIngredientRepository serves prefix searches from Redis. Creating an
// ingredient bumps a version counter that is part of every cache key, so stale
// entries are never read again and simply expire.
type CachedIngredientRepository struct {
	IngredientRepository
	client *redis.Client
	ttl    time.Duration
}

func NewCachedIngredientRepository(next IngredientRepository, client *redis.Client, ttl time.Duration) *CachedIngredientRepository {
	return &CachedIngredientRepository{IngredientRepository: next, client: client, ttl: ttl}
}

func (r *CachedIngredientRepository) CreateIngredient(ctx context.Context, ingredient *models.Ingredient) error {
	if err := r.IngredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return err
	}
	if err := r.client.Incr(ctx, ingredientVersionKey).Err(); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate ingredient search cache")
	}
	return nil
}

func (r *CachedIngredientRepository) SearchIngredients(ctx context.Context, namePrefix string) ([]models.Ingredient, error) {
	version, err := r.client.Get(ctx, ingredientVersionKey).Int64()
	if err != nil && err != redis.Nil {
		logger.Warn().Err(err).Msg("Ingredient cache unavailable, querying database")
		return r.IngredientRepository.SearchIngredients(ctx, namePrefix)
	}
	key := fmt.Sprintf("%s:%d:%s", ingredientSearchKeyPrefix, version, strings.ToLower(namePrefix))

	if cached, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var ingredients []models.Ingredient
		if err := json.Unmarshal(cached, &ingredients); err == nil {
			return ingredients, nil
		}
	} else if err != redis.Nil {
		logger.Warn().Err(err).Str("key", key).Msg("Ingredient cache read failed")
	}

	ingredients, err := r.IngredientRepository.SearchIngredients(ctx, namePrefix)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(ingredients)
	if err == nil {
		err = r.client.Set(ctx, key, payload, r.ttl).Err()
	}
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Ingredient cache write failed")
	}
	return ingredients, nil
}
