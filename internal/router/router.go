package router

import (
	"fmt"

	"github.com/anonto42/foodgram/backend/internal/handlers"
	"github.com/anonto42/foodgram/backend/internal/middleware"
	"github.com/anonto42/foodgram/backend/internal/repositories"
	"github.com/anonto42/foodgram/backend/internal/services"
	"github.com/anonto42/foodgram/backend/pkg/config"
	"github.com/anonto42/foodgram/backend/pkg/logger"
	"github.com/labstack/echo/v4"
)

// SetupRoutes migrates the schema, wires repositories, services and handlers,
// and mounts everything under /api. firebaseAuth may be nil.
func SetupRoutes(e *echo.Echo, db *config.DB, cfg *config.Config, firebaseAuth middleware.FirebaseTokenVerifier) error {
	log := logger.WithComponent("router")

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := repositories.AutoMigrate(db.Postgres); err != nil {
		return fmt.Errorf("failed to auto migrate models: %w", err)
	}
	log.Info().Msg("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db.Postgres)
	tagRepo := repositories.NewPostgresTagRepository(db.Postgres)
	recipeRepo := repositories.NewPostgresRecipeRepository(db.Postgres)
	membershipRepo := repositories.NewPostgresMembershipRepository(db.Postgres)
	followRepo := repositories.NewPostgresFollowRepository(db.Postgres)
	cartRepo := repositories.NewPostgresShoppingCartRepository(db.Postgres)

	var ingredientRepo repositories.IngredientRepository = repositories.NewPostgresIngredientRepository(db.Postgres)
	if db.Redis != nil {
		ingredientRepo = repositories.NewCachedIngredientRepository(ingredientRepo, db.Redis, cfg.IngredientCacheTTL)
		log.Info().Dur("ttl", cfg.IngredientCacheTTL).Msg("Ingredient search cache enabled.")
	}

	var archiveRepo repositories.ShoppingListArchiveRepository
	if db.Mongo != nil {
		archiveRepo = repositories.NewMongoShoppingListArchiveRepository(db.Mongo.Database(cfg.MongoDatabase))
		log.Info().Str("database", cfg.MongoDatabase).Msg("Shopping list archive enabled.")
	}

	// --- Services ---
	userService := services.NewUserService(userRepo, followRepo)
	followService := services.NewFollowService(userRepo, followRepo, recipeRepo)
	recipeService := services.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, membershipRepo, followRepo)
	membershipService := services.NewMembershipService(recipeRepo, membershipRepo)
	shoppingListService := services.NewShoppingListService(cartRepo, archiveRepo)

	// Every /api route resolves the bearer token when present; handlers opt into RequireAuth.
	api := e.Group("/api")
	api.Use(middleware.Authenticate(cfg.JWTSecret, userRepo, firebaseAuth))

	handlers.NewUserHandler(userService).RegisterUserRoutes(api)
	handlers.NewFollowHandler(followService).RegisterFollowRoutes(api)
	handlers.NewTagHandler(tagRepo).RegisterTagRoutes(api)
	handlers.NewIngredientHandler(ingredientRepo).RegisterIngredientRoutes(api)
	handlers.NewRecipeHandler(recipeService).RegisterRecipeRoutes(api)
	handlers.NewMembershipHandler(membershipService).RegisterMembershipRoutes(api)
	handlers.NewShoppingListHandler(shoppingListService).RegisterShoppingListRoutes(api)

	log.Info().Msg("All routes configured.")
	return nil
}
