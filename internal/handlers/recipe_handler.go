package handlers

import (
	"net/http"
	"strconv"

	"github.com/anonto42/foodgram/backend/internal/middleware"
	"github.com/anonto42/foodgram/backend/internal/models"
	"github.com/anonto42/foodgram/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// RecipeHandler handles recipe CRUD and listing
type RecipeHandler struct {
	recipeService *services.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeService *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RegisterRecipeRoutes registers recipe routes
func (h *RecipeHandler) RegisterRecipeRoutes(g *echo.Group) {
	g.GET("/recipes", h.ListRecipes)
	g.POST("/recipes", h.CreateRecipe, middleware.RequireAuth)
	g.GET("/recipes/:id", h.GetRecipe)
	g.PATCH("/recipes/:id", h.UpdateRecipe, middleware.RequireAuth)
	g.DELETE("/recipes/:id", h.DeleteRecipe, middleware.RequireAuth)
}

// ListRecipes supports ?tags=<id>&tags=<id> (any of), ?author=<id>,
// ?is_favorited=1, ?is_in_shopping_cart=1 and ?limit=<n>.
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	query := services.ListRecipesQuery{
		Favorited: truthy(c.QueryParam("is_favorited")),
		InCart:    truthy(c.QueryParam("is_in_shopping_cart")),
	}

	for _, raw := range c.QueryParams()["tags"] {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fieldErrors{"tags": {"Tag ids must be integers."}})
		}
		query.TagIDs = append(query.TagIDs, uint(id))
	}
	if raw := c.QueryParam("author"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fieldErrors{"author": {"Author id must be an integer."}})
		}
		query.AuthorID = uint(id)
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	query.Limit = limit

	recipes, err := h.recipeService.List(c.Request().Context(), middleware.CurrentUser(c), query)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, recipes)
}

func truthy(v string) bool {
	return v == "1" || v == "true"
}

func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	recipe, err := h.recipeService.Get(c.Request().Context(), middleware.CurrentUser(c), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	var req models.CreateRecipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	recipe, err := h.recipeService.Create(c.Request().Context(), middleware.CurrentUser(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, recipe)
}

// UpdateRecipe applies a partial update. Only the author or an admin may edit.
func (h *RecipeHandler) UpdateRecipe(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req models.UpdateRecipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	recipe, err := h.recipeService.Update(c.Request().Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.recipeService.Delete(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
