package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/foodgram/backend/internal/middleware"
	"github.com/anonto42/foodgram/backend/internal/models"
	"github.com/anonto42/foodgram/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type IngredientHandler struct {
	ingredientRepository repositories.IngredientRepository
}

func NewIngredientHandler(ingredientRepo repositories.IngredientRepository) *IngredientHandler {
	return &IngredientHandler{ingredientRepository: ingredientRepo}
}

func (h *IngredientHandler) RegisterIngredientRoutes(g *echo.Group) {
	g.GET("/ingredients", h.SearchIngredients)
	g.GET("/ingredients/:id", h.GetIngredient)
	g.POST("/ingredients", h.CreateIngredient, middleware.RequireAdmin)
}

// SearchIngredients lists ingredients whose name starts with ?name=, ignoring case
func (h *IngredientHandler) SearchIngredients(c echo.Context) error {
	ingredients, err := h.ingredientRepository.SearchIngredients(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ingredients)
}

func (h *IngredientHandler) GetIngredient(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	ingredient, err := h.ingredientRepository.GetIngredientByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Ingredient not found")
		}
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) CreateIngredient(c echo.Context) error {
	var req models.CreateIngredientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ingredient := &models.Ingredient{Name: req.Name, MeasurementUnit: req.MeasurementUnit}
	if err := h.ingredientRepository.CreateIngredient(c.Request().Context(), ingredient); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, ingredient)
}
