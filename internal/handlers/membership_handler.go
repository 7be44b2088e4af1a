package handlers

import (
	"net/http"

	"github.com/anonto42/foodgram/backend/internal/middleware"
	"github.com/anonto42/foodgram/backend/internal/models"
	"github.com/anonto42/foodgram/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// MembershipHandler serves the favorite and shopping cart toggles
type MembershipHandler struct {
	membershipService *services.MembershipService
}

func NewMembershipHandler(membershipService *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

func (h *MembershipHandler) RegisterMembershipRoutes(g *echo.Group) {
	g.POST("/recipes/:id/favorite", h.add(models.MembershipFavorite), middleware.RequireAuth)
	g.DELETE("/recipes/:id/favorite", h.remove(models.MembershipFavorite), middleware.RequireAuth)
	g.POST("/recipes/:id/shopping_cart", h.add(models.MembershipCart), middleware.RequireAuth)
	g.DELETE("/recipes/:id/shopping_cart", h.remove(models.MembershipCart), middleware.RequireAuth)
}

func (h *MembershipHandler) add(kind models.MembershipKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		recipeID, err := paramID(c, "id")
		if err != nil {
			return err
		}
		recipe, err := h.membershipService.Add(c.Request().Context(), middleware.CurrentUser(c), recipeID, kind)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusCreated, recipe)
	}
}

func (h *MembershipHandler) remove(kind models.MembershipKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		recipeID, err := paramID(c, "id")
		if err != nil {
			return err
		}
		if err := h.membershipService.Remove(c.Request().Context(), middleware.CurrentUser(c), recipeID, kind); err != nil {
			return httpError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
