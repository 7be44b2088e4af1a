package handlers

import (
	"fmt"
	"net/http"

	"github.com/anonto42/foodgram/backend/internal/middleware"
	"github.com/anonto42/foodgram/backend/internal/models"
	"github.com/anonto42/foodgram/backend/internal/services"
	"github.com/labstack/echo/v4"
)

type ShoppingListHandler struct {
	shoppingListService *services.ShoppingListService
}

func NewShoppingListHandler(shoppingListService *services.ShoppingListService) *ShoppingListHandler {
	return &ShoppingListHandler{shoppingListService: shoppingListService}
}

func (h *ShoppingListHandler) RegisterShoppingListRoutes(g *echo.Group) {
	g.GET("/recipes/download_shopping_cart", h.Download, middleware.RequireAuth)
	g.GET("/users/me/shopping_lists", h.History, middleware.RequireAuth)
}

// Download returns the aggregated cart as a plain text attachment
func (h *ShoppingListHandler) Download(c echo.Context) error {
	list, err := h.shoppingListService.Generate(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return httpError(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s", models.ShoppingListFilename))
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, []byte(list.Render()))
}

// History lists the user's recently generated shopping lists
func (h *ShoppingListHandler) History(c echo.Context) error {
	lists, err := h.shoppingListService.History(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, lists)
}
