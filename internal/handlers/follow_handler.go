package handlers

import (
	"net/http"

	"github.com/anonto42/foodgram/backend/internal/middleware"
	"github.com/anonto42/foodgram/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles subscribe/unsubscribe HTTP requests
type FollowHandler struct {
	followService *services.FollowService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followService *services.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.GET("/users/subscriptions", h.Subscriptions, middleware.RequireAuth)
	g.POST("/users/:id/subscribe", h.Subscribe, middleware.RequireAuth)
	g.DELETE("/users/:id/subscribe", h.Unsubscribe, middleware.RequireAuth)
}

// Subscribe follows an author and returns them with a preview of their recipes
func (h *FollowHandler) Subscribe(c echo.Context) error {
	authorID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "recipes_limit")
	if err != nil {
		return err
	}
	author, err := h.followService.Follow(c.Request().Context(), middleware.CurrentUser(c), authorID, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, author)
}

func (h *FollowHandler) Unsubscribe(c echo.Context) error {
	authorID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.followService.Unfollow(c.Request().Context(), middleware.CurrentUser(c), authorID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Subscriptions lists the authors the current user follows
func (h *FollowHandler) Subscriptions(c echo.Context) error {
	limit, err := queryInt(c, "recipes_limit")
	if err != nil {
		return err
	}
	authors, err := h.followService.Subscriptions(c.Request().Context(), middleware.CurrentUser(c), limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, authors)
}
