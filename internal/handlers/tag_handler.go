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

type TagHandler struct {
	tagRepository repositories.TagRepository
}

func NewTagHandler(tagRepo repositories.TagRepository) *TagHandler {
	return &TagHandler{tagRepository: tagRepo}
}

func (h *TagHandler) RegisterTagRoutes(g *echo.Group) {
	g.GET("/tags", h.ListTags)
	g.GET("/tags/:id", h.GetTag)
	g.POST("/tags", h.CreateTag, middleware.RequireAdmin)
}

func (h *TagHandler) ListTags(c echo.Context) error {
	tags, err := h.tagRepository.GetTags(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) GetTag(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	tag, err := h.tagRepository.GetTagByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Tag not found")
		}
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tag)
}

// CreateTag adds a tag. Admin only.
func (h *TagHandler) CreateTag(c echo.Context) error {
	var req models.CreateTagRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	tag := &models.Tag{Name: req.Name, Color: req.Color, Slug: req.Slug}
	if err := h.tagRepository.CreateTag(c.Request().Context(), tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusBadRequest, fieldErrors{"slug": {"A tag with this slug already exists."}})
		}
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, tag)
}
