package models

import "time"

const (
	MinCookingTime = 1
	MaxCookingTime = 1440

	// MaxIngredientAmount matches a smallint amount column.
	MaxIngredientAmount = 32767
)

type Recipe struct {
	ID          uint               `json:"id" gorm:"primaryKey"`
	AuthorID    uint               `json:"author_id" gorm:"index;not null"`
	Author      User               `json:"-" gorm:"foreignKey:AuthorID"`
	Name        string             `json:"name" gorm:"size:200;index;not null"`
	Text        string             `json:"text" gorm:"type:text;not null"`
	CookingTime int                `json:"cooking_time" gorm:"not null"`
	Image       string             `json:"image"`
	Tags        []Tag              `json:"tags" gorm:"many2many:recipe_tags;"`
	Ingredients []RecipeIngredient `json:"ingredients" gorm:"foreignKey:RecipeID"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// RecipeIngredient is the join row carrying the recipe-specific amount.
type RecipeIngredient struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	RecipeID     uint       `json:"recipe_id" gorm:"index;uniqueIndex:idx_recipe_ingredient"`
	IngredientID uint       `json:"ingredient_id" gorm:"index;uniqueIndex:idx_recipe_ingredient"`
	Ingredient   Ingredient `json:"-" gorm:"foreignKey:IngredientID"`
	Amount       int        `json:"amount" gorm:"not null"`
}

// RecipeTag is the explicit join table behind Recipe.Tags.
type RecipeTag struct {
	RecipeID uint `gorm:"primaryKey"`
	TagID    uint `gorm:"primaryKey;index"`
}

// RecipeIngredientInput references an ingredient by id. Amount is a pointer so a missing value can be told apart from zero.
type RecipeIngredientInput struct {
	ID     uint `json:"id"`
	Amount *int `json:"amount"`
}

type CreateRecipeRequest struct {
	Tags        []uint                  `json:"tags"`
	Ingredients []RecipeIngredientInput `json:"ingredients"`
	Name        string                  `json:"name" validate:"required,max=200"`
	Text        string                  `json:"text" validate:"required"`
	CookingTime int                     `json:"cooking_time" validate:"required,min=1,max=1440"`
	Image       string                  `json:"image"`
}

// UpdateRecipeRequest is a partial update; nil fields are left unchanged.
type UpdateRecipeRequest struct {
	Tags        []uint                  `json:"tags"`
	Ingredients []RecipeIngredientInput `json:"ingredients"`
	Name        *string                 `json:"name" validate:"omitempty,min=1,max=200"`
	Text        *string                 `json:"text" validate:"omitempty,min=1"`
	CookingTime *int                    `json:"cooking_time" validate:"omitempty,min=1,max=1440"`
	Image       *string                 `json:"image"`
}

// RecipeFilter narrows recipe listings. Zero values mean "no filter".
type RecipeFilter struct {
	TagIDs      []uint
	AuthorID    uint
	FavoritedBy uint
	InCartOf    uint
	Limit       int
}

type RecipeIngredientResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type RecipeResponse struct {
	ID               uint                       `json:"id"`
	Tags             []Tag                      `json:"tags"`
	Author           UserResponse               `json:"author"`
	Ingredients      []RecipeIngredientResponse `json:"ingredients"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	Name             string                     `json:"name"`
	Image            string                     `json:"image"`
	Text             string                     `json:"text"`
	CookingTime      int                        `json:"cooking_time"`
}

// RecipeMinified is returned by favorite/cart toggles and subscription listings.
type RecipeMinified struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func (r *Recipe) ToMinified() RecipeMinified {
	return RecipeMinified{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}

// RecipeFlags are the requester-specific booleans attached to a recipe response.
type RecipeFlags struct {
	AuthorSubscribed bool
	Favorited        bool
	InCart           bool
}

// ToResponse expects Author, Tags and Ingredients.Ingredient to be loaded.
func (r *Recipe) ToResponse(flags RecipeFlags) RecipeResponse {
	ingredients := make([]RecipeIngredientResponse, len(r.Ingredients))
	for i, link := range r.Ingredients {
		ingredients[i] = RecipeIngredientResponse{
			ID:              link.IngredientID,
			Name:            link.Ingredient.Name,
			MeasurementUnit: link.Ingredient.MeasurementUnit,
			Amount:          link.Amount,
		}
	}
	tags := r.Tags
	if tags == nil {
		tags = []Tag{}
	}
	return RecipeResponse{
		ID:               r.ID,
		Tags:             tags,
		Author:           r.Author.ToResponse(flags.AuthorSubscribed),
		Ingredients:      ingredients,
		IsFavorited:      flags.Favorited,
		IsInShoppingCart: flags.InCart,
		Name:             r.Name,
		Image:            r.Image,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
	}
}
