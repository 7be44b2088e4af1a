package models

// Ingredient is reference data. Names are not unique.
type Ingredient struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"size:200;index;not null"`
	MeasurementUnit string `json:"measurement_unit" gorm:"size:200;not null"`
}

type CreateIngredientRequest struct {
	Name            string `json:"name" validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
}
