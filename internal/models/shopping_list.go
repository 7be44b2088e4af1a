package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShoppingListFilename is the attachment name offered for downloads.
const ShoppingListFilename = "data.txt"

// ShoppingListItem is one aggregated (name, unit) group.
type ShoppingListItem struct {
	Name            string `json:"name" bson:"name" gorm:"column:name"`
	MeasurementUnit string `json:"measurement_unit" bson:"measurement_unit" gorm:"column:measurement_unit"`
	Amount          int64  `json:"amount" bson:"amount" gorm:"column:amount"`
}

// ShoppingList is a generated list. It doubles as the archived document in MongoDB.
type ShoppingList struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      uint               `json:"user_id" bson:"user_id"`
	Username    string             `json:"username" bson:"username"`
	Items       []ShoppingListItem `json:"items" bson:"items"`
	GeneratedAt time.Time          `json:"generated_at" bson:"generated_at"`
}

// Header is the first line of the rendered list.
func (l *ShoppingList) Header() string {
	return fmt.Sprintf("Shopping list for %s:", l.Username)
}

// Render formats the list as numbered plain text, one line per item, numbering from 1.
func (l *ShoppingList) Render() string {
	var b strings.Builder
	b.WriteString(l.Header())
	b.WriteByte('\n')
	for i, item := range l.Items {
		fmt.Fprintf(&b, "%d. %s (%s) - %d\n", i+1, item.Name, item.MeasurementUnit, item.Amount)
	}
	return b.String()
}
