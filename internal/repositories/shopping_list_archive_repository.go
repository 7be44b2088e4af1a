package repositories

import (
	"context"
	"time"

	"github.com/anonto42/foodgram/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ShoppingListArchiveRepository keeps a history of generated shopping lists.
type ShoppingListArchiveRepository interface {
	ArchiveShoppingList(ctx context.Context, list *models.ShoppingList) error
	GetShoppingListsByUser(ctx context.Context, userID uint, limit int64) ([]models.ShoppingList, error)
}

// MongoShoppingListArchiveRepository implements ShoppingListArchiveRepository for MongoDB
type MongoShoppingListArchiveRepository struct {
	collection *mongo.Collection
}

// NewMongoShoppingListArchiveRepository creates a new MongoShoppingListArchiveRepository
func NewMongoShoppingListArchiveRepository(db *mongo.Database) *MongoShoppingListArchiveRepository {
	return &MongoShoppingListArchiveRepository{collection: db.Collection("shopping_lists")}
}

func (r *MongoShoppingListArchiveRepository) ArchiveShoppingList(ctx context.Context, list *models.ShoppingList) error {
	list.ID = primitive.NewObjectID()
	if list.GeneratedAt.IsZero() {
		list.GeneratedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, list)
	return err
}

// GetShoppingListsByUser returns the newest lists first.
func (r *MongoShoppingListArchiveRepository) GetShoppingListsByUser(ctx context.Context, userID uint, limit int64) ([]models.ShoppingList, error) {
	lists := []models.ShoppingList{}
	findOptions := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "generated_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}
