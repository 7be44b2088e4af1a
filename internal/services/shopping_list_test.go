package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anonto42/foodgram/backend/internal/models"
	"github.com/anonto42/foodgram/backend/internal/repositories/mock"
	"go.uber.org/mock/gomock"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestShoppingListService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	cart := mock.NewMockShoppingCartRepository(ctrl)
	archive := mock.NewMockShoppingListArchiveRepository(ctrl)

	user := &models.User{ID: 7, Username: "alice"}
	items := []models.ShoppingListItem{
		{Name: "Flour", MeasurementUnit: "g", Amount: 350},
		{Name: "Salt", MeasurementUnit: "g", Amount: 5},
	}

	cart.EXPECT().AggregateCart(gomock.Any(), uint(7)).Return(items, nil)
	archive.EXPECT().
		ArchiveShoppingList(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, list *models.ShoppingList) error {
			if list.UserID != 7 || len(list.Items) != 2 {
				t.Errorf("archived list = %+v", list)
			}
			return nil
		})

	svc := NewShoppingListService(cart, archive)
	svc.now = fixedClock

	list, err := svc.Generate(context.Background(), user)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	want := "Shopping list for alice:\n1. Flour (g) - 350\n2. Salt (g) - 5\n"
	if got := list.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if !list.GeneratedAt.Equal(fixedClock()) {
		t.Errorf("GeneratedAt = %v, want %v", list.GeneratedAt, fixedClock())
	}
}

func TestShoppingListService_GenerateEmptyCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	cart := mock.NewMockShoppingCartRepository(ctrl)
	cart.EXPECT().AggregateCart(gomock.Any(), uint(1)).Return(nil, nil)

	list, err := NewShoppingListService(cart, nil).Generate(context.Background(), &models.User{ID: 1, Username: "bob"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if list.Items == nil || len(list.Items) != 0 {
		t.Errorf("Items = %#v, want empty", list.Items)
	}
	if got := list.Render(); got != "Shopping list for bob:\n" {
		t.Errorf("Render() = %q, want header only", got)
	}
}

func TestShoppingListService_ArchiveFailureDoesNotFailGenerate(t *testing.T) {
	ctrl := gomock.NewController(t)
	cart := mock.NewMockShoppingCartRepository(ctrl)
	archive := mock.NewMockShoppingListArchiveRepository(ctrl)

	cart.EXPECT().AggregateCart(gomock.Any(), uint(3)).
		Return([]models.ShoppingListItem{{Name: "Egg", MeasurementUnit: "pcs", Amount: 2}}, nil)
	archive.EXPECT().ArchiveShoppingList(gomock.Any(), gomock.Any()).Return(errors.New("mongo unavailable"))

	list, err := NewShoppingListService(cart, archive).Generate(context.Background(), &models.User{ID: 3, Username: "carol"})
	if err != nil {
		t.Fatalf("Generate() error = %v, want nil", err)
	}
	if len(list.Items) != 1 {
		t.Errorf("Items = %+v, want one item", list.Items)
	}
}

func TestShoppingListService_GenerateAggregationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	cart := mock.NewMockShoppingCartRepository(ctrl)
	archive := mock.NewMockShoppingListArchiveRepository(ctrl)

	dbErr := errors.New("connection reset")
	cart.EXPECT().AggregateCart(gomock.Any(), uint(4)).Return(nil, dbErr)

	_, err := NewShoppingListService(cart, archive).Generate(context.Background(), &models.User{ID: 4})
	if !errors.Is(err, dbErr) {
		t.Errorf("Generate() error = %v, want wrapped %v", err, dbErr)
	}
}

func TestShoppingListService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	cart := mock.NewMockShoppingCartRepository(ctrl)
	archive := mock.NewMockShoppingListArchiveRepository(ctrl)

	stored := []models.ShoppingList{{UserID: 5, Username: "dave"}}
	archive.EXPECT().GetShoppingListsByUser(gomock.Any(), uint(5), int64(ShoppingListHistoryLimit)).Return(stored, nil)

	got, err := NewShoppingListService(cart, archive).History(context.Background(), 5)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(got) != 1 || got[0].Username != "dave" {
		t.Errorf("History() = %+v", got)
	}

	empty, err := NewShoppingListService(cart, nil).History(context.Background(), 5)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("History() without archive = %#v, %v; want empty", empty, err)
	}
}
