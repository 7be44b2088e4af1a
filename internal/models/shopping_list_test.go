package models

import (
	"strconv"
	"strings"
	"testing"
)

func TestShoppingList_Render(t *testing.T) {
	tests := []struct {
		name string
		list ShoppingList
		want string
	}{
		{
			name: "empty cart renders header only",
			list: ShoppingList{Username: "alice"},
			want: "Shopping list for alice:\n",
		},
		{
			name: "items are numbered from one",
			list: ShoppingList{
				Username: "bob",
				Items: []ShoppingListItem{
					{Name: "Flour", MeasurementUnit: "g", Amount: 350},
					{Name: "Salt", MeasurementUnit: "g", Amount: 5},
				},
			},
			want: "Shopping list for bob:\n1. Flour (g) - 350\n2. Salt (g) - 5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.list.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShoppingList_RenderNumberingHasNoGaps(t *testing.T) {
	list := ShoppingList{Username: "carol"}
	for _, name := range []string{"Apple", "Butter", "Cream", "Dill", "Eggs"} {
		list.Items = append(list.Items, ShoppingListItem{Name: name, MeasurementUnit: "pcs", Amount: 1})
	}

	lines := strings.Split(strings.TrimSuffix(list.Render(), "\n"), "\n")
	if len(lines) != len(list.Items)+1 {
		t.Fatalf("got %d lines, want %d", len(lines), len(list.Items)+1)
	}
	for i, line := range lines[1:] {
		want := list.Items[i].Name
		prefix := strings.SplitN(line, ". ", 2)
		if len(prefix) != 2 {
			t.Fatalf("line %q has no number prefix", line)
		}
		if prefix[0] != strconv.Itoa(i+1) {
			t.Errorf("line %d numbered %q, want %d", i, prefix[0], i+1)
		}
		if !strings.HasPrefix(prefix[1], want) {
			t.Errorf("line %d = %q, want item %q", i, line, want)
		}
	}
}
