package domain

import (
	"testing"
)

func TestEditableDerivedFromStatus(t *testing.T) {
	d := Delivery{Status: StatusScheduled}
	if !d.Editable() {
		t.Fatal("SCHEDULED delivery should be editable")
	}

	for _, status := range []string{"DELIVERED", "CANCELLED", "", "scheduled"} {
		d.Status = status
		if d.Editable() {
			t.Fatalf("status %q should not be editable", status)
		}
	}
}

func TestParseMealTypes(t *testing.T) {
	types, err := ParseMealTypes("lunch, DINNER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(types) != 2 || types[0] != MealLunch || types[1] != MealDinner {
		t.Fatalf("unexpected types: %v", types)
	}

	types, err = ParseMealTypes("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if types != nil {
		t.Fatalf("empty filter should be nil, got %v", types)
	}

	if _, err := ParseMealTypes("BREAKFAST"); err == nil {
		t.Fatal("expected error for unknown meal type")
	}
	if _, err := ParseMealTypes("LUNCH,SNACK"); err == nil {
		t.Fatal("expected error for mixed valid/invalid tokens")
	}
}

func TestMatchesMealTypes(t *testing.T) {
	d := Delivery{MealType: MealLunch}

	if !d.MatchesMealTypes(nil) {
		t.Fatal("nil filter must match everything")
	}
	if !d.MatchesMealTypes([]MealType{MealLunch}) {
		t.Fatal("lunch should match a lunch filter")
	}
	if d.MatchesMealTypes([]MealType{MealDinner}) {
		t.Fatal("lunch should not match a dinner-only filter")
	}
}

func TestSortDeliveries(t *testing.T) {
	d1, _ := ParseDate("2024-01-08")
	d2, _ := ParseDate("2024-01-06")

	ds := []Delivery{
		{GroupID: 1, Date: d1, MealType: MealLunch},
		{GroupID: 2, Date: d2, MealType: MealLunch},
		{GroupID: 3, Date: d2, MealType: MealDinner},
	}

	SortDeliveries(ds)

	// Same day sorts DINNER before LUNCH (lexical meal-type order).
	wantOrder := []int{3, 2, 1}
	for i, want := range wantOrder {
		if ds[i].GroupID != want {
			t.Fatalf("position %d = group %d, want %d", i, ds[i].GroupID, want)
		}
	}
}
