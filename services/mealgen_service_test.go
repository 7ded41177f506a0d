package services

import (
	"reflect"
	"testing"
)

func allMeals(g GeneratedMeals) []Meal {
	return append(append([]Meal{}, g.Veg...), g.NonVeg...)
}

func TestGenerateMealsForDate(t *testing.T) {
	t.Run("Cardinality", func(t *testing.T) {
		got := GenerateMealsForDate("2026-01-10", nil)
		meals := allMeals(got)
		if len(meals) != 6 {
			t.Fatalf("Expected 6 meals, got %d", len(meals))
		}

		counts := map[MealTime]int{}
		for _, m := range meals {
			counts[m.MealTime]++
		}
		if counts[Breakfast] != 2 || counts[Lunch] != 2 || counts[Dinner] != 2 {
			t.Errorf("Expected 2 of each meal time, got %v", counts)
		}

		// Lunch and dinner each carry exactly one veg and one non-veg dish.
		for _, mt := range []MealTime{Lunch, Dinner} {
			veg, nonVeg := 0, 0
			for _, m := range meals {
				if m.MealTime != mt {
					continue
				}
				if m.Type == Veg {
					veg++
				} else {
					nonVeg++
				}
			}
			if veg != 1 || nonVeg != 1 {
				t.Errorf("%s: expected 1 veg and 1 non-veg, got %d/%d", mt, veg, nonVeg)
			}
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := GenerateMealsForDate("2025-06-15", nil)
		b := GenerateMealsForDate("2025-06-15", nil)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Same date produced different meal sets:\n%v\n%v", a, b)
		}
	})

	t.Run("WinterFixture", func(t *testing.T) {
		// 2026-01-10: day 10, Winter. Pinned so catalog or rotation changes
		// are caught.
		got := GenerateMealsForDate("2026-01-10", nil)

		wantVeg := []string{"Sujee Halwa", "Sarson Ka Saag", "Methi Aloo"}
		wantNonVeg := []string{"Qeema Paratha", "Chicken Paya", "Chicken Corn Soup"}

		if len(got.Veg) != len(wantVeg) || len(got.NonVeg) != len(wantNonVeg) {
			t.Fatalf("Unexpected partition sizes: %d veg, %d non-veg", len(got.Veg), len(got.NonVeg))
		}
		for i, m := range got.Veg {
			if m.Name != wantVeg[i] {
				t.Errorf("Veg[%d]: expected %q, got %q", i, wantVeg[i], m.Name)
			}
		}
		for i, m := range got.NonVeg {
			if m.Name != wantNonVeg[i] {
				t.Errorf("NonVeg[%d]: expected %q, got %q", i, wantNonVeg[i], m.Name)
			}
		}
		for _, m := range allMeals(got) {
			if m.Season != Winter {
				t.Errorf("Expected Winter season on %q, got %q", m.Name, m.Season)
			}
			if m.Date != "2026-01-10" {
				t.Errorf("Expected canonical date 2026-01-10, got %q", m.Date)
			}
		}
	})

	t.Run("LunchAndDinnerDiffer", func(t *testing.T) {
		got := GenerateMealsForDate("2026-01-10", nil)
		var lunch, dinner string
		for _, m := range got.Veg {
			switch m.MealTime {
			case Lunch:
				lunch = m.Name
			case Dinner:
				dinner = m.Name
			}
		}
		if lunch == dinner {
			t.Errorf("Veg lunch and dinner both %q; dinner offset lost", lunch)
		}
	})

	t.Run("YearlyPeriodicity", func(t *testing.T) {
		// Same day-of-year in two non-leap years selects the same dishes.
		a := GenerateMealsForDate("2025-01-10", nil)
		b := GenerateMealsForDate("2026-01-10", nil)

		namesOf := func(g GeneratedMeals) []string {
			var names []string
			for _, m := range allMeals(g) {
				names = append(names, m.Name)
			}
			return names
		}
		if !reflect.DeepEqual(namesOf(a), namesOf(b)) {
			t.Errorf("Rotation drifted across years: %v vs %v", namesOf(a), namesOf(b))
		}
	})

	t.Run("InvalidDateFallsBackToToday", func(t *testing.T) {
		got := GenerateMealsForDate("not-a-date", nil)
		if len(allMeals(got)) != 6 {
			t.Fatalf("Expected 6 meals for unparseable date, got %d", len(allMeals(got)))
		}
		for _, m := range allMeals(got) {
			if m.Date == "" || m.Date == "not-a-date" {
				t.Errorf("Expected canonical fallback date, got %q", m.Date)
			}
		}
	})

	t.Run("BlockedFlagFromSet", func(t *testing.T) {
		base := GenerateMealsForDate("2026-01-10", nil)
		target := base.Veg[0]

		got := GenerateMealsForDate("2026-01-10", []string{target.ID})
		if !got.Veg[0].Blocked {
			t.Errorf("Expected meal %q to be blocked", target.Name)
		}
		for _, m := range allMeals(got)[1:] {
			if m.ID != target.ID && m.Blocked {
				t.Errorf("Meal %q blocked without being in the set", m.Name)
			}
		}
	})
}

func TestMealID(t *testing.T) {
	t.Run("StableAcrossCalls", func(t *testing.T) {
		a := MealID("2026-01-10", Lunch, "Sarson Ka Saag")
		b := MealID("2026-01-10", Lunch, "Sarson Ka Saag")
		if a != b {
			t.Errorf("Same triple gave different ids: %s vs %s", a, b)
		}
	})

	t.Run("DistinctTriplesDistinctIDs", func(t *testing.T) {
		seen := map[string]string{}
		for _, mt := range []MealTime{Breakfast, Lunch, Dinner} {
			for _, name := range []string{"Daal Tadka", "Fish Fry"} {
				for _, date := range []string{"2026-01-10", "2026-01-11"} {
					id := MealID(date, mt, name)
					if prev, ok := seen[id]; ok {
						t.Fatalf("Collision: %s already used by %s", id, prev)
					}
					seen[id] = date + "/" + string(mt) + "/" + name
				}
			}
		}
	})

	t.Run("MatchesGeneratedIDs", func(t *testing.T) {
		got := GenerateMealsForDate("2026-01-10", nil)
		for _, m := range allMeals(got) {
			if m.ID != MealID(m.Date, m.MealTime, m.Name) {
				t.Errorf("Meal %q id does not match its triple hash", m.Name)
			}
		}
	})
}
