package services

import (
	"testing"
	"time"
)

func TestGetSeason(t *testing.T) {
	cases := map[time.Month]Season{
		time.January:   Winter,
		time.February:  Winter,
		time.March:     Spring,
		time.April:     Spring,
		time.May:       Spring,
		time.June:      Summer,
		time.July:      Summer,
		time.August:    Summer,
		time.September: Autumn,
		time.October:   Autumn,
		time.November:  Autumn,
		time.December:  Winter,
	}

	for month, want := range cases {
		date := time.Date(2026, month, 15, 0, 0, 0, 0, time.UTC)
		if got := GetSeason(date); got != want {
			t.Errorf("%s: expected %s, got %s", month, want, got)
		}
	}
}

func TestCatalogPools(t *testing.T) {
	t.Run("BreakfastPool", func(t *testing.T) {
		dishes := BreakfastDishes()
		if len(dishes) == 0 {
			t.Fatal("Breakfast pool is empty")
		}
		byName := map[string]DietType{}
		for _, d := range dishes {
			byName[d.Name] = d.Type
		}
		if byName["Qeema Paratha"] != NonVeg {
			t.Error("Qeema Paratha should be non-veg")
		}
		if byName["Nihari (Morning)"] != NonVeg {
			t.Error("Nihari (Morning) should be non-veg")
		}
		if byName["Halwa Puri"] != Veg {
			t.Error("Halwa Puri should be veg")
		}
	})

	t.Run("SeasonalPoolsNonEmpty", func(t *testing.T) {
		for _, season := range []Season{Winter, Spring, Summer, Autumn} {
			pool, ok := SeasonalDishes[season]
			if !ok {
				t.Fatalf("No pool for season %s", season)
			}
			if len(pool.Veg) == 0 || len(pool.NonVeg) == 0 {
				t.Errorf("%s: veg/non-veg pools must be non-empty (%d/%d)",
					season, len(pool.Veg), len(pool.NonVeg))
			}
		}
	})
}
