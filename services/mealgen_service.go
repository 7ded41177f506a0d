package services

import (
	"time"

	"github.com/google/uuid"
)

type MealTime string

const (
	Breakfast MealTime = "Breakfast"
	Lunch     MealTime = "Lunch"
	Dinner    MealTime = "Dinner"
)

// mealIDNamespace is fixed so that the same (date, meal time, dish) triple
// always hashes to the same id, across processes and across any other
// implementation of this scheme.
var mealIDNamespace = uuid.MustParse("1b671a64-40d5-491e-99b0-da01ff1f3341")

// Meal is recomputed on every read and never stored. Blocked reflects
// membership in the caller's blocked-id set at generation time. Rescheduled
// and OriginalDate are set only on copies moved to a later day by the plan
// reducer; they are transient annotations, not part of the meal's identity.
type Meal struct {
	ID           string   `json:"_id"`
	Name         string   `json:"name"`
	Type         DietType `json:"type"`
	MealTime     MealTime `json:"mealTime"`
	Blocked      bool     `json:"blocked"`
	Date         string   `json:"date"`
	Season       Season   `json:"season"`
	Rescheduled  bool     `json:"rescheduled,omitempty"`
	OriginalDate string   `json:"originalDate,omitempty"`
}

// GeneratedMeals partitions one day's six meals by diet type.
type GeneratedMeals struct {
	Veg    []Meal `json:"veg"`
	NonVeg []Meal `json:"nonVeg"`
}

const dateLayout = "2006-01-02"

// MealID derives the deterministic id for a (date, meal time, dish) triple
// as a version 5 UUID over "<date>-<mealTime>-<name>".
func MealID(date string, mealTime MealTime, name string) string {
	return uuid.NewSHA1(mealIDNamespace, []byte(date+"-"+string(mealTime)+"-"+name)).String()
}

// GenerateMealsForDate produces the full meal set for one calendar day:
// two breakfasts, lunch and dinner with one veg and one non-veg dish each.
// Selection rotates through the catalog by day of year, so a given date
// yields the same dishes every run. An unparseable date falls back to today
// rather than failing.
func GenerateMealsForDate(dateStr string, blockedMealIDs []string) GeneratedMeals {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		date = time.Now()
	}
	safeDateStr := date.Format(dateLayout)

	season := GetSeason(date)
	dayOfYear := date.YearDay()

	seasonData := SeasonalDishes[season]
	breakfastPool := BreakfastDishes()

	blocked := make(map[string]struct{}, len(blockedMealIDs))
	for _, id := range blockedMealIDs {
		blocked[id] = struct{}{}
	}

	createMeal := func(name string, dietType DietType, mealTime MealTime) Meal {
		id := MealID(safeDateStr, mealTime, name)
		_, isBlocked := blocked[id]
		return Meal{
			ID:       id,
			Name:     name,
			Type:     dietType,
			MealTime: mealTime,
			Blocked:  isBlocked,
			Date:     safeDateStr,
			Season:   season,
		}
	}

	meals := make([]Meal, 0, 6)

	// Breakfast: two consecutive rotation slots.
	b1 := breakfastPool[dayOfYear%len(breakfastPool)]
	b2 := breakfastPool[(dayOfYear+1)%len(breakfastPool)]
	meals = append(meals, createMeal(b1.Name, b1.Type, Breakfast))
	meals = append(meals, createMeal(b2.Name, b2.Type, Breakfast))

	// Lunch: one veg, one non-veg.
	meals = append(meals, createMeal(seasonData.Veg[dayOfYear%len(seasonData.Veg)], Veg, Lunch))
	meals = append(meals, createMeal(seasonData.NonVeg[dayOfYear%len(seasonData.NonVeg)], NonVeg, Lunch))

	// Dinner: same pools offset by 5 so lunch and dinner don't collide.
	meals = append(meals, createMeal(seasonData.Veg[(dayOfYear+5)%len(seasonData.Veg)], Veg, Dinner))
	meals = append(meals, createMeal(seasonData.NonVeg[(dayOfYear+5)%len(seasonData.NonVeg)], NonVeg, Dinner))

	var out GeneratedMeals
	for _, m := range meals {
		if m.Type == Veg {
			out.Veg = append(out.Veg, m)
		} else {
			out.NonVeg = append(out.NonVeg, m)
		}
	}
	return out
}
