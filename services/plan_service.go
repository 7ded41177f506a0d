package services

import "time"

// PlanDay is one day of a multi-day plan. Plans are derived from the
// generator on demand and held in memory only.
type PlanDay struct {
	Date  string `json:"date"`
	Meals []Meal `json:"meals"`
}

// BuildPlan generates an ordered plan of consecutive days starting at
// start, using the caller's blocked-id set for every day.
func BuildPlan(start time.Time, days int, blockedMealIDs []string) []PlanDay {
	plan := make([]PlanDay, 0, days)
	for i := 0; i < days; i++ {
		dateStr := start.AddDate(0, 0, i).Format(dateLayout)
		generated := GenerateMealsForDate(dateStr, blockedMealIDs)
		meals := make([]Meal, 0, len(generated.Veg)+len(generated.NonVeg))
		meals = append(meals, generated.Veg...)
		meals = append(meals, generated.NonVeg...)
		plan = append(plan, PlanDay{Date: dateStr, Meals: meals})
	}
	return plan
}

// ToggleBlock flips the blocked state of the meal with the given id and
// reschedules it when that flip is a block. A meal blocked on any day but
// the last is moved to the next day as an unblocked copy carrying
// Rescheduled and OriginalDate; a meal blocked on the last day stays put,
// just marked blocked. Unblocking is a plain flag flip and never moves the
// meal or clears its provenance markers. An id not present in the plan
// leaves it untouched. The input plan is not modified; total meal count is
// conserved.
func ToggleBlock(plan []PlanDay, mealID string) []PlanDay {
	updated := make([]PlanDay, len(plan))
	for i, day := range plan {
		meals := make([]Meal, len(day.Meals))
		copy(meals, day.Meals)
		for j := range meals {
			if meals[j].ID == mealID {
				meals[j].Blocked = !meals[j].Blocked
			}
		}
		updated[i] = PlanDay{Date: day.Date, Meals: meals}
	}

	// Move freshly blocked meals forward one day. A moved copy arrives
	// unblocked, so it is not picked up again on the next iteration.
	for i := range updated {
		if i == len(updated)-1 {
			break
		}
		var moved *Meal
		for _, m := range updated[i].Meals {
			if m.ID == mealID && m.Blocked {
				c := m
				moved = &c
				break
			}
		}
		if moved == nil {
			continue
		}
		moved.Blocked = false
		moved.Rescheduled = true
		moved.OriginalDate = updated[i].Date

		kept := make([]Meal, 0, len(updated[i].Meals)-1)
		for _, m := range updated[i].Meals {
			if m.ID != mealID {
				kept = append(kept, m)
			}
		}
		updated[i].Meals = kept
		updated[i+1].Meals = append(updated[i+1].Meals, *moved)
	}

	return updated
}
