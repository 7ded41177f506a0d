package services

import "strings"

type DietType string

const (
	Veg    DietType = "Veg"
	NonVeg DietType = "Non-Veg"
)

type Dish struct {
	Name string   `json:"name"`
	Type DietType `json:"type"`
}

// SeasonPool holds the lunch/dinner dish names for one season, split by
// diet type. Order matters: selection is by positional rotation.
type SeasonPool struct {
	Veg    []string
	NonVeg []string
}

var breakfastNames = []string{
	"Halwa Puri", "Anda Paratha", "Chana Puri", "Omelette Bread", "Aloo Paratha",
	"Nihari (Morning)", "Paye (Morning)", "Lassi & Paratha", "Fried Egg & Toast", "French Toast",
	"Sujee Halwa", "Qeema Paratha", "Cholai & Kulcha",
}

// BreakfastDishes returns the year-round breakfast rotation pool. Diet type
// is inferred from the dish name: meat-based breakfasts are the Qeema,
// Nihari and Paye ones.
func BreakfastDishes() []Dish {
	dishes := make([]Dish, 0, len(breakfastNames))
	for _, name := range breakfastNames {
		t := Veg
		if strings.Contains(name, "Qeema") || strings.Contains(name, "Nihari") || strings.Contains(name, "Paye") {
			t = NonVeg
		}
		dishes = append(dishes, Dish{Name: name, Type: t})
	}
	return dishes
}

// SeasonalDishes is the lunch/dinner catalog. Every season must have
// non-empty veg and non-veg pools; the generator indexes them modulo their
// length.
var SeasonalDishes = map[Season]SeasonPool{
	Winter: {
		Veg: []string{
			"Sarson Ka Saag", "Daal Tadka", "Palak Paneer", "Aloo Gobi", "Mix Sabzi",
			"Methi Aloo", "Gajar Matar", "Baingan Ka Bharta", "Rajma Masala", "Chana Masala",
		},
		NonVeg: []string{
			"Chicken Paya", "Mutton Karahi", "Beef Nihari", "Fish Fry", "Chapli Kabab",
			"Chicken Corn Soup", "Mutton Pulao", "Chicken Haleem", "Kunna Gosht", "Hareesa",
		},
	},
	Spring: {
		Veg: []string{
			"Palak Paneer", "Methi Aloo", "Bhindi Masala", "Karela Pyaz", "Tinda Masala",
			"Lauki Chana", "Aloo Baingan", "Shimla Mirch Aloo", "Daal Mash", "Kadhi Pakora",
		},
		NonVeg: []string{
			"Chicken Karahi", "Beef Korma", "Mutton Korma", "Chicken Biryani", "Chicken Tikka",
			"Seekh Kabab", "White Chicken Karahi", "Beef Pulao", "Chicken Handi", "Aloo Keema",
		},
	},
	Summer: {
		Veg: []string{
			"Bhindi Masala", "Corn Salad", "Tinda Fry", "Lauki Sabzi", "Torai Ki Sabzi",
			"Arvi Masala", "Daal Chawal", "Kadu Sharif", "Aloo Bhujia", "Bindi Pyaz",
		},
		NonVeg: []string{
			"Grilled Chicken", "Fish Tikka", "Chicken Ginger", "Lemon Chicken", "Beef Kabab",
			"Steam Roast", "Chicken Shashlik", "Mutton Chops", "Reshmi Kabab", "Chicken Hara Masala",
		},
	},
	Autumn: {
		Veg: []string{
			"Pumpkin Curry", "Mix Veg", "Daal Makhani", "Shalgam Palak", "Aloo Matar",
			"Gobhi Aloo", "Baingan Aloo", "Lobia Masala", "White Chana", "Masoor Daal",
		},
		NonVeg: []string{
			"Beef Nihari", "Chicken Korma", "Mutton Kunna", "Chicken Jalfrezi", "Beef Haleem",
			"Mutton Stew", "Chicken Achari", "Kofte Curry", "Pasanday", "Chicken Roast",
		},
	},
}
