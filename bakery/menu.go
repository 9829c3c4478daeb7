package bakery

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Category groups menu items for the category filter.
type Category string

const (
	CategoryAll    Category = "all"
	CategoryBread  Category = "bread"
	CategoryPastry Category = "pastry"
	CategoryCake   Category = "cake"
)

// Categories lists the filterable categories, excluding CategoryAll.
var Categories = []Category{CategoryBread, CategoryPastry, CategoryCake}

// MenuItem is the suite's model of one row of the menu table.
type MenuItem struct {
	// Ref is the 1-based position used in the row's identifiers.
	Ref      int
	Name     string
	Category Category
	Price    Money
}

// Menu is the menu the application is expected to list, in display order.
var Menu = []MenuItem{
	{Ref: 1, Name: "Butter Croissant", Category: CategoryPastry, Price: Cents(2, 50)},
	{Ref: 2, Name: "French Baguette", Category: CategoryBread, Price: Cents(3, 25)},
	{Ref: 3, Name: "Sourdough Loaf", Category: CategoryBread, Price: Cents(5, 75)},
	{Ref: 4, Name: "Blueberry Muffin", Category: CategoryPastry, Price: Cents(3, 0)},
	{Ref: 5, Name: "Chocolate Cake Slice", Category: CategoryCake, Price: Cents(4, 0)},
	{Ref: 6, Name: "Cinnamon Roll", Category: CategoryPastry, Price: Cents(3, 50)},
	{Ref: 7, Name: "Strawberry Cheesecake", Category: CategoryCake, Price: Cents(4, 75)},
	{Ref: 8, Name: "Rye Bread", Category: CategoryBread, Price: Cents(4, 50)},
}

// Item returns the menu item with the given ref.
func Item(ref int) (MenuItem, error) {
	item, ok := lo.Find(Menu, func(i MenuItem) bool { return i.Ref == ref })
	if !ok {
		return MenuItem{}, fmt.Errorf("no menu item with ref %d", ref)
	}
	return item, nil
}

// MustItem is Item for refs known at compile time.
func MustItem(ref int) MenuItem {
	item, err := Item(ref)
	if err != nil {
		panic(err)
	}
	return item
}

// SearchRefs predicts which rows stay visible for a search query. Matching is
// a case-insensitive substring match on the item name.
func SearchRefs(query string) []int {
	q := strings.ToLower(query)
	return lo.FilterMap(Menu, func(i MenuItem, _ int) (int, bool) {
		return i.Ref, strings.Contains(strings.ToLower(i.Name), q)
	})
}

// FilterRefs predicts which rows stay visible for a category filter.
func FilterRefs(c Category) []int {
	return lo.FilterMap(Menu, func(i MenuItem, _ int) (int, bool) {
		return i.Ref, c == CategoryAll || i.Category == c
	})
}

// AllRefs returns every menu ref in display order.
func AllRefs() []int {
	return lo.Map(Menu, func(i MenuItem, _ int) int { return i.Ref })
}
