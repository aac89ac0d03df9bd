package restaurant

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Cuisine classifies a restaurant's kitchen for browsing and filtering.
type Cuisine int

const (
	CuisineUnknown Cuisine = iota
	CuisineItalian
	CuisineChinese
	CuisineIndian
	CuisineMalay
	CuisineJapanese
	CuisineKorean
	CuisineThai
	CuisineWestern
	CuisineFastFood
	CuisineSeafood
	CuisineVegetarian
	CuisineOther
)

func getValidCuisineStrings() map[Cuisine]string {
	//nolint:exhaustive // CuisineUnknown is intentionally excluded as it's invalid
	return map[Cuisine]string{
		CuisineItalian:    "ITALIAN",
		CuisineChinese:    "CHINESE",
		CuisineIndian:     "INDIAN",
		CuisineMalay:      "MALAY",
		CuisineJapanese:   "JAPANESE",
		CuisineKorean:     "KOREAN",
		CuisineThai:       "THAI",
		CuisineWestern:    "WESTERN",
		CuisineFastFood:   "FAST_FOOD",
		CuisineSeafood:    "SEAFOOD",
		CuisineVegetarian: "VEGETARIAN",
		CuisineOther:      "OTHER",
	}
}

// CuisineFromString parses the wire form used in request payloads.
func CuisineFromString(s string) (Cuisine, error) {
	for c, str := range getValidCuisineStrings() {
		if str == s {
			return c, nil
		}
	}
	return CuisineUnknown, errs.NewValueIsInvalidErrorWithCause(
		"cuisine",
		fmt.Errorf("%q is not a valid cuisine", s),
	)
}

// Validate rejects CuisineUnknown and out-of-range values.
func (c Cuisine) Validate() error {
	if _, ok := getValidCuisineStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"cuisine",
			fmt.Errorf("%d is not a valid cuisine", c),
		)
	}
	return nil
}

// String returns the wire form of the cuisine.
func (c Cuisine) String() string {
	if str, ok := getValidCuisineStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

// Category groups menu items inside a restaurant's menu.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryAppetizers
	CategoryMainCourse
	CategoryDesserts
	CategoryBeverages
	CategorySides
)

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[Category]string{
		CategoryAppetizers: "APPETIZERS",
		CategoryMainCourse: "MAIN_COURSE",
		CategoryDesserts:   "DESSERTS",
		CategoryBeverages:  "BEVERAGES",
		CategorySides:      "SIDES",
	}
}

// CategoryFromString parses the wire form used in request payloads.
func CategoryFromString(s string) (Category, error) {
	for c, str := range getValidCategoryStrings() {
		if str == s {
			return c, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("%q is not a valid category", s),
	)
}

// Validate rejects CategoryUnknown and out-of-range values.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"category",
			fmt.Errorf("%d is not a valid category", c),
		)
	}
	return nil
}

// String returns the wire form of the category.
func (c Category) String() string {
	if str, ok := getValidCategoryStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}
