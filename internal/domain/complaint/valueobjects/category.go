package valueobjects

import "fmt"

// Category is the complaint type assigned by the detector.
type Category string

const (
	CategoryDelay   Category = "delay"
	CategoryQuality Category = "quality"
	CategoryService Category = "service"
	CategoryBilling Category = "billing"
	CategoryGeneral Category = "general"
)

// CategoryTieBreakOrder is the fixed order used when two categories hold the
// same keyword count: the earlier category wins. This makes classification
// deterministic regardless of map iteration order.
var CategoryTieBreakOrder = []Category{
	CategoryDelay,
	CategoryQuality,
	CategoryService,
	CategoryBilling,
	CategoryGeneral,
}

var validCategories = map[Category]bool{
	CategoryDelay:   true,
	CategoryQuality: true,
	CategoryService: true,
	CategoryBilling: true,
	CategoryGeneral: true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid complaint category: %s", s)
	}
	return c, nil
}
