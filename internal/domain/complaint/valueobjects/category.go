package valueobjects

import "fmt"

type Category string

const (
	CategoryBug           Category = "BUG"
	CategoryDelay         Category = "DELAY"
	CategoryQuality       Category = "QUALITY"
	CategoryCommunication Category = "COMMUNICATION"
	CategoryOther         Category = "OTHER"
)

var validCategories = map[Category]bool{
	CategoryBug:           true,
	CategoryDelay:         true,
	CategoryQuality:       true,
	CategoryCommunication: true,
	CategoryOther:         true,
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}
