package models

// Horse is a runner in the generated pool. Condition drives its speed distribution.
type Horse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Condition int    `json:"condition"`
}

const (
	MinCondition = 1
	MaxCondition = 100
)

// ValidCondition reports whether c is inside the 1-100 condition range.
func ValidCondition(c int) bool {
	return c >= MinCondition && c <= MaxCondition
}
