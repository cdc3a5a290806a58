package nutrition

// DayTotals accumulates what a user logged for one calendar day. Date is
// the client-supplied YYYY-MM-DD string; the backend treats it as opaque.
type DayTotals struct {
	UserID   string  `json:"-"`
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// FoodItem is one food returned by the nutrition lookup provider.
type FoodItem struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein_g"`
	Fat      float64 `json:"fat_total_g"`
	Carbs    float64 `json:"carbohydrates_total_g"`
}
