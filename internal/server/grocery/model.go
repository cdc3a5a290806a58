package grocery

// Item is a grocery-list entry. Bought flips when the user checks it off.
type Item struct {
	ID       string `json:"id"`
	UserID   string `json:"-"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Bought   bool   `json:"bought"`
}
