package pantry

// Item is a single pantry entry. Quantity and ExpiresAt are free-form
// strings; the client formats them.
type Item struct {
	ID        string `json:"id"`
	UserID    string `json:"-"`
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	ExpiresAt string `json:"expiresAt"`
}
