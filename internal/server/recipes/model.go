package recipes

import "time"

// SavedRecipe is an AI-generated or user-saved recipe. ImageKey points at
// the object-storage key of the illustration; the API hands out presigned
// URLs instead of exposing the bucket.
type SavedRecipe struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Recipe    string    `json:"recipe"`
	ImageKey  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
