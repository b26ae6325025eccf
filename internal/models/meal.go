package models

// Meal is one entry in the meal catalog. IDs are assigned by the store.
type Meal struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
