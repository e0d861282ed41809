package model

type InventoryItem struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	MinThreshold int    `json:"minThreshold"`
	Unit         string `json:"unit"`
	Branch       string `json:"branch"`
}

// LowStock reports whether the item is at or below its reorder threshold.
// Equality counts as low stock; both the branch stats and the alert feed
// rely on this boundary being inclusive.
func (i InventoryItem) LowStock() bool {
	return i.Quantity <= i.MinThreshold
}
