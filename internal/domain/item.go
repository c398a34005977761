package domain

// Item is a catalog entry. Inventory records and recipe lines reference it by ID.
type Item struct {
	ID       int     `json:"id" validate:"gte=0,lte=2147483647"`
	Name     string  `json:"name" validate:"required,notblank,max=100"`
	Price    int     `json:"price" validate:"gte=0,lte=2147483647"`
	Category string  `json:"category" validate:"required,notblank,max=50"`
	Image    *string `json:"image"`
}

// IsNew reports whether the item has not been persisted yet
func (i Item) IsNew() bool {
	return i.ID == 0
}
