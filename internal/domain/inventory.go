package domain

// InventoryRecord is the on-hand quantity of one item.
// A record with Amount <= 0 is never stored.
type InventoryRecord struct {
	ItemID int `json:"itemId" validate:"gt=0"`
	Amount int `json:"amount"`
}

// Snapshot maps item IDs to on-hand amounts. Absent items count as zero.
type Snapshot map[int]int

// NewSnapshot builds a snapshot from stored inventory records
func NewSnapshot(records []InventoryRecord) Snapshot {
	s := make(Snapshot, len(records))
	for _, r := range records {
		s[r.ItemID] += r.Amount
	}
	return s
}

// Amount returns the on-hand amount for an item, zero if absent
func (s Snapshot) Amount(itemID int) int {
	return s[itemID]
}

// Records converts the snapshot back into positive inventory records
func (s Snapshot) Records() []InventoryRecord {
	records := make([]InventoryRecord, 0, len(s))
	for id, amount := range s {
		if amount > 0 {
			records = append(records, InventoryRecord{ItemID: id, Amount: amount})
		}
	}
	return records
}
