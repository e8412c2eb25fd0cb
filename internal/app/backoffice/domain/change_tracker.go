package domain

// Collection names tracked for persistence.
const (
	CollectionProducts      = "products"
	CollectionSales         = "sales"
	CollectionNotifications = "notifications"
	CollectionUsers         = "users"
	CollectionSession       = "currentUser"
)

// ChangeTracker tracks which collections of the State have been replaced.
// The domain store writes exactly the dirty collections after an update.
type ChangeTracker struct {
	dirty map[string]bool
	order []string
}

// NewChangeTracker creates a new ChangeTracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{
		dirty: make(map[string]bool),
	}
}

// MarkDirty marks a collection as modified.
func (ct *ChangeTracker) MarkDirty(collection string) {
	if ct.dirty[collection] {
		return
	}
	ct.dirty[collection] = true
	ct.order = append(ct.order, collection)
}

// Dirty checks if a collection has been modified.
func (ct *ChangeTracker) Dirty(collection string) bool {
	return ct.dirty[collection]
}

// Clear clears all dirty markers.
func (ct *ChangeTracker) Clear() {
	ct.dirty = make(map[string]bool)
	ct.order = nil
}

// HasChanges returns true if any collection has been modified.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.order) > 0
}

// DirtyCollections returns the modified collections in the order they were first touched.
func (ct *ChangeTracker) DirtyCollections() []string {
	return append([]string(nil), ct.order...)
}
