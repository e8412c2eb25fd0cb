package domain

// State is the whole back-office dataset held by the domain store.
// Collections are replaced wholesale; every replacement marks the
// collection dirty so it is persisted once at the end of the update.
type State struct {
	products      []Product
	sales         []Sale
	notifications []Notification
	users         []User
	session       *User

	changes *ChangeTracker
}

// NewState creates a State from loaded collections. Nothing is marked dirty.
func NewState(products []Product, sales []Sale, notifications []Notification, users []User, session *User) *State {
	st := &State{changes: NewChangeTracker()}
	st.products = cloneProducts(products)
	st.sales = cloneSales(sales)
	st.notifications = cloneNotifications(notifications)
	st.users = cloneUsers(users)
	st.session = cloneUser(session)
	return st
}

// Clone returns a deep copy with a fresh change tracker.
func (s *State) Clone() *State {
	return NewState(s.products, s.sales, s.notifications, s.users, s.session)
}

// Changes exposes the collection change tracker.
func (s *State) Changes() *ChangeTracker { return s.changes }

// Getters return copies; callers cannot mutate the state through them.
func (s *State) Products() []Product           { return cloneProducts(s.products) }
func (s *State) Sales() []Sale                 { return cloneSales(s.sales) }
func (s *State) Notifications() []Notification { return cloneNotifications(s.notifications) }
func (s *State) Users() []User                 { return cloneUsers(s.users) }
func (s *State) Session() *User                { return cloneUser(s.session) }

// ReplaceProducts swaps in a new product collection.
func (s *State) ReplaceProducts(products []Product) {
	s.products = cloneProducts(products)
	s.changes.MarkDirty(CollectionProducts)
}

// AppendSale adds a sale at the end of the sales collection.
func (s *State) AppendSale(sale Sale) {
	s.sales = append(s.sales, sale.clone())
	s.changes.MarkDirty(CollectionSales)
}

// ReplaceNotifications swaps in a new notification collection.
func (s *State) ReplaceNotifications(notifications []Notification) {
	s.notifications = cloneNotifications(notifications)
	s.changes.MarkDirty(CollectionNotifications)
}

// PrependNotifications inserts notifications newest-first in front of the
// existing ones: the last argument ends up at index 0.
func (s *State) PrependNotifications(emitted ...Notification) {
	if len(emitted) == 0 {
		return
	}

	merged := make([]Notification, 0, len(emitted)+len(s.notifications))
	for i := len(emitted) - 1; i >= 0; i-- {
		merged = append(merged, emitted[i])
	}
	merged = append(merged, s.notifications...)

	s.notifications = merged
	s.changes.MarkDirty(CollectionNotifications)
}

// ReplaceUsers swaps in a new user collection.
func (s *State) ReplaceUsers(users []User) {
	s.users = cloneUsers(users)
	s.changes.MarkDirty(CollectionUsers)
}

// SetSession sets (or with nil, clears) the signed-in user.
func (s *State) SetSession(user *User) {
	s.session = cloneUser(user)
	s.changes.MarkDirty(CollectionSession)
}

// FindProduct returns the product with id.
func (s *State) FindProduct(id string) (Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FindUser returns the user with id.
func (s *State) FindUser(id string) (User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

func cloneProducts(in []Product) []Product {
	out := make([]Product, len(in))
	copy(out, in)
	return out
}

func cloneSales(in []Sale) []Sale {
	out := make([]Sale, len(in))
	for i, sale := range in {
		out[i] = sale.clone()
	}
	return out
}

func cloneNotifications(in []Notification) []Notification {
	out := make([]Notification, len(in))
	copy(out, in)
	return out
}

func cloneUsers(in []User) []User {
	out := make([]User, len(in))
	copy(out, in)
	return out
}

func cloneUser(u *User) *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
