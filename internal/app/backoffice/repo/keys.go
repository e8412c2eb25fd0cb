package repo

import "github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"

// DefaultKeyPrefix namespaces every persisted collection.
const DefaultKeyPrefix = "erp_"

var collections = []string{
	domain.CollectionProducts,
	domain.CollectionSales,
	domain.CollectionNotifications,
	domain.CollectionUsers,
	domain.CollectionSession,
}

// Keys maps collection names to storage keys.
type Keys struct {
	prefix string
}

// NewKeys creates Keys for prefix. An empty prefix uses DefaultKeyPrefix.
func NewKeys(prefix string) Keys {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return Keys{prefix: prefix}
}

// Prefix returns the namespace prefix.
func (k Keys) Prefix() string { return k.prefix }

// For returns the storage key of collection.
func (k Keys) For(collection string) string {
	return k.prefix + collection
}

// All returns the storage keys of every collection in load order.
func (k Keys) All() []string {
	out := make([]string, 0, len(collections))
	for _, c := range collections {
		out = append(out, k.For(c))
	}
	return out
}
