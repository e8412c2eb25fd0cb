package repo

import (
	"encoding/json"
	"fmt"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// encodeCollection serialises one collection of st. A nil session encodes as
// a deletion (del=true) so that logging out removes the key.
func encodeCollection(st *domain.State, collection string) (value []byte, del bool, err error) {
	var v any
	switch collection {
	case domain.CollectionProducts:
		v = st.Products()
	case domain.CollectionSales:
		v = st.Sales()
	case domain.CollectionNotifications:
		v = st.Notifications()
	case domain.CollectionUsers:
		v = st.Users()
	case domain.CollectionSession:
		session := st.Session()
		if session == nil {
			return nil, true, nil
		}
		v = session
	default:
		return nil, false, fmt.Errorf("unknown collection %q", collection)
	}

	value, err = json.Marshal(v)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode %s: %w", collection, err)
	}
	return value, false, nil
}

// decodeSession parses a stored session. Records without an id are ignored.
func decodeSession(raw []byte) (*domain.User, error) {
	var u domain.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", domain.CollectionSession, err)
	}
	if u.ID == "" {
		return nil, nil
	}
	return &u, nil
}

func decodeList[T any](collection string, raw []byte) ([]T, error) {
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", collection, err)
	}
	return out, nil
}
