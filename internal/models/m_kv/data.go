package m_kv

import (
	"time"
)

// Data represents the database model for the kv_entries table.
// EntryValue holds the serialized collection as text so rows stay readable in the console.
type Data struct {
	EntryKey   string    `spanner:"entry_key"`
	EntryValue string    `spanner:"entry_value"`
	UpdatedAt  time.Time `spanner:"updated_at"`
}
