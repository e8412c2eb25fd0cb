package m_kv

// Field name constants for the kv_entries table.
const (
	TableName = "kv_entries"

	EntryKey   = "entry_key"
	EntryValue = "entry_value"
	UpdatedAt  = "updated_at"
)
