package m_kv

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the kv_entries table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut creates a mutation that fully overwrites the entry for data.EntryKey.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			EntryKey,
			EntryValue,
			UpdatedAt,
		},
		[]interface{}{
			data.EntryKey,
			data.EntryValue,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a mutation deleting a single entry.
func (m *Model) DeleteMut(key string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{key})
}
