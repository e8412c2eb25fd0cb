package query

import "fmt"

// Condition represents a WHERE clause condition.
// Implementations must generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, map[string]interface{})
}

// eqCondition implements equality comparison (field = value).
type eqCondition struct {
	field string
	value interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("entry_key", "erp_products") generates "entry_key = @p0"
func Eq(field string, value interface{}) Condition {
	return &eqCondition{
		field: field,
		value: value,
	}
}

func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s = @%s", c.field, paramName)
	return sql, map[string]interface{}{paramName: c.value}
}

// startsWithCondition implements STARTS_WITH(field, prefix).
type startsWithCondition struct {
	field  string
	prefix string
}

// StartsWith creates a WHERE condition matching string columns by prefix.
// Example: StartsWith("entry_key", "erp_") generates "STARTS_WITH(entry_key, @p0)"
func StartsWith(field string, prefix string) Condition {
	return &startsWithCondition{
		field:  field,
		prefix: prefix,
	}
}

func (c *startsWithCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("STARTS_WITH(%s, @%s)", c.field, paramName)
	return sql, map[string]interface{}{paramName: c.prefix}
}
