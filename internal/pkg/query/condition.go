package query

import (
	"fmt"
	"strings"
)

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
// Example: Eq("category_id", "toys") generates "category_id = @p0"
func Eq(field string, value interface{}) Condition {
	return &eqCondition{field: field, value: value}
}

func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s = @%s", c.field, paramName), map[string]interface{}{paramName: c.value}
}

// lowerEqCondition compares a lowercased column to a lowercased value.
type lowerEqCondition struct {
	field string
	value string
}

// LowerEq creates a case-insensitive equality condition.
// Example: LowerEq("category_id", "Toys") generates "LOWER(category_id) = @p0" with p0 = "toys"
func LowerEq(field, value string) Condition {
	return &lowerEqCondition{field: field, value: strings.ToLower(value)}
}

func (c *lowerEqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("LOWER(%s) = @%s", c.field, paramName), map[string]interface{}{paramName: c.value}
}

// containsCondition implements a case-insensitive substring match.
type containsCondition struct {
	field  string
	needle string
}

// Contains creates a case-insensitive substring condition, the Spanner
// equivalent of ILIKE '%needle%'. LIKE wildcards in needle are escaped.
// Example: Contains("name", "Lab") generates "LOWER(name) LIKE @p0" with p0 = "%lab%"
func Contains(field, needle string) Condition {
	return &containsCondition{field: field, needle: needle}
}

func (c *containsCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	pattern := "%" + EscapeLike(strings.ToLower(c.needle)) + "%"
	return fmt.Sprintf("LOWER(%s) LIKE @%s", c.field, paramName), map[string]interface{}{paramName: pattern}
}

// EscapeLike escapes the LIKE metacharacters %, _ and the backslash itself.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// IsNull creates a WHERE condition for NULL checks.
// Example: IsNull("black_friday_price") generates "black_friday_price IS NULL"
func IsNull(field string) Condition {
	return &isNullCondition{field: field}
}

type isNullCondition struct {
	field string
}

func (c *isNullCondition) SQL(int) (string, map[string]interface{}) {
	return fmt.Sprintf("%s IS NULL", c.field), map[string]interface{}{}
}
