package m_category

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Table and field name constants for categories.
const (
	TableName = "categories"

	CategoryID  = "category_id"
	Name        = "name"
	Description = "description"
	Icon        = "icon"
	CreatedAt   = "created_at"
)

// Data is one category row.
type Data struct {
	CategoryID  string             `spanner:"category_id"`
	Name        string             `spanner:"name"`
	Description spanner.NullString `spanner:"description"`
	Icon        string             `spanner:"icon"`
	CreatedAt   time.Time          `spanner:"created_at"`
}

// Model provides mutations for categories.
type Model struct{}

// NewModel creates a new category model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a category.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName,
		[]string{CategoryID, Name, Description, Icon, CreatedAt},
		[]interface{}{data.CategoryID, data.Name, data.Description, data.Icon, spanner.CommitTimestamp},
	)
}

// ReadColumns returns the category columns.
func (m *Model) ReadColumns() []string {
	return []string{CategoryID, Name, Description, Icon, CreatedAt}
}
