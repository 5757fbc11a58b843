package m_health_condition

import "cloud.google.com/go/spanner"

// Table and field name constants for health_conditions.
const (
	TableName = "health_conditions"

	HealthConditionID = "health_condition_id"
	Name              = "name"
)

// Data is one health condition lookup row.
type Data struct {
	HealthConditionID string `spanner:"health_condition_id"`
	Name              string `spanner:"name"`
}

// Model provides mutations for health_conditions.
type Model struct{}

// NewModel creates a new health condition model.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut inserts or replaces a health condition.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertOrUpdateStruct(TableName, data)
	return mut
}
