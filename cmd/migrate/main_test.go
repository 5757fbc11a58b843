package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatabase(t *testing.T) {
	db, err := parseDatabase("projects/p1/instances/i1/databases/d1")
	require.NoError(t, err)
	assert.Equal(t, "projects/p1/instances/i1", db.instanceName())
	assert.Equal(t, "projects/p1/instances/i1/databases/d1", db.String())

	_, err = parseDatabase("projects/p1/databases/d1")
	assert.Error(t, err)
}

func TestDDLObject(t *testing.T) {
	tests := []struct {
		stmt string
		want string
	}{
		{"CREATE TABLE products (\n product_id STRING(36)) PRIMARY KEY (product_id)", "TABLE PRODUCTS"},
		{"create table `dogs`(dog_id STRING(36))", "TABLE DOGS"},
		{"CREATE UNIQUE NULL_FILTERED INDEX idx_name ON breeds(name)", "INDEX IDX_NAME"},
		{"CREATE INDEX idx_dogs_user ON dogs(user_id)", "INDEX IDX_DOGS_USER"},
		{"ALTER TABLE dogs ADD COLUMN image STRING(MAX)", ""},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ddlObject(tt.stmt))
		})
	}
}
