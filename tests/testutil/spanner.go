package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pawfect-catalog/internal/models/m_breed"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_category"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_dog"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_health_condition"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_product"
)

const defaultTestDB = "projects/test-project/instances/test-instance/databases/pawfect-catalog-test"

// SetupSpannerTest creates a Spanner client against the emulator database
// and empties every table before and after the test.
func SetupSpannerTest(t *testing.T) *spanner.Client {
	t.Helper()

	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST is not set")
	}

	client, err := spanner.NewClient(context.Background(), GetTestSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")

	CleanDatabase(t, client)
	t.Cleanup(func() {
		CleanDatabase(t, client)
		client.Close()
	})
	return client
}

// GetTestSpannerDB returns PAWFECT_TEST_SPANNER_DATABASE or the emulator default.
func GetTestSpannerDB() string {
	if db := os.Getenv("PAWFECT_TEST_SPANNER_DATABASE"); db != "" {
		return db
	}
	return defaultTestDB
}

// CleanDatabase deletes all rows. Interleaved child tables go with their
// parents.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	mutations := []*spanner.Mutation{
		spanner.Delete(m_dog.TableName, spanner.AllKeys()),
		spanner.Delete(m_product.TableName, spanner.AllKeys()),
		spanner.Delete(m_category.TableName, spanner.AllKeys()),
		spanner.Delete(m_breed.TableName, spanner.AllKeys()),
		spanner.Delete(m_health_condition.TableName, spanner.AllKeys()),
	}

	_, err := client.Apply(context.Background(), mutations)
	require.NoError(t, err, "failed to clean database")
}

// AssertRowCount asserts the number of rows in a table.
func AssertRowCount(t *testing.T, client *spanner.Client, table string, expectedCount int) {
	t.Helper()

	stmt := spanner.Statement{SQL: fmt.Sprintf("SELECT COUNT(*) FROM %s", table)}
	iter := client.Single().Query(context.Background(), stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query row count")

	var count int64
	require.NoError(t, row.Columns(&count), "failed to parse count")
	require.Equal(t, int64(expectedCount), count, "unexpected row count in table %s", table)
}
