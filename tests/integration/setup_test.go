//go:build integration

package integration

import (
	"testing"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/repo"
	"github.com/light-bringer/pawfect-catalog/internal/config"
	"github.com/light-bringer/pawfect-catalog/internal/services"
	"github.com/light-bringer/pawfect-catalog/tests/testutil"
)

func setupStores(t *testing.T) (*spanner.Client, services.Stores) {
	t.Helper()
	client := testutil.SetupSpannerTest(t)
	return client, services.SpannerStores(client, config.Fetch{
		RetryAttempts: repo.DefaultRetryAttempts,
		RetryDelay:    10 * time.Millisecond,
	})
}
