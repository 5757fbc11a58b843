package list_admin_products

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/catalog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/repo"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/clock"
)

func ptr[T any](v T) *T { return &v }

func TestQuery_Execute(t *testing.T) {
	store := repo.NewMemoryStore(clock.NewSteppingClock(time.Date(2024, 11, 29, 0, 0, 0, 0, time.UTC), time.Minute))
	store.InsertRaw(domain.RawProduct{ID: "a", Name: ptr("Salmon Kibble"), CategoryID: ptr("food"), Vendor: ptr("Acme")})
	store.InsertRaw(domain.RawProduct{ID: "b", Name: ptr("Rope"), Description: ptr("Tough salmon coloured rope"), CategoryID: ptr("toys")})
	store.InsertRaw(domain.RawProduct{ID: "c", Name: ptr("Bed"), CategoryID: ptr("beds"), Vendor: ptr("SleepyPaws")})

	q := NewQuery(catalog.NewFetcher(store, zap.NewNop(), ""))

	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{"everything newest first", Request{}, []string{"c", "b", "a"}},
		{"search in name and description", Request{Search: "SALMON"}, []string{"b", "a"}},
		{"search in vendor", Request{Search: "sleepy"}, []string{"c"}},
		{"category", Request{CategoryID: "Toys"}, []string{"b"}},
		{"category all", Request{CategoryID: "all"}, []string{"c", "b", "a"}},
		{"search and category", Request{Search: "salmon", CategoryID: "food"}, []string{"a"}},
		{"no match", Request{Search: "zzz"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := q.Execute(context.Background(), &tt.req)
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
