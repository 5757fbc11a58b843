package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/browse_catalog"
)

// userHeader carries the signed-in shopper's id.
const userHeader = "X-User-ID"

func userID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(userHeader))
}

// browseRequest reads the shopper's criteria from the query string.
// Criteria left out keep their defaults.
func browseRequest(r *http.Request) (*browse_catalog.Request, error) {
	q := r.URL.Query()
	req := &browse_catalog.Request{
		Breed:   strings.TrimSpace(q.Get("breed")),
		Vendors: vendors(q),
		UserID:  userID(r),
		DogID:   strings.TrimSpace(q.Get("dog_id")),
	}

	var err error
	if req.MinPrice, err = optionalPrice(q, "min_price"); err != nil {
		return nil, err
	}
	if req.MaxPrice, err = optionalPrice(q, "max_price"); err != nil {
		return nil, err
	}
	if req.Size, err = domain.ParseSizeCategory(q.Get("size")); err != nil {
		return nil, err
	}
	if s := q.Get("sort"); s != "" {
		if req.Sort, err = domain.ParseSortKey(s); err != nil {
			return nil, err
		}
	}
	if s := q.Get("promo_only"); s != "" {
		promo, perr := strconv.ParseBool(s)
		if perr != nil {
			verr := domain.NewValidationError()
			verr.Add("promo_only", "must be true or false")
			return nil, verr
		}
		req.PromotionalOnly = promo
	}
	return req, nil
}

func optionalPrice(q url.Values, key string) (*float64, error) {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}
	return &v, nil
}

// vendors accepts both repeated vendor params and comma separated lists.
func vendors(q url.Values) []string {
	var out []string
	for _, raw := range q["vendor"] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
