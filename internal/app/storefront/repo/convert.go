package repo

import (
	"math/big"
	"strconv"

	"cloud.google.com/go/spanner"
)

func strPtr(ns spanner.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.StringVal
	return &v
}

func nullString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}

func floatPtr(nf spanner.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	v := nf.Float64
	return &v
}

func nullFloat(p *float64) spanner.NullFloat64 {
	if p == nil {
		return spanner.NullFloat64{}
	}
	return spanner.NullFloat64{Float64: *p, Valid: true}
}

func intPtr(ni spanner.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	v := ni.Int64
	return &v
}

func nullInt(p *int64) spanner.NullInt64 {
	if p == nil {
		return spanner.NullInt64{}
	}
	return spanner.NullInt64{Int64: *p, Valid: true}
}

func boolPtr(nb spanner.NullBool) *bool {
	if !nb.Valid {
		return nil
	}
	v := nb.Bool
	return &v
}

func numericPtr(nn spanner.NullNumeric) *float64 {
	if !nn.Valid {
		return nil
	}
	v, _ := nn.Numeric.Float64()
	return &v
}

// nullNumeric stores v through its shortest decimal form, so 19.99 is
// written as 19.99 rather than its binary expansion.
func nullNumeric(p *float64) spanner.NullNumeric {
	if p == nil {
		return spanner.NullNumeric{}
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(*p, 'f', -1, 64))
	if !ok {
		return spanner.NullNumeric{}
	}
	return spanner.NullNumeric{Numeric: *r, Valid: true}
}
