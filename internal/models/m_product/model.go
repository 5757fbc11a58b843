package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a product.
// Both timestamps are set to the commit timestamp.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, append(m.values(data), spanner.CommitTimestamp, spanner.CommitTimestamp))
}

// UpdateMut creates a Spanner mutation that overwrites every editable column.
// created_at is left untouched; updated_at is set to the commit timestamp.
func (m *Model) UpdateMut(data *Data) *spanner.Mutation {
	cols := append(append([]string(nil), Columns[:len(Columns)-2]...), UpdatedAt)
	return spanner.Update(TableName, cols, append(m.values(data), spanner.CommitTimestamp))
}

// DeleteMut creates a Spanner mutation for deleting a product.
// Interleaved relation rows are removed by ON DELETE CASCADE.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}

// values returns the column values in Columns order, without the timestamps.
func (m *Model) values(d *Data) []interface{} {
	return []interface{}{
		d.ProductID,
		d.Name,
		d.Description,
		d.Price,
		d.Rating,
		d.Popularity,
		d.Discount,
		d.Vendor,
		d.CategoryID,
		d.Image,
		d.AdditionalImages,
		d.Tags,
		d.Ingredients,
		d.NutritionalInfo,
		d.Features,
		d.SafetyWarnings,
		d.AffiliateType,
		d.AffiliateLink,
		d.IsBlackFriday,
		d.BlackFridayPrice,
		d.PromotionType,
	}
}
