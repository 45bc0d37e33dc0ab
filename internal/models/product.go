package models

// Product is one purchased-product entry.
// The id is the key in the remote tree: it is not written into the record
// body (omitempty keeps it out) and gets filled back in by the store layer
// when reading.
type Product struct {
	ID           string  `json:"id,omitempty"`
	Description  string  `json:"description"`
	SKU          string  `json:"sku"`
	Location     string  `json:"location"`
	Price        float64 `json:"price"`
	PurchaseDate string  `json:"purchaseDate"` // YYYY-MM-DD
}

// ProductFields carries the caller-supplied fields of a record before the
// store has assigned an id.
type ProductFields struct {
	Description  string
	SKU          string
	Location     string
	Price        float64
	PurchaseDate string
}
