package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/Vini9-9/api-quanto-foi/internal/models"
)

const (
	productsPath = "products"
	indicesPath  = "indices"

	// IndexSKU and IndexDate are the two secondary indexes maintained on
	// every create.
	IndexSKU  = "by_sku"
	IndexDate = "by_date"
)

// Adapter owns the physical layout of records and indexes inside the tree:
//
//	products/<id>              -> record fields
//	indices/by_sku/<sku>/<id>  -> true
//	indices/by_date/<date>/<id> -> true
type Adapter struct {
	tree Tree
}

func NewAdapter(tree Tree) *Adapter {
	return &Adapter{tree: tree}
}

// FetchAll returns every stored record keyed by id. An empty store yields an
// empty map. Entries that fail to decode are skipped and logged, never fatal.
func (a *Adapter) FetchAll(ctx context.Context) (map[string]models.Product, error) {
	var raw map[string]json.RawMessage
	if err := a.tree.Get(ctx, productsPath, &raw); err != nil {
		return nil, fmt.Errorf("fetch all products: %w", errors.Join(ErrStoreUnavailable, err))
	}

	products := make(map[string]models.Product, len(raw))
	for id, body := range raw {
		var p models.Product
		if err := json.Unmarshal(body, &p); err != nil {
			log.Printf("store: skipping malformed record %s: %v", id, err)
			continue
		}
		p.ID = id
		products[id] = p
	}
	return products, nil
}

// FetchByIndex resolves the id set under indices/<index>/<key> against the
// primary collection, preserving the index's key order. An absent index key
// is an empty result, not an error. Ids whose primary record is missing or
// malformed are skipped; the index may briefly run ahead of a reader's view.
func (a *Adapter) FetchByIndex(ctx context.Context, index, key string) ([]models.Product, error) {
	path := indicesPath + "/" + index + "/" + key
	var ids map[string]bool
	if err := a.tree.Get(ctx, path, &ids); err != nil {
		return nil, fmt.Errorf("fetch index %s/%s: %w", index, key, errors.Join(ErrStoreUnavailable, err))
	}
	if len(ids) == 0 {
		return nil, nil
	}

	ordered := make([]string, 0, len(ids))
	for id := range ids {
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)

	products := make([]models.Product, 0, len(ordered))
	for _, id := range ordered {
		p, err := a.FetchByID(ctx, id)
		if err != nil {
			log.Printf("store: index %s/%s references unusable record %s: %v", index, key, id, err)
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// FetchByID reads a single record. Returns ErrNotFound when the id has no
// record in the primary collection.
func (a *Adapter) FetchByID(ctx context.Context, id string) (models.Product, error) {
	var raw json.RawMessage
	if err := a.tree.Get(ctx, productsPath+"/"+id, &raw); err != nil {
		return models.Product{}, fmt.Errorf("fetch product %s: %w", id, errors.Join(ErrStoreUnavailable, err))
	}
	if len(raw) == 0 || string(raw) == "null" {
		return models.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	var p models.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.Product{}, fmt.Errorf("decode product %s: %w", id, err)
	}
	p.ID = id
	return p, nil
}

// Create allocates an id, then writes the record and one entry per index in
// a single multi-path update, so no index entry can exist without its record
// or the other way around.
func (a *Adapter) Create(ctx context.Context, fields models.ProductFields) (models.Product, error) {
	id, err := a.tree.Push(ctx, productsPath)
	if err != nil {
		return models.Product{}, fmt.Errorf("allocate id: %w", errors.Join(ErrStoreUnavailable, err))
	}

	rec := models.Product{
		Description:  fields.Description,
		SKU:          fields.SKU,
		Location:     fields.Location,
		Price:        fields.Price,
		PurchaseDate: fields.PurchaseDate,
	}

	writes := map[string]interface{}{
		productsPath + "/" + id:                                              rec,
		indicesPath + "/" + IndexSKU + "/" + fields.SKU + "/" + id:           true,
		indicesPath + "/" + IndexDate + "/" + fields.PurchaseDate + "/" + id: true,
	}
	if err := a.tree.Update(ctx, writes); err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", errors.Join(ErrStoreUnavailable, err))
	}

	rec.ID = id
	return rec, nil
}

// UpdateDescription rewrites the description of an existing record in place.
// The indexed fields (sku, date) stay immutable, so no index maintenance is
// needed here.
func (a *Adapter) UpdateDescription(ctx context.Context, id, description string) (models.Product, error) {
	if _, err := a.FetchByID(ctx, id); err != nil {
		return models.Product{}, err
	}
	writes := map[string]interface{}{
		productsPath + "/" + id + "/description": description,
	}
	if err := a.tree.Update(ctx, writes); err != nil {
		return models.Product{}, fmt.Errorf("update description %s: %w", id, errors.Join(ErrStoreUnavailable, err))
	}
	return a.FetchByID(ctx, id)
}

// Info probes the store for the health endpoint.
func (a *Adapter) Info(ctx context.Context) error {
	var raw json.RawMessage
	if err := a.tree.Get(ctx, "info", &raw); err != nil {
		return fmt.Errorf("health probe: %w", errors.Join(ErrStoreUnavailable, err))
	}
	return nil
}
