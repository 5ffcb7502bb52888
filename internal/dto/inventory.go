package dto

import "github.com/jekabolt/stockroom/internal/entity"

// LineItem is a purchase or sale line with the product it points to, when the
// product is still known to the store.
type LineItem struct {
	ProductID string          `json:"id"`
	UnitPrice entity.Amount   `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Product   *entity.Product `json:"product,omitempty"`
}

type Purchase struct {
	ID string `json:"_id"`
	entity.PurchaseInsert
	Items []LineItem `json:"productsPurchase"`
	entity.Timestamps
}

type Sale struct {
	ID string `json:"_id"`
	entity.SaleInsert
	Items []LineItem `json:"productsSale"`
	entity.Timestamps
}

// IndexProducts maps products by id.
func IndexProducts(products []entity.Product) map[string]entity.Product {
	idx := make(map[string]entity.Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}

// LineItemProductIds returns the distinct product ids referenced by items,
// in the order they first appear.
func LineItemProductIds(items ...[]entity.LineItem) []string {
	seen := map[string]struct{}{}
	ids := []string{}
	for _, li := range items {
		for _, i := range li {
			if _, ok := seen[i.ProductID]; ok {
				continue
			}
			seen[i.ProductID] = struct{}{}
			ids = append(ids, i.ProductID)
		}
	}
	return ids
}

func convertLineItems(items []entity.LineItem, products map[string]entity.Product) []LineItem {
	res := make([]LineItem, 0, len(items))
	for _, i := range items {
		li := LineItem{
			ProductID: i.ProductID,
			UnitPrice: i.UnitPrice,
			Quantity:  i.Quantity,
		}
		if p, ok := products[i.ProductID]; ok {
			li.Product = &p
		}
		res = append(res, li)
	}
	return res
}

func ConvertEntityPurchase(p *entity.Purchase, products map[string]entity.Product) Purchase {
	return Purchase{
		ID:             p.ID,
		PurchaseInsert: p.PurchaseInsert,
		Items:          convertLineItems(p.Items, products),
		Timestamps:     p.Timestamps,
	}
}

func ConvertEntityPurchases(ps []entity.Purchase, products map[string]entity.Product) []Purchase {
	res := make([]Purchase, 0, len(ps))
	for i := range ps {
		res = append(res, ConvertEntityPurchase(&ps[i], products))
	}
	return res
}

func ConvertEntitySale(s *entity.Sale, products map[string]entity.Product) Sale {
	return Sale{
		ID:         s.ID,
		SaleInsert: s.SaleInsert,
		Items:      convertLineItems(s.Items, products),
		Timestamps: s.Timestamps,
	}
}

func ConvertEntitySales(ss []entity.Sale, products map[string]entity.Product) []Sale {
	res := make([]Sale, 0, len(ss))
	for i := range ss {
		res = append(res, ConvertEntitySale(&ss[i], products))
	}
	return res
}

// ConvertEntityProducts never returns nil so an empty listing encodes as [].
func ConvertEntityProducts(ps []entity.Product) []entity.Product {
	if ps == nil {
		return []entity.Product{}
	}
	return ps
}
