package model

// StorePrice is one (store, price, distance) tuple attached to a product.
// Distance is miles from the active location to the store, shared by every
// product sold at that store.
type StorePrice struct {
	Store    string  `json:"store"`
	Price    float64 `json:"price"`
	Distance float64 `json:"distance"`
}

// Product is one catalog entry. Price tracks the minimum of StorePrices
// after any store-radius filtering; when filtering empties StorePrices the
// prior price is retained.
type Product struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Image       string       `json:"image"`
	Category    string       `json:"category"`
	Size        string       `json:"size"`
	Price       float64      `json:"price"`
	StorePrices []StorePrice `json:"store_prices"`
}
