package dto

// IncidenceResponse describes a local/remote stock mismatch.
type IncidenceResponse struct {
	ProductID       int64  `json:"product_id"`
	SKU             string `json:"sku"`
	LocalAvailable  int    `json:"local_available"`
	RemoteAvailable int    `json:"remote_available"`
	Difference      int    `json:"difference"`
}

// SyncStockRequest selects the products to reconcile.
type SyncStockRequest struct {
	ProductIDs []int64 `json:"product_ids"`
}

// SyncStockResponse reports how many products were corrected.
type SyncStockResponse struct {
	Synced int `json:"synced"`
}
