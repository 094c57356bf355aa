package model

// Incidence is a detected oversell: local available stock exceeds what the
// remote authoritative inventory reports.
type Incidence struct {
	ProductID       int64  `json:"product_id"`
	SKU             string `json:"sku"`
	LocalAvailable  int    `json:"local_available"`
	RemoteAvailable int    `json:"remote_available"`
	Difference      int    `json:"difference"`
}
