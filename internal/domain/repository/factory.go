package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Products() ProductRepository
	Stock() StockLedger
	Orders() OrderRepository
	Proofs() PaymentProofRepository
	Users() UserRepository
}
