package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/errors"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type productRepository struct {
	storage *Storage
}

type stockRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type proofRepository struct {
	storage *Storage
}

type userRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Stock() repository.StockLedger {
	return &stockRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Proofs() repository.PaymentProofRepository {
	return &proofRepository{storage: s}
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            is_admin BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            sku TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL,
            price_cents BIGINT NOT NULL,
            available INTEGER NOT NULL DEFAULT 0 CHECK (available >= 0),
            reserved INTEGER NOT NULL DEFAULT 0 CHECK (reserved >= 0),
            active BOOLEAN NOT NULL DEFAULT TRUE,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            address_id BIGINT,
            total_cents BIGINT NOT NULL,
            status TEXT NOT NULL,
            expires_at TIMESTAMPTZ NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            order_id BIGINT NOT NULL REFERENCES orders(id),
            product_id BIGINT NOT NULL REFERENCES products(id),
            quantity INTEGER NOT NULL CHECK (quantity > 0),
            price_cents BIGINT NOT NULL,
            PRIMARY KEY (order_id, product_id)
        )`,
		`CREATE TABLE IF NOT EXISTS payment_proofs (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            status TEXT NOT NULL DEFAULT 'pending',
            file_key TEXT NOT NULL,
            admin_notes TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_expiry ON orders(status, expires_at)`,
		`CREATE INDEX IF NOT EXISTS idx_proofs_order ON payment_proofs(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- stock ledger primitives ---
//
// Every mutation locks the product row first and computes the new counters
// from the locked values. The clamps in confirm/release tolerate duplicate
// invocations without driving a counter negative.

func (s *Storage) lockStockTx(ctx context.Context, tx pgx.Tx, productID int64) (available, reserved int, err error) {
	const query = `SELECT available, reserved FROM products WHERE id=$1 FOR UPDATE`
	err = tx.QueryRow(ctx, query, productID).Scan(&available, &reserved)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, domainErrors.ErrNotFound
		}
		return 0, 0, err
	}
	return available, reserved, nil
}

func (s *Storage) writeStockTx(ctx context.Context, tx pgx.Tx, productID int64, available, reserved int) error {
	const query = `UPDATE products SET available=$2, reserved=$3, updated_at=NOW() WHERE id=$1`
	_, err := tx.Exec(ctx, query, productID, available, reserved)
	return err
}

func (s *Storage) reserveTx(ctx context.Context, tx pgx.Tx, productID int64, qty int) error {
	available, reserved, err := s.lockStockTx(ctx, tx, productID)
	if err != nil {
		return err
	}
	if available < qty {
		return &domainErrors.InsufficientStockError{ProductID: productID, Requested: qty, Available: available}
	}
	return s.writeStockTx(ctx, tx, productID, available-qty, reserved+qty)
}

func (s *Storage) confirmTx(ctx context.Context, tx pgx.Tx, productID int64, qty int) error {
	available, reserved, err := s.lockStockTx(ctx, tx, productID)
	if err != nil {
		return err
	}
	toConfirm := min(reserved, qty)
	if toConfirm == 0 {
		return nil
	}
	return s.writeStockTx(ctx, tx, productID, available, reserved-toConfirm)
}

func (s *Storage) releaseTx(ctx context.Context, tx pgx.Tx, productID int64, qty int) error {
	available, reserved, err := s.lockStockTx(ctx, tx, productID)
	if err != nil {
		return err
	}
	toRelease := min(reserved, qty)
	if toRelease == 0 {
		return nil
	}
	return s.writeStockTx(ctx, tx, productID, available+toRelease, reserved-toRelease)
}

func (s *Storage) reconcileTx(ctx context.Context, tx pgx.Tx, productID int64, remoteAvailable int) error {
	available, reserved, err := s.lockStockTx(ctx, tx, productID)
	if err != nil {
		return err
	}
	if remoteAvailable < 0 {
		remoteAvailable = 0
	}
	// Only ever lower the local value toward the remote truth; raising it
	// could mask a genuine remote stockout.
	if remoteAvailable >= available {
		return nil
	}
	return s.writeStockTx(ctx, tx, productID, remoteAvailable, reserved)
}

// --- StockLedger implementation ---

func (r *stockRepository) Reserve(ctx context.Context, productID int64, qty int) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return r.storage.reserveTx(ctx, tx, productID, qty)
	})
}

func (r *stockRepository) Confirm(ctx context.Context, productID int64, qty int) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return r.storage.confirmTx(ctx, tx, productID, qty)
	})
}

func (r *stockRepository) Release(ctx context.Context, productID int64, qty int) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return r.storage.releaseTx(ctx, tx, productID, qty)
	})
}

func (r *stockRepository) Reconcile(ctx context.Context, productID int64, remoteAvailable int) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return r.storage.reconcileTx(ctx, tx, productID, remoteAvailable)
	})
}

// --- ProductRepository implementation ---

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT id, sku, name, price_cents, available, reserved, active, updated_at
                   FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.SKU, &p.Name, &p.PriceCents, &p.Available, &p.Reserved, &p.Active, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) ListReconcilable(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT id, sku, name, price_cents, available, reserved, active, updated_at
                   FROM products WHERE active AND available > 0 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.PriceCents, &p.Available, &p.Reserved, &p.Active, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, userID int64, addressID *int64, items []repository.NewOrderItem, expiresAt time.Time) (*model.Order, error) {
	// Fixed ascending product id lock order keeps concurrent multi-item
	// checkouts deadlock free.
	sorted := make([]repository.NewOrderItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })

	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var totalCents int64
		lines := make([]model.OrderItem, 0, len(sorted))

		for _, item := range sorted {
			const lockQuery = `SELECT price_cents, available, reserved, active FROM products WHERE id=$1 FOR UPDATE`
			var (
				priceCents          int64
				available, reserved int
				active              bool
			)
			if err := tx.QueryRow(ctx, lockQuery, item.ProductID).Scan(&priceCents, &available, &reserved, &active); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domainErrors.ErrNotFound
				}
				return err
			}
			if !active {
				return domainErrors.ErrProductInactive
			}
			if available < item.Quantity {
				return &domainErrors.InsufficientStockError{ProductID: item.ProductID, Requested: item.Quantity, Available: available}
			}
			if err := r.storage.writeStockTx(ctx, tx, item.ProductID, available-item.Quantity, reserved+item.Quantity); err != nil {
				return err
			}
			totalCents += priceCents * int64(item.Quantity)
			lines = append(lines, model.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity, PriceCents: priceCents})
		}

		const insertOrder = `INSERT INTO orders (user_id, address_id, total_cents, status, expires_at)
                             VALUES ($1, $2, $3, $4, $5)
                             RETURNING id, created_at, updated_at`
		o := model.Order{
			UserID:     userID,
			AddressID:  addressID,
			TotalCents: totalCents,
			Status:     model.OrderStatusPendingPayment,
			ExpiresAt:  expiresAt,
		}
		if err := tx.QueryRow(ctx, insertOrder, userID, addressID, totalCents, model.OrderStatusPendingPayment, expiresAt).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, quantity, price_cents) VALUES ($1, $2, $3, $4)`
		for i := range lines {
			lines[i].OrderID = o.ID
			if _, err := tx.Exec(ctx, insertItem, o.ID, lines[i].ProductID, lines[i].Quantity, lines[i].PriceCents); err != nil {
				return err
			}
		}
		o.Items = lines
		order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, user_id, address_id, total_cents, status, expires_at, created_at, updated_at
                   FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.UserID, &o.AddressID, &o.TotalCents, &o.Status, &o.ExpiresAt, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	const itemsQuery = `SELECT order_id, product_id, quantity, price_cents
                        FROM order_items WHERE order_id=$1 ORDER BY product_id`
	rows, err := r.storage.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.OrderID, &item.ProductID, &item.Quantity, &item.PriceCents); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT id, user_id, address_id, total_cents, status, expires_at, created_at, updated_at
                   FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *orderRepository) ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	const query = `SELECT id, user_id, address_id, total_cents, status, expires_at, created_at, updated_at
                   FROM orders WHERE status=$1 ORDER BY created_at LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, status, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]model.Order, error) {
	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.AddressID, &o.TotalCents, &o.Status, &o.ExpiresAt, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// transitionTx applies a guarded status change with its ledger side effects.
// The order row lock makes the guard and the mutation atomic, so a duplicate
// webhook or admin click finds the order already transitioned and is
// rejected before any ledger call.
func (s *Storage) transitionTx(ctx context.Context, tx pgx.Tx, orderID int64, to model.OrderStatus) (*model.Order, error) {
	const lockQuery = `SELECT id, user_id, address_id, total_cents, status, expires_at, created_at, updated_at
                       FROM orders WHERE id=$1 FOR UPDATE`
	var o model.Order
	err := tx.QueryRow(ctx, lockQuery, orderID).Scan(&o.ID, &o.UserID, &o.AddressID, &o.TotalCents, &o.Status, &o.ExpiresAt, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	from := o.Status
	if !model.CanTransition(from, to) {
		return nil, &domainErrors.InvalidTransitionError{OrderID: orderID, From: string(from), To: string(to)}
	}

	confirmStock := to == model.OrderStatusPaymentVerified
	releaseStock := (to == model.OrderStatusCancelled || to == model.OrderStatusRejected) && from.HoldsStock()

	if confirmStock || releaseStock {
		const itemsQuery = `SELECT product_id, quantity FROM order_items WHERE order_id=$1 ORDER BY product_id`
		rows, err := tx.Query(ctx, itemsQuery, orderID)
		if err != nil {
			return nil, err
		}
		items, err := scanItemQuantities(rows)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if confirmStock {
				err = s.confirmTx(ctx, tx, item.ProductID, item.Quantity)
			} else {
				err = s.releaseTx(ctx, tx, item.ProductID, item.Quantity)
			}
			if err != nil {
				return nil, err
			}
		}
		o.Items = items
	}

	const updateQuery = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`
	if _, err := tx.Exec(ctx, updateQuery, to, orderID); err != nil {
		return nil, err
	}
	o.Status = to
	return &o, nil
}

func scanItemQuantities(rows pgx.Rows) ([]model.OrderItem, error) {
	defer rows.Close()
	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderRepository) Transition(ctx context.Context, orderID int64, to model.OrderStatus) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		o, err := r.storage.transitionTx(ctx, tx, orderID, to)
		if err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) SweepExpired(ctx context.Context, now time.Time, limit int) (int, error) {
	const selectQuery = `SELECT id FROM orders
                         WHERE status=$1 AND expires_at < $2
                         ORDER BY expires_at
                         LIMIT $3
                         FOR UPDATE SKIP LOCKED`

	var cancelled int
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, model.OrderStatusPendingPayment, now, limit)
		if err != nil {
			return err
		}
		var ids []int64
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return err
			}
			ids = append(ids, id)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for _, id := range ids {
			if _, err := r.storage.transitionTx(ctx, tx, id, model.OrderStatusCancelled); err != nil {
				return err
			}
			cancelled++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return cancelled, nil
}

// --- PaymentProofRepository implementation ---

func (r *proofRepository) Create(ctx context.Context, orderID int64, fileKey string) (*model.PaymentProof, error) {
	var proof *model.PaymentProof
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := r.storage.transitionTx(ctx, tx, orderID, model.OrderStatusPaymentUploaded); err != nil {
			return err
		}

		const insertQuery = `INSERT INTO payment_proofs (order_id, file_key) VALUES ($1, $2)
                             RETURNING id, created_at, updated_at`
		p := model.PaymentProof{OrderID: orderID, Status: model.ProofStatusPending, FileKey: fileKey}
		if err := tx.QueryRow(ctx, insertQuery, orderID, fileKey).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return err
		}
		proof = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return proof, nil
}

func (r *proofRepository) GetByID(ctx context.Context, id int64) (*model.PaymentProof, error) {
	const query = `SELECT id, order_id, status, file_key, admin_notes, created_at, updated_at
                   FROM payment_proofs WHERE id=$1`
	var p model.PaymentProof
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.OrderID, &p.Status, &p.FileKey, &p.AdminNotes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *proofRepository) Resolve(ctx context.Context, proofID int64, approved bool, notes string) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockQuery = `SELECT order_id, status FROM payment_proofs WHERE id=$1 FOR UPDATE`
		var (
			orderID int64
			status  model.ProofStatus
		)
		if err := tx.QueryRow(ctx, lockQuery, proofID).Scan(&orderID, &status); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if status != model.ProofStatusPending {
			return domainErrors.ErrProofResolved
		}

		proofStatus := model.ProofStatusApproved
		orderStatus := model.OrderStatusPaymentVerified
		if !approved {
			proofStatus = model.ProofStatusRejected
			orderStatus = model.OrderStatusRejected
		}

		const updateQuery = `UPDATE payment_proofs SET status=$1, admin_notes=$2, updated_at=NOW() WHERE id=$3`
		if _, err := tx.Exec(ctx, updateQuery, proofStatus, notes, proofID); err != nil {
			return err
		}

		o, err := r.storage.transitionTx(ctx, tx, orderID, orderStatus)
		if err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, is_admin, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Admin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, is_admin, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Admin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
