package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/apperrors"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/model"
)

// BondRepository provides data access methods for the bond table.
// Dates are stored as YYYY-MM-DD text. Notes go through the optional
// NotesCipher so they can be encrypted at rest.
type BondRepository struct {
	db     *sql.DB
	cipher *NotesCipher
}

// NewBondRepository creates a new BondRepository with the provided database connection.
// cipher may be nil, in which case notes are stored in plain text.
func NewBondRepository(db *sql.DB, cipher *NotesCipher) *BondRepository {
	return &BondRepository{db: db, cipher: cipher}
}

const bondColumns = `
	id, bond_type, issuer_name, name, isin, cusip, coupon_rate,
	face_value_per_bond, purchase_price, quantity_purchased, payment_frequency,
	purchase_date, maturity_date, currency, notes, notes_encrypted
`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanBond maps one bond row to a model.Bond.
func (r *BondRepository) scanBond(row rowScanner) (model.Bond, error) {
	var b model.Bond
	var bondType, frequency, purchaseDateStr, maturityDateStr string
	var name, isin, cusip, notes sql.NullString
	var notesEncrypted bool

	err := row.Scan(
		&b.ID,
		&bondType,
		&b.IssuerName,
		&name,
		&isin,
		&cusip,
		&b.CouponRate,
		&b.FaceValuePerBond,
		&b.PurchasePrice,
		&b.QuantityPurchased,
		&frequency,
		&purchaseDateStr,
		&maturityDateStr,
		&b.Currency,
		&notes,
		&notesEncrypted,
	)
	if err != nil {
		return model.Bond{}, err
	}

	b.BondType = model.BondType(bondType)
	b.PaymentFrequency = model.PaymentFrequency(frequency)
	if !b.BondType.Valid() || !b.PaymentFrequency.Valid() {
		return model.Bond{}, fmt.Errorf("%w: bond %d has type %q and frequency %q",
			apperrors.ErrDataInconsistency, b.ID, bondType, frequency)
	}

	b.PurchaseDate, err = ParseTime(purchaseDateStr)
	if err != nil {
		return model.Bond{}, fmt.Errorf("failed to parse purchase date: %w", err)
	}
	b.MaturityDate, err = ParseTime(maturityDateStr)
	if err != nil {
		return model.Bond{}, fmt.Errorf("failed to parse maturity date: %w", err)
	}

	b.Name = name.String
	b.ISIN = isin.String
	b.CUSIP = cusip.String

	b.Notes, err = r.cipher.open(notes.String, notesEncrypted)
	if err != nil {
		return model.Bond{}, fmt.Errorf("%w: bond %d: %w", apperrors.ErrFailedToDecryptNotes, b.ID, err)
	}

	return b, nil
}

// GetBonds retrieves every bond, ordered by maturity date and then ID.
// Returns an empty slice when the table is empty.
func (r *BondRepository) GetBonds(ctx context.Context) ([]model.Bond, error) {
	query := `SELECT ` + bondColumns + ` FROM bond ORDER BY maturity_date ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bond table: %w", err)
	}
	defer rows.Close()

	bonds := []model.Bond{}
	for rows.Next() {
		b, err := r.scanBond(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bond table results: %w", err)
		}
		bonds = append(bonds, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bond table: %w", err)
	}

	return bonds, nil
}

// GetBond retrieves a single bond by ID.
// Returns apperrors.ErrBondNotFound when no bond has that ID.
func (r *BondRepository) GetBond(ctx context.Context, id int64) (model.Bond, error) {
	query := `SELECT ` + bondColumns + ` FROM bond WHERE id = ?`

	b, err := r.scanBond(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bond{}, fmt.Errorf("%w: %d", apperrors.ErrBondNotFound, id)
	}
	if err != nil {
		return model.Bond{}, fmt.Errorf("failed to get bond %d: %w", id, err)
	}

	return b, nil
}

// InsertBond stores a new bond and sets its generated ID.
func (r *BondRepository) InsertBond(ctx context.Context, b *model.Bond) error {
	notes, encrypted, err := r.cipher.seal(b.Notes)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO bond (
			bond_type, issuer_name, name, isin, cusip, coupon_rate,
			face_value_per_bond, purchase_price, quantity_purchased, payment_frequency,
			purchase_date, maturity_date, currency, notes, notes_encrypted
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		string(b.BondType),
		b.IssuerName,
		nullString(b.Name),
		nullString(b.ISIN),
		nullString(b.CUSIP),
		b.CouponRate,
		b.FaceValuePerBond,
		b.PurchasePrice,
		b.QuantityPurchased,
		string(b.PaymentFrequency),
		b.PurchaseDate.Format(dateLayout),
		b.MaturityDate.Format(dateLayout),
		b.Currency,
		nullString(notes),
		encrypted,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bond: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted bond id: %w", err)
	}
	b.ID = id

	return nil
}

// UpdateBond overwrites every column of an existing bond.
// Returns apperrors.ErrBondNotFound when no bond has b.ID.
func (r *BondRepository) UpdateBond(ctx context.Context, b model.Bond) error {
	notes, encrypted, err := r.cipher.seal(b.Notes)
	if err != nil {
		return err
	}

	query := `
		UPDATE bond SET
			bond_type = ?, issuer_name = ?, name = ?, isin = ?, cusip = ?, coupon_rate = ?,
			face_value_per_bond = ?, purchase_price = ?, quantity_purchased = ?, payment_frequency = ?,
			purchase_date = ?, maturity_date = ?, currency = ?, notes = ?, notes_encrypted = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		string(b.BondType),
		b.IssuerName,
		nullString(b.Name),
		nullString(b.ISIN),
		nullString(b.CUSIP),
		b.CouponRate,
		b.FaceValuePerBond,
		b.PurchasePrice,
		b.QuantityPurchased,
		string(b.PaymentFrequency),
		b.PurchaseDate.Format(dateLayout),
		b.MaturityDate.Format(dateLayout),
		b.Currency,
		nullString(notes),
		encrypted,
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bond: %w", err)
	}

	return requireOneRow(result, b.ID)
}

// DeleteBond removes a bond by ID.
// Returns apperrors.ErrBondNotFound when no bond has that ID.
func (r *BondRepository) DeleteBond(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bond WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bond: %w", err)
	}

	return requireOneRow(result, id)
}

func requireOneRow(result sql.Result, id int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %d", apperrors.ErrBondNotFound, id)
	}
	return nil
}
