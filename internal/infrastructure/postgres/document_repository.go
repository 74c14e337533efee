package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/erp-mes-api/internal/domain"
	"github.com/invorya/erp-mes-api/internal/domain/entity"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// Secuencia de numeración por tipo de documento.
var docSequences = map[string]string{
	entity.DocTypeQuote:    "doc_quote_seq",
	entity.DocTypeOrder:    "doc_order_seq",
	entity.DocTypeDispatch: "doc_dispatch_seq",
	entity.DocTypeInvoice:  "doc_invoice_seq",
}

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador de documentos de venta. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `id, doc_type, number, doc_date, party_id, currency, notes, subtotal, vat_total, grand_total, status, created_at`

// Create persiste la cabecera y sus líneas. El número es único por la
// secuencia; una colisión se reporta como duplicado. Debe invocarse con un
// Querier transaccional (TxRunner.RunDocument) para que un fallo en una
// línea no deje una cabecera huérfana confirmada.
func (r *DocumentRepo) Create(doc *entity.Document, lines []*entity.DocumentLine) error {
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.DocType, doc.Number, doc.Date, doc.PartyID, doc.Currency, doc.Notes,
		doc.Subtotal, doc.VATTotal, doc.GrandTotal, doc.Status, doc.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert document: %w", err)
	}
	lineQuery := `
		INSERT INTO document_lines (id, document_id, item_id, quantity, unit_price, vat_rate, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, line := range lines {
		if _, err := r.q.Exec(context.Background(), lineQuery,
			line.ID, line.DocumentID, line.ItemID, line.Quantity,
			line.UnitPrice, line.VATRate, line.LineTotal,
		); err != nil {
			return fmt.Errorf("insert document line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la cabecera de un documento por ID.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	var d entity.Document
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.DocType, &d.Number, &d.Date, &d.PartyID, &d.Currency, &d.Notes,
		&d.Subtotal, &d.VATTotal, &d.GrandTotal, &d.Status, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

// ListLines lista las líneas de un documento.
func (r *DocumentRepo) ListLines(documentID string) ([]*entity.DocumentLine, error) {
	query := `
		SELECT id, document_id, item_id, quantity, unit_price, vat_rate, line_total
		FROM document_lines WHERE document_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list document lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentLine
	for rows.Next() {
		var l entity.DocumentLine
		if err := rows.Scan(&l.ID, &l.DocumentID, &l.ItemID, &l.Quantity,
			&l.UnitPrice, &l.VATRate, &l.LineTotal); err != nil {
			return nil, fmt.Errorf("scan document line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// List lista documentos de un tipo con paginación, los más recientes primero.
// Con docType vacío lista todos los tipos.
func (r *DocumentRepo) List(docType string, limit, offset int) ([]*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents`
	args := []any{}
	if docType != "" {
		query += ` WHERE doc_type = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, docType, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(&d.ID, &d.DocType, &d.Number, &d.Date, &d.PartyID, &d.Currency, &d.Notes,
			&d.Subtotal, &d.VATTotal, &d.GrandTotal, &d.Status, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// NextSequence devuelve el consecutivo para numerar documentos del tipo dado.
func (r *DocumentRepo) NextSequence(docType string) (int64, error) {
	seqName, ok := docSequences[docType]
	if !ok {
		return 0, domain.ErrInvalidInput
	}
	var seq int64
	err := r.q.QueryRow(context.Background(), `SELECT nextval($1)`, seqName).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next document sequence: %w", err)
	}
	return seq, nil
}
