package repository

import "github.com/invorya/erp-mes-api/internal/domain/entity"

// DocumentRepository define el puerto de persistencia para documentos de venta.
type DocumentRepository interface {
	Create(doc *entity.Document, lines []*entity.DocumentLine) error
	GetByID(id string) (*entity.Document, error)
	ListLines(documentID string) ([]*entity.DocumentLine, error)
	List(docType string, limit, offset int) ([]*entity.Document, error)
	// NextSequence devuelve el consecutivo para numerar documentos del tipo dado.
	NextSequence(docType string) (int64, error)
}
