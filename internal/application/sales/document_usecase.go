package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/erp-mes-api/internal/application/dto"
	"github.com/invorya/erp-mes-api/internal/domain"
	"github.com/invorya/erp-mes-api/internal/domain/entity"
	"github.com/invorya/erp-mes-api/internal/domain/repository"
	domainsales "github.com/invorya/erp-mes-api/internal/domain/sales"
)

// Prefijos de numeración por tipo de documento.
var docPrefixes = map[string]string{
	entity.DocTypeQuote:    "Q",
	entity.DocTypeOrder:    "S",
	entity.DocTypeDispatch: "IR",
	entity.DocTypeInvoice:  "F",
}

// DocumentUseCase crea y consulta documentos de venta con totales calculados.
type DocumentUseCase struct {
	txRunner  TxRunner
	docRepo   repository.DocumentRepository
	partyRepo repository.PartyRepository
	itemRepo  repository.ItemRepository
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	txRunner TxRunner,
	docRepo repository.DocumentRepository,
	partyRepo repository.PartyRepository,
	itemRepo repository.ItemRepository,
) *DocumentUseCase {
	return &DocumentUseCase{txRunner: txRunner, docRepo: docRepo, partyRepo: partyRepo, itemRepo: itemRepo}
}

// Create valida el tipo, resuelve tercero y artículos por código (artículo
// desconocido → ErrNotFound), calcula totales y persiste cabecera + líneas
// en una sola transacción.
func (uc *DocumentUseCase) Create(ctx context.Context, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if _, ok := docPrefixes[in.DocType]; !ok {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	party, err := uc.partyRepo.GetByCode(in.PartyCode)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, domain.ErrNotFound
	}

	calcLines := make([]domainsales.Line, 0, len(in.Lines))
	docLines := make([]*entity.DocumentLine, 0, len(in.Lines))
	for _, ln := range in.Lines {
		item, err := uc.itemRepo.GetByCode(ln.ItemCode)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrNotFound
		}
		calc := domainsales.Line{Quantity: ln.Quantity, UnitPrice: ln.UnitPrice, VATRate: ln.VATRate}
		calcLines = append(calcLines, calc)
		docLines = append(docLines, &entity.DocumentLine{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			Quantity:  ln.Quantity,
			UnitPrice: ln.UnitPrice,
			VATRate:   ln.VATRate,
			LineTotal: domainsales.LineTotal(calc),
		})
	}
	totals, err := domainsales.ComputeTotals(calcLines)
	if err != nil {
		return nil, err
	}

	number, err := uc.nextNumber(in.DocType)
	if err != nil {
		return nil, err
	}
	currency := in.Currency
	if currency == "" {
		currency = "TRY"
	}
	now := time.Now()
	doc := &entity.Document{
		ID:         uuid.New().String(),
		DocType:    in.DocType,
		Number:     number,
		Date:       now,
		PartyID:    party.ID,
		Currency:   currency,
		Notes:      in.Notes,
		Subtotal:   totals.Subtotal,
		VATTotal:   totals.VATTotal,
		GrandTotal: totals.GrandTotal,
		Status:     entity.DocStatusOpen,
		CreatedAt:  now,
	}
	for _, dl := range docLines {
		dl.DocumentID = doc.ID
	}
	err = uc.txRunner.RunDocument(ctx, func(docRepo repository.DocumentRepository) error {
		return docRepo.Create(doc, docLines)
	})
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// GetByID devuelve un documento por identificador.
func (uc *DocumentUseCase) GetByID(id string) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return toDocumentResponse(doc), nil
}

// List lista documentos, opcionalmente filtrados por tipo.
func (uc *DocumentUseCase) List(docType string, limit, offset int) ([]dto.DocumentResponse, error) {
	list, err := uc.docRepo.List(docType, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *toDocumentResponse(d))
	}
	return out, nil
}

// nextNumber numera {prefijo}{yy}-{seq:06d} desde la secuencia del tipo.
func (uc *DocumentUseCase) nextNumber(docType string) (string, error) {
	seq, err := uc.docRepo.NextSequence(docType)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s-%06d", docPrefixes[docType], time.Now().Format("06"), seq), nil
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		ID:         d.ID,
		DocType:    d.DocType,
		Number:     d.Number,
		Date:       d.Date,
		PartyID:    d.PartyID,
		Currency:   d.Currency,
		Subtotal:   d.Subtotal,
		VATTotal:   d.VATTotal,
		GrandTotal: d.GrandTotal,
		Status:     d.Status,
	}
}
