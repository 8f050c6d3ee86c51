package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// QuoteUseCase ciclo de vida de cotizaciones. No tocan stock; su histórico
// alimenta la resolución de precios efectivos en ventas.
type QuoteUseCase struct {
	repo      repository.QuoteRepository
	partyRepo repository.PartyRepository
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(repo repository.QuoteRepository, partyRepo repository.PartyRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, partyRepo: partyRepo}
}

// Create crea la cotización con sus líneas y total calculado.
func (uc *QuoteUseCase) Create(accountID string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkParty(accountID, in.PartyID); err != nil {
		return nil, err
	}

	no, err := uc.repo.NextNumber(accountID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	quote := &entity.Quote{
		ID:        uuid.New().String(),
		AccountID: accountID,
		PartyID:   in.PartyID,
		QuoteNo:   no,
		Date:      date,
		Notes:     in.Notes,
		Total:     lineTotal(in.Items),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(quote); err != nil {
		return nil, err
	}
	for _, it := range in.Items {
		line := &entity.QuoteItem{
			ID:      uuid.New().String(),
			QuoteID: quote.ID,
			ItemID:  it.ItemID,
			Price:   it.Price,
			Qty:     it.Qty,
			TaxID:   it.TaxID,
		}
		if err := uc.repo.CreateItem(line); err != nil {
			return nil, err
		}
	}
	items, err := uc.repo.GetItems(quote.ID)
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(quote, items), nil
}

// Update actualiza cabecera y, si vienen, reemplaza las líneas.
func (uc *QuoteUseCase) Update(accountID, id string, in dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	quote, err := uc.getOwned(accountID, id)
	if err != nil {
		return nil, err
	}
	if in.PartyID != nil {
		if err := uc.checkParty(accountID, *in.PartyID); err != nil {
			return nil, err
		}
		quote.PartyID = *in.PartyID
	}
	if in.Date != nil {
		date, err := dto.ParseDate(*in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		quote.Date = date
	}
	if in.Notes != nil {
		quote.Notes = *in.Notes
	}
	if in.Items != nil {
		if err := uc.repo.DeleteItems(quote.ID); err != nil {
			return nil, err
		}
		for _, it := range in.Items {
			line := &entity.QuoteItem{
				ID:      uuid.New().String(),
				QuoteID: quote.ID,
				ItemID:  it.ItemID,
				Price:   it.Price,
				Qty:     it.Qty,
				TaxID:   it.TaxID,
			}
			if err := uc.repo.CreateItem(line); err != nil {
				return nil, err
			}
		}
		quote.Total = lineTotal(in.Items)
	}
	quote.UpdatedAt = time.Now()
	if err := uc.repo.Update(quote); err != nil {
		return nil, err
	}
	items, err := uc.repo.GetItems(quote.ID)
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(quote, items), nil
}

// Delete borra lógicamente la cotización.
func (uc *QuoteUseCase) Delete(accountID, id string) error {
	if _, err := uc.getOwned(accountID, id); err != nil {
		return err
	}
	return uc.repo.SoftDelete(id, time.Now())
}

// Get obtiene una cotización con sus líneas.
func (uc *QuoteUseCase) Get(accountID, id string) (*dto.DocumentResponse, error) {
	quote, err := uc.getOwned(accountID, id)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.GetItems(quote.ID)
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(quote, items), nil
}

// List lista cotizaciones de la cuenta (sin líneas).
func (uc *QuoteUseCase) List(accountID string, limit, offset int) (*dto.DocumentListResponse, error) {
	list, err := uc.repo.ListByAccount(accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *toQuoteResponse(q, nil))
	}
	return &dto.DocumentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *QuoteUseCase) getOwned(accountID, id string) (*entity.Quote, error) {
	quote, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if quote.AccountID != accountID {
		return nil, domain.ErrForbidden
	}
	return quote, nil
}

func (uc *QuoteUseCase) checkParty(accountID, partyID string) error {
	party, err := uc.partyRepo.GetByID(partyID)
	if err != nil {
		return err
	}
	if party == nil || party.AccountID != accountID {
		return domain.ErrNotFound
	}
	return nil
}

// lineTotal suma price*qty de las líneas.
func lineTotal(items []dto.DocumentItemRequest) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(it.Qty))
	}
	return total
}

func toQuoteResponse(q *entity.Quote, items []*entity.QuoteItem) *dto.DocumentResponse {
	resp := &dto.DocumentResponse{
		ID:        q.ID,
		AccountID: q.AccountID,
		PartyID:   q.PartyID,
		No:        q.QuoteNo,
		Date:      dto.FormatDate(q.Date),
		Notes:     q.Notes,
		Total:     q.Total,
		Items:     make([]dto.DocumentItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.DocumentItemResponse{
			ID:     it.ID,
			ItemID: it.ItemID,
			Price:  it.Price,
			Qty:    it.Qty,
			TaxID:  it.TaxID,
		})
	}
	return resp
}
