package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"backoffice/internal/dto"
	"backoffice/internal/export"
	"backoffice/internal/models"
	"backoffice/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrExchangeNotFound    = errors.New("exchange not found")
	ErrInsufficientReserve = errors.New("insufficient currency reserve for this sale")
	ErrDilarRequired       = errors.New("dilar is required for dilar exchanges")
	ErrInvalidRate         = errors.New("invalid exchange rate")
	ErrInvalidQuantity     = errors.New("invalid quantity")
)

// exchangeService implements ExchangeServiceInterface.
//
// Reserves are projections over the exchange ledger. Instead of patching
// reserve rows incrementally, every mutation replays the affected currency
// from its full trade history, which keeps weighted-average purchase prices
// and realized profit figures correct under edits and deletes of past trades.
// Mutations are serialized per currency: the overdraw check, the write, and
// the replay hold the currency's lock, so concurrent sells cannot both
// validate against the same reserve.
type exchangeService struct {
	exchangeRepo repositories.ExchangeRepositoryInterface
	reserveRepo  repositories.ReserveRepositoryInterface
	dilarRepo    repositories.DilarRepositoryInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
	locks        currencyLocks
}

// NewExchangeService creates an exchange service with reserve projection support
func NewExchangeService(
	exchangeRepo repositories.ExchangeRepositoryInterface,
	reserveRepo repositories.ReserveRepositoryInterface,
	dilarRepo repositories.DilarRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ExchangeServiceInterface {
	return &exchangeService{
		exchangeRepo: exchangeRepo,
		reserveRepo:  reserveRepo,
		dilarRepo:    dilarRepo,
		metrics:      metrics,
		logger:       logger,
		locks:        currencyLocks{byCode: make(map[string]*sync.Mutex)},
	}
}

// CreateExchange records a trade and folds it into the currency's reserve.
// Sells that would take the reserve negative are rejected before anything is
// persisted.
func (s *exchangeService) CreateExchange(req *dto.CreateExchangeRequest, createdBy string) (*models.Exchange, error) {
	exchange, err := s.buildExchange(req, createdBy)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(exchange.CurrencyCode)
	defer unlock()

	// Validate against the full history before persisting
	history, err := s.exchangeRepo.GetByCurrencyCode(exchange.CurrencyCode)
	if err != nil {
		return nil, err
	}
	candidate := append(history, *exchange)
	sortByTradeOrder(candidate)
	if _, _, err := computeReserve(exchange.CurrencyCode, exchange.CurrencyName, candidate); err != nil {
		return nil, err
	}

	if err := s.exchangeRepo.Create(exchange); err != nil {
		return nil, fmt.Errorf("failed to create exchange: %w", err)
	}

	if err := s.replayCurrency(exchange.CurrencyCode, exchange.CurrencyName); err != nil {
		return nil, err
	}

	// Replay may have stamped a realized profit onto this trade
	created, err := s.exchangeRepo.GetByID(exchange.ID)
	if err != nil {
		return exchange, nil
	}

	s.metrics.RecordExchange(exchange.Type, exchange.CurrencyCode)
	s.logger.Info("exchange recorded",
		"exchangeId", created.ID,
		"type", created.Type,
		"currency", created.CurrencyCode,
		"amountBdt", created.AmountBDT.String())

	return created, nil
}

// GetExchange retrieves a single exchange
func (s *exchangeService) GetExchange(exchangeID uuid.UUID) (*models.Exchange, error) {
	exchange, err := s.exchangeRepo.GetByID(exchangeID)
	if err != nil {
		if errors.Is(err, repositories.ErrExchangeNotFound) {
			return nil, ErrExchangeNotFound
		}
		return nil, fmt.Errorf("failed to get exchange: %w", err)
	}
	return exchange, nil
}

// ListExchanges returns a filtered page of exchanges
func (s *exchangeService) ListExchanges(filters models.ExchangeFilters, page, limit int) ([]models.Exchange, models.Pagination, error) {
	offset, limit := normalizePage(page, limit)

	exchanges, total, err := s.exchangeRepo.GetAllWithFilters(filters, offset, limit)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to list exchanges: %w", err)
	}

	return exchanges, models.NewPagination(page, limit, total), nil
}

// UpdateExchange applies a partial update and replays every affected currency.
// Changing the currency code replays both the old and the new currency.
func (s *exchangeService) UpdateExchange(exchangeID uuid.UUID, req *dto.UpdateExchangeRequest) (*models.Exchange, error) {
	exchange, err := s.GetExchange(exchangeID)
	if err != nil {
		return nil, err
	}

	oldCurrency := exchange.CurrencyCode

	if err := s.applyUpdate(exchange, req); err != nil {
		return nil, err
	}
	exchange.ComputeAmounts()

	unlock := s.locks.lock(oldCurrency, exchange.CurrencyCode)
	defer unlock()

	// Validate the new shape of both affected currencies before persisting
	if err := s.validateCandidate(exchange, oldCurrency); err != nil {
		return nil, err
	}

	if err := s.exchangeRepo.Update(exchange); err != nil {
		return nil, fmt.Errorf("failed to update exchange: %w", err)
	}

	if err := s.replayCurrency(exchange.CurrencyCode, exchange.CurrencyName); err != nil {
		return nil, err
	}
	if oldCurrency != exchange.CurrencyCode {
		if err := s.replayCurrency(oldCurrency, ""); err != nil {
			return nil, err
		}
	}

	updated, err := s.exchangeRepo.GetByID(exchangeID)
	if err != nil {
		return exchange, nil
	}
	return updated, nil
}

// DeleteExchange removes a trade and replays its currency. Deleting a buy that
// later sells depend on is rejected.
func (s *exchangeService) DeleteExchange(exchangeID uuid.UUID) error {
	exchange, err := s.GetExchange(exchangeID)
	if err != nil {
		return err
	}

	unlock := s.locks.lock(exchange.CurrencyCode)
	defer unlock()

	history, err := s.exchangeRepo.GetByCurrencyCode(exchange.CurrencyCode)
	if err != nil {
		return err
	}
	remaining := withoutExchange(history, exchangeID)
	if len(remaining) > 0 {
		if _, _, err := computeReserve(exchange.CurrencyCode, exchange.CurrencyName, remaining); err != nil {
			return err
		}
	}

	if err := s.exchangeRepo.Delete(exchangeID); err != nil {
		if errors.Is(err, repositories.ErrExchangeNotFound) {
			return ErrExchangeNotFound
		}
		return fmt.Errorf("failed to delete exchange: %w", err)
	}

	if err := s.replayCurrency(exchange.CurrencyCode, exchange.CurrencyName); err != nil {
		return err
	}

	s.logger.Info("exchange deleted", "exchangeId", exchangeID, "currency", exchange.CurrencyCode)
	return nil
}

// GetReserves returns all currency reserves with the cross-currency summary
func (s *exchangeService) GetReserves() (*dto.ReservesResponse, error) {
	reserves, err := s.reserveRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get reserves: %w", err)
	}

	summary := models.ReserveSummary{
		TotalReserveValue:  decimal.Zero,
		RealizedProfitLoss: decimal.Zero,
		CurrencyCount:      len(reserves),
	}
	for _, r := range reserves {
		summary.TotalReserveValue = summary.TotalReserveValue.Add(r.CurrentReserveValue)
		summary.RealizedProfitLoss = summary.RealizedProfitLoss.Add(r.RealizedProfitLoss)
	}

	return &dto.ReservesResponse{Data: reserves, Summary: summary}, nil
}

// GetDashboard aggregates trades per currency over an optional date window,
// optionally narrowed to a single currency
func (s *exchangeService) GetDashboard(currencyCode string, fromDate, toDate *time.Time) (*dto.DashboardResponse, error) {
	filters := models.ExchangeFilters{CurrencyCode: currencyCode, FromDate: fromDate, ToDate: toDate}

	// The dashboard aggregates the full window, not a page of it
	exchanges, _, err := s.exchangeRepo.GetAllWithFilters(filters, 0, dashboardWindowLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load exchanges for dashboard: %w", err)
	}

	rowsByCurrency := make(map[string]*models.DashboardRow)
	summary := models.DashboardSummary{
		TotalBoughtBDT: decimal.Zero,
		TotalSoldBDT:   decimal.Zero,
		RealizedPL:     decimal.Zero,
	}

	for _, ex := range exchanges {
		row, ok := rowsByCurrency[ex.CurrencyCode]
		if !ok {
			row = &models.DashboardRow{
				CurrencyCode:   ex.CurrencyCode,
				CurrencyName:   ex.CurrencyName,
				TotalBoughtBDT: decimal.Zero,
				TotalSoldBDT:   decimal.Zero,
				RealizedPL:     decimal.Zero,
			}
			rowsByCurrency[ex.CurrencyCode] = row
		}

		summary.ExchangeCount++
		if ex.IsBuy() {
			row.BuyCount++
			row.TotalBoughtBDT = row.TotalBoughtBDT.Add(ex.AmountBDT)
			summary.TotalBoughtBDT = summary.TotalBoughtBDT.Add(ex.AmountBDT)
		} else {
			row.SellCount++
			row.TotalSoldBDT = row.TotalSoldBDT.Add(ex.AmountBDT)
			row.RealizedPL = row.RealizedPL.Add(ex.RealizedProfitLoss)
			summary.TotalSoldBDT = summary.TotalSoldBDT.Add(ex.AmountBDT)
			summary.RealizedPL = summary.RealizedPL.Add(ex.RealizedProfitLoss)
		}
	}

	rows := make([]models.DashboardRow, 0, len(rowsByCurrency))
	for _, row := range rowsByCurrency {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CurrencyCode < rows[j].CurrencyCode
	})

	return &dto.DashboardResponse{Data: rows, Summary: summary}, nil
}

// GenerateReceipt renders a printable receipt for one trade
func (s *exchangeService) GenerateReceipt(exchangeID uuid.UUID) ([]byte, error) {
	exchange, err := s.GetExchange(exchangeID)
	if err != nil {
		return nil, err
	}

	var dilar *models.Dilar
	if exchange.DilarID != nil {
		dilar, err = s.dilarRepo.GetByID(*exchange.DilarID)
		if err != nil && !errors.Is(err, repositories.ErrDilarNotFound) {
			return nil, fmt.Errorf("failed to load dilar for receipt: %w", err)
		}
	}

	return export.RenderReceipt(exchange, dilar), nil
}

const dashboardWindowLimit = 100000

func (s *exchangeService) buildExchange(req *dto.CreateExchangeRequest, createdBy string) (*models.Exchange, error) {
	rate, err := decimal.NewFromString(req.ExchangeRate)
	if err != nil || rate.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidRate
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil || quantity.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidQuantity
	}

	exchange := &models.Exchange{
		FullName:     req.FullName,
		MobileNumber: req.MobileNumber,
		Type:         req.Type,
		CurrencyCode: req.CurrencyCode,
		CurrencyName: req.CurrencyName,
		ExchangeRate: rate,
		Quantity:     quantity,
		CustomerType: req.CustomerType,
		CreatedBy:    createdBy,
	}
	if req.Date != nil {
		exchange.Date = *req.Date
	} else {
		exchange.Date = time.Now()
	}
	if exchange.CustomerType == "" {
		exchange.CustomerType = models.CustomerTypeWalkIn
	}

	if exchange.CustomerType == models.CustomerTypeDilar {
		if req.DilarID == nil {
			return nil, ErrDilarRequired
		}
		dilarID, err := uuid.Parse(*req.DilarID)
		if err != nil {
			return nil, ErrDilarRequired
		}
		if _, err := s.dilarRepo.GetByID(dilarID); err != nil {
			if errors.Is(err, repositories.ErrDilarNotFound) {
				return nil, ErrDilarNotFound
			}
			return nil, fmt.Errorf("failed to verify dilar: %w", err)
		}
		exchange.DilarID = &dilarID
	}

	exchange.ComputeAmounts()
	return exchange, nil
}

func (s *exchangeService) applyUpdate(exchange *models.Exchange, req *dto.UpdateExchangeRequest) error {
	if req.Date != nil {
		exchange.Date = *req.Date
	}
	if req.FullName != nil {
		exchange.FullName = *req.FullName
	}
	if req.MobileNumber != nil {
		exchange.MobileNumber = *req.MobileNumber
	}
	if req.Type != nil {
		exchange.Type = *req.Type
	}
	if req.CurrencyCode != nil {
		exchange.CurrencyCode = *req.CurrencyCode
	}
	if req.CurrencyName != nil {
		exchange.CurrencyName = *req.CurrencyName
	}
	if req.ExchangeRate != nil {
		rate, err := decimal.NewFromString(*req.ExchangeRate)
		if err != nil || rate.LessThanOrEqual(decimal.Zero) {
			return ErrInvalidRate
		}
		exchange.ExchangeRate = rate
	}
	if req.Quantity != nil {
		quantity, err := decimal.NewFromString(*req.Quantity)
		if err != nil || quantity.LessThanOrEqual(decimal.Zero) {
			return ErrInvalidQuantity
		}
		exchange.Quantity = quantity
	}
	if req.CustomerType != nil {
		exchange.CustomerType = *req.CustomerType
	}
	if req.DilarID != nil {
		dilarID, err := uuid.Parse(*req.DilarID)
		if err != nil {
			return ErrDilarRequired
		}
		exchange.DilarID = &dilarID
	}
	if exchange.CustomerType == models.CustomerTypeWalkIn {
		exchange.DilarID = nil
	}
	return nil
}

// validateCandidate replays the affected currencies with the modified trade in
// place, rejecting the update if any sell would outrun its reserve.
func (s *exchangeService) validateCandidate(modified *models.Exchange, oldCurrency string) error {
	history, err := s.exchangeRepo.GetByCurrencyCode(modified.CurrencyCode)
	if err != nil {
		return err
	}
	candidate := append(withoutExchange(history, modified.ID), *modified)
	sortByTradeOrder(candidate)
	if _, _, err := computeReserve(modified.CurrencyCode, modified.CurrencyName, candidate); err != nil {
		return err
	}

	if oldCurrency != modified.CurrencyCode {
		oldHistory, err := s.exchangeRepo.GetByCurrencyCode(oldCurrency)
		if err != nil {
			return err
		}
		remaining := withoutExchange(oldHistory, modified.ID)
		if len(remaining) > 0 {
			if _, _, err := computeReserve(oldCurrency, "", remaining); err != nil {
				return err
			}
		}
	}

	return nil
}

// replayCurrency rebuilds one currency's reserve row from its trade history
// and re-stamps realized profit onto any sell whose figure moved.
func (s *exchangeService) replayCurrency(currencyCode, currencyName string) error {
	exchanges, err := s.exchangeRepo.GetByCurrencyCode(currencyCode)
	if err != nil {
		return err
	}

	if len(exchanges) == 0 {
		if err := s.reserveRepo.DeleteByCurrencyCode(currencyCode); err != nil {
			return err
		}
		return nil
	}

	reserve, realizedByID, err := computeReserve(currencyCode, currencyName, exchanges)
	if err != nil {
		return err
	}

	for i := range exchanges {
		realized, ok := realizedByID[exchanges[i].ID]
		if !ok {
			realized = decimal.Zero
		}
		if !exchanges[i].RealizedProfitLoss.Equal(realized) {
			exchanges[i].RealizedProfitLoss = realized
			if err := s.exchangeRepo.Update(&exchanges[i]); err != nil {
				return err
			}
		}
	}

	if err := s.reserveRepo.Save(reserve); err != nil {
		return err
	}

	s.metrics.RecordReserveReplay(currencyCode, len(exchanges))
	return nil
}

// computeReserve folds an ordered trade history into a reserve projection,
// returning the realized profit of each sell keyed by exchange ID.
func computeReserve(currencyCode, currencyName string, exchanges []models.Exchange) (*models.Reserve, map[uuid.UUID]decimal.Decimal, error) {
	reserve := &models.Reserve{
		CurrencyCode:             currencyCode,
		CurrencyName:             currencyName,
		TotalBought:              decimal.Zero,
		TotalSold:                decimal.Zero,
		WeightedAvgPurchasePrice: decimal.Zero,
		CurrentReserveValue:      decimal.Zero,
		RealizedProfitLoss:       decimal.Zero,
	}

	realizedByID := make(map[uuid.UUID]decimal.Decimal)

	for _, ex := range exchanges {
		if reserve.CurrencyName == "" && ex.CurrencyName != "" {
			reserve.CurrencyName = ex.CurrencyName
		}

		if ex.IsBuy() {
			reserve.ApplyBuy(ex.ForeignAmount, ex.AmountBDT)
			continue
		}

		realized, err := reserve.ApplySell(ex.Quantity, ex.ExchangeRate)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", ErrInsufficientReserve, currencyCode)
		}
		realizedByID[ex.ID] = realized
	}

	return reserve, realizedByID, nil
}

func sortByTradeOrder(exchanges []models.Exchange) {
	sort.SliceStable(exchanges, func(i, j int) bool {
		if exchanges[i].Date.Equal(exchanges[j].Date) {
			return exchanges[i].CreatedAt.Before(exchanges[j].CreatedAt)
		}
		return exchanges[i].Date.Before(exchanges[j].Date)
	})
}

// currencyLocks hands out one mutex per currency code so the
// check-write-replay sequence for a currency never interleaves with a
// sibling mutation.
type currencyLocks struct {
	mu     sync.Mutex
	byCode map[string]*sync.Mutex
}

func (l *currencyLocks) get(code string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.byCode[code]
	if !ok {
		m = &sync.Mutex{}
		l.byCode[code] = m
	}
	return m
}

// lock acquires the mutexes for the given currencies in sorted order and
// returns the matching unlock. Sorting keeps two writers touching the same
// pair of currencies from deadlocking.
func (l *currencyLocks) lock(codes ...string) func() {
	unique := make([]string, 0, len(codes))
	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		if code != "" && !seen[code] {
			seen[code] = true
			unique = append(unique, code)
		}
	}
	sort.Strings(unique)

	held := make([]*sync.Mutex, 0, len(unique))
	for _, code := range unique {
		m := l.get(code)
		m.Lock()
		held = append(held, m)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func withoutExchange(exchanges []models.Exchange, id uuid.UUID) []models.Exchange {
	kept := make([]models.Exchange, 0, len(exchanges))
	for _, ex := range exchanges {
		if ex.ID != id {
			kept = append(kept, ex)
		}
	}
	return kept
}
