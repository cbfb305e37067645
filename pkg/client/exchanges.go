package client

import (
	"context"
	"net/http"
	"time"

	"backoffice/pkg/cache"

	"github.com/shopspring/decimal"
)

// Exchange is one recorded currency trade
type Exchange struct {
	ID                 string          `json:"id"`
	Date               time.Time       `json:"date"`
	FullName           string          `json:"fullName"`
	MobileNumber       string          `json:"mobileNumber"`
	Type               string          `json:"type"`
	CurrencyCode       string          `json:"currencyCode"`
	CurrencyName       string          `json:"currencyName"`
	ExchangeRate       decimal.Decimal `json:"exchangeRate"`
	Quantity           decimal.Decimal `json:"quantity"`
	AmountBDT          decimal.Decimal `json:"amount_bdt"`
	ForeignAmount      decimal.Decimal `json:"foreignCurrencyAmount"`
	CustomerType       string          `json:"customerType"`
	DilarID            *string         `json:"dilarId"`
	RealizedProfitLoss decimal.Decimal `json:"realizedProfitLoss"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// Reserve is one currency's holding derived from its exchange history
type Reserve struct {
	CurrencyCode             string          `json:"currencyCode"`
	CurrencyName             string          `json:"currencyName"`
	TotalBought              decimal.Decimal `json:"totalBought"`
	TotalSold                decimal.Decimal `json:"totalSold"`
	WeightedAvgPurchasePrice decimal.Decimal `json:"weightedAveragePurchasePrice"`
	CurrentReserveValue      decimal.Decimal `json:"currentReserveValue"`
	RealizedProfitLoss       decimal.Decimal `json:"realizedProfitLoss"`
	UpdatedAt                time.Time       `json:"updatedAt"`
}

// CurrentHolding is the units still held: bought minus sold
func (r Reserve) CurrentHolding() decimal.Decimal {
	return r.TotalBought.Sub(r.TotalSold)
}

// ReserveSummary totals reserves across currencies
type ReserveSummary struct {
	TotalReserveValue  decimal.Decimal `json:"totalReserveValue"`
	RealizedProfitLoss decimal.Decimal `json:"realizedProfitLoss"`
	CurrencyCount      int             `json:"currencyCount"`
}

// Reserves bundles per-currency reserves with the cross-currency summary
type Reserves struct {
	Data    []Reserve      `json:"data"`
	Summary ReserveSummary `json:"summary"`
}

// DashboardRow is one currency's aggregate on the exchange dashboard
type DashboardRow struct {
	CurrencyCode   string          `json:"currencyCode"`
	CurrencyName   string          `json:"currencyName"`
	BuyCount       int             `json:"buyCount"`
	SellCount      int             `json:"sellCount"`
	TotalBoughtBDT decimal.Decimal `json:"totalBoughtBdt"`
	TotalSoldBDT   decimal.Decimal `json:"totalSoldBdt"`
	RealizedPL     decimal.Decimal `json:"realizedProfitLoss"`
}

// DashboardSummary totals the dashboard rows over the selected window
type DashboardSummary struct {
	ExchangeCount  int             `json:"exchangeCount"`
	TotalBoughtBDT decimal.Decimal `json:"totalBoughtBdt"`
	TotalSoldBDT   decimal.Decimal `json:"totalSoldBdt"`
	RealizedPL     decimal.Decimal `json:"realizedProfitLoss"`
}

// Dashboard bundles dashboard rows with the window summary
type Dashboard struct {
	Data    []DashboardRow   `json:"data"`
	Summary DashboardSummary `json:"summary"`
}

// ExchangeFilters narrows ListExchanges
type ExchangeFilters struct {
	Type         string
	CurrencyCode string
	CustomerType string
	DilarID      string
	FromDate     string
	ToDate       string
	Search       string
}

func (f ExchangeFilters) toMap() map[string]string {
	return map[string]string{
		"type":          f.Type,
		"currency_code": f.CurrencyCode,
		"customer_type": f.CustomerType,
		"dilar_id":      f.DilarID,
		"from_date":     f.FromDate,
		"to_date":       f.ToDate,
		"search":        f.Search,
	}
}

// CreateExchangeRequest records a trade. For buys Quantity is the BDT paid;
// for sells it is the foreign units sold.
type CreateExchangeRequest struct {
	Date         *time.Time `json:"date,omitempty"`
	FullName     string     `json:"fullName"`
	MobileNumber string     `json:"mobileNumber,omitempty"`
	Type         string     `json:"type"`
	CurrencyCode string     `json:"currencyCode"`
	CurrencyName string     `json:"currencyName,omitempty"`
	ExchangeRate string     `json:"exchangeRate"`
	Quantity     string     `json:"quantity"`
	CustomerType string     `json:"customerType,omitempty"`
	DilarID      *string    `json:"dilarId,omitempty"`
}

// UpdateExchangeRequest edits a recorded trade. Nil fields are left untouched.
type UpdateExchangeRequest struct {
	Date         *time.Time `json:"date,omitempty"`
	FullName     *string    `json:"fullName,omitempty"`
	MobileNumber *string    `json:"mobileNumber,omitempty"`
	Type         *string    `json:"type,omitempty"`
	CurrencyCode *string    `json:"currencyCode,omitempty"`
	CurrencyName *string    `json:"currencyName,omitempty"`
	ExchangeRate *string    `json:"exchangeRate,omitempty"`
	Quantity     *string    `json:"quantity,omitempty"`
	CustomerType *string    `json:"customerType,omitempty"`
	DilarID      *string    `json:"dilarId,omitempty"`
}

// ListExchanges returns trades matching the filters
func (c *Client) ListExchanges(ctx context.Context, filters ExchangeFilters) ([]Exchange, error) {
	fm := filters.toMap()
	key := cache.BuildFilterKey(keyExchanges, fm)

	v, err := c.get(ctx, key, "/api/v1/exchanges"+buildQuery(fm), fastStaleTime, func() interface{} {
		return &[]byte{}
	})
	if err != nil {
		return nil, err
	}

	var exchanges []Exchange
	if err := decodeList(*v.(*[]byte), &exchanges); err != nil {
		return nil, err
	}
	return exchanges, nil
}

// GetExchange returns one trade by id. An empty id returns immediately
// without a request.
func (c *Client) GetExchange(ctx context.Context, id string) (*Exchange, error) {
	if id == "" {
		return nil, nil
	}

	key := cache.BuildKey(keyExchanges, id)
	v, err := c.get(ctx, key, "/api/v1/exchanges/"+id, fastStaleTime, func() interface{} {
		return &[]byte{}
	})
	if err != nil {
		return nil, err
	}

	var exchange Exchange
	if err := decodeSingle(*v.(*[]byte), &exchange); err != nil {
		return nil, err
	}
	return &exchange, nil
}

// CreateExchange records a trade and invalidates exchanges, reserves, and
// the dashboard
func (c *Client) CreateExchange(ctx context.Context, req CreateExchangeRequest) (*Exchange, error) {
	var raw []byte
	if err := c.do(ctx, http.MethodPost, "/api/v1/exchanges", req, &raw); err != nil {
		return nil, err
	}
	c.invalidate(keyExchanges)

	var exchange Exchange
	if err := decodeSingle(raw, &exchange); err != nil {
		return nil, err
	}
	return &exchange, nil
}

// UpdateExchange edits a trade; the server replays the currency's reserve
func (c *Client) UpdateExchange(ctx context.Context, id string, req UpdateExchangeRequest) (*Exchange, error) {
	var raw []byte
	if err := c.do(ctx, http.MethodPut, "/api/v1/exchanges/"+id, req, &raw); err != nil {
		return nil, err
	}
	c.invalidate(keyExchanges)

	var exchange Exchange
	if err := decodeSingle(raw, &exchange); err != nil {
		return nil, err
	}
	return &exchange, nil
}

// DeleteExchange removes a trade; the server replays the currency's reserve
func (c *Client) DeleteExchange(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/v1/exchanges/"+id, nil, nil); err != nil {
		return err
	}
	c.invalidate(keyExchanges)
	return nil
}

// GetReserves returns per-currency reserves with the cross-currency summary
func (c *Client) GetReserves(ctx context.Context) (*Reserves, error) {
	v, err := c.get(ctx, keyReserves, "/api/v1/exchanges/reserves", fastStaleTime, func() interface{} {
		return &Reserves{}
	})
	if err != nil {
		return nil, err
	}
	return v.(*Reserves), nil
}

// GetDashboard returns the exchange dashboard for an optional date window,
// optionally narrowed to one currency
func (c *Client) GetDashboard(ctx context.Context, currencyCode, fromDate, toDate string) (*Dashboard, error) {
	fm := map[string]string{"currency_code": currencyCode, "from_date": fromDate, "to_date": toDate}
	key := cache.BuildFilterKey(keyDashboard, fm)

	v, err := c.get(ctx, key, "/api/v1/exchanges/dashboard"+buildQuery(fm), fastStaleTime, func() interface{} {
		return &Dashboard{}
	})
	if err != nil {
		return nil, err
	}
	return v.(*Dashboard), nil
}

// DownloadReceipt returns the printable receipt for a trade. Not cached.
func (c *Client) DownloadReceipt(ctx context.Context, id string) ([]byte, error) {
	var raw []byte
	if err := c.do(ctx, http.MethodGet, "/api/v1/exchanges/"+id+"/receipt", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
