package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Reserve is the running inventory of one foreign currency, valued at the
// weighted-average purchase cost. It is a projection over the exchange ledger:
// any exchange mutation replays the affected currency rather than patching
// the row in place.
type Reserve struct {
	ID                       uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CurrencyCode             string          `gorm:"type:varchar(3);uniqueIndex;not null" json:"currencyCode"`
	CurrencyName             string          `gorm:"type:varchar(50)" json:"currencyName,omitempty"`
	TotalBought              decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"totalBought"`
	TotalSold                decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"totalSold"`
	WeightedAvgPurchasePrice decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0" json:"weightedAveragePurchasePrice"`
	CurrentReserveValue      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"currentReserveValue"`
	RealizedProfitLoss       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"realizedProfitLoss"`
	UpdatedAt                time.Time       `gorm:"not null" json:"updatedAt"`
}

// BeforeCreate hook for Reserve
func (r *Reserve) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = time.Now()
	}
	return nil
}

// Held returns the quantity of the currency currently in inventory
func (r *Reserve) Held() decimal.Decimal {
	return r.TotalBought.Sub(r.TotalSold)
}

// ApplyBuy folds a purchase into the reserve, moving the weighted-average
// purchase price toward the new trade's rate.
func (r *Reserve) ApplyBuy(foreignAmount, amountBDT decimal.Decimal) {
	held := r.Held()
	newHeld := held.Add(foreignAmount)

	if newHeld.GreaterThan(decimal.Zero) {
		costBasis := held.Mul(r.WeightedAvgPurchasePrice).Add(amountBDT)
		r.WeightedAvgPurchasePrice = costBasis.DivRound(newHeld, 6)
	}

	r.TotalBought = r.TotalBought.Add(foreignAmount)
	r.CurrentReserveValue = r.Held().Mul(r.WeightedAvgPurchasePrice).Round(2)
	r.UpdatedAt = time.Now()
}

// ApplySell folds a sale into the reserve and returns the realized profit or
// loss against the weighted-average cost basis. Returns ErrInsufficientFunds
// when the sale exceeds the held quantity.
func (r *Reserve) ApplySell(quantity, rate decimal.Decimal) (decimal.Decimal, error) {
	if r.Held().LessThan(quantity) {
		return decimal.Zero, ErrInsufficientFunds
	}

	realized := quantity.Mul(rate.Sub(r.WeightedAvgPurchasePrice)).Round(2)

	r.TotalSold = r.TotalSold.Add(quantity)
	r.RealizedProfitLoss = r.RealizedProfitLoss.Add(realized)
	r.CurrentReserveValue = r.Held().Mul(r.WeightedAvgPurchasePrice).Round(2)
	r.UpdatedAt = time.Now()

	return realized, nil
}

// TableName returns the table name for Reserve
func (r *Reserve) TableName() string {
	return "reserves"
}

// ReserveSummary aggregates all currency reserves for the reserves endpoint
type ReserveSummary struct {
	TotalReserveValue  decimal.Decimal `json:"totalReserveValue"`
	RealizedProfitLoss decimal.Decimal `json:"realizedProfitLoss"`
	CurrencyCount      int             `json:"currencyCount"`
}
