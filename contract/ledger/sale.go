package ledger

import "moonpad/sdk"

// SaleConfig is the singleton sale parameter record, replaced wholesale by
// the administrator. The active window is half-open: [StartTime, EndTime).
type SaleConfig struct {
	StartTime int64
	EndTime   int64
	PayAsset  sdk.Asset
	// SaleAsset is informational; the engine only records receipt amounts.
	SaleAsset  sdk.Asset
	MaxRaise   uint64
	PriceNum   uint64
	PriceDenom uint64
}

// IsActive reports whether purchases are accepted at the given instant.
func (c *SaleConfig) IsActive(now int64) bool {
	return c.StartTime <= now && now < c.EndTime
}

// ReceiptAmount converts a payment into receipt tokens at the fixed price:
// floor(payment * PriceNum / PriceDenom). Zero payment prices to zero.
func (c *SaleConfig) ReceiptAmount(payment uint64) uint64 {
	return mulDiv(payment, c.PriceNum, c.PriceDenom)
}

// Validate rejects configs the pricing calculator cannot evaluate.
func (c *SaleConfig) Validate() error {
	if c.PriceDenom == 0 {
		return errInvalidPrice
	}
	return nil
}
