package ledger

import "moonpad/sdk"

// BuyerAccount is the per-buyer sale ledger record. Allocation caps the
// cumulative payment; zero allocation means the buyer is not enrolled at
// all, which is distinct from an exhausted positive allocation.
type BuyerAccount struct {
	Allocation uint64
	Spent      uint64
	Received   uint64
}

// AvailableAllocation is the buyer's remaining payment headroom.
func (b *BuyerAccount) AvailableAllocation() uint64 {
	return b.Allocation - b.Spent
}

// SaleLedger is the aggregate record across all buyers.
type SaleLedger struct {
	TotalRaised uint64
}

// PurchaseResult bundles everything one accepted purchase mutates so the
// host persists buyer and ledger together or not at all.
type PurchaseResult struct {
	Buyer   BuyerAccount
	Ledger  SaleLedger
	Receipt uint64
}

// ProcessPurchase validates a purchase and applies it to copies of the buyer
// and aggregate ledger. Checks run in a fixed order and the first failure
// wins; on any error the inputs are untouched and no result is returned.
func ProcessPurchase(buyer BuyerAccount, led SaleLedger, cfg SaleConfig, payment uint64, payAsset sdk.Asset, now int64) (PurchaseResult, error) {
	if !cfg.IsActive(now) {
		return PurchaseResult{}, ErrSaleNotActive
	}
	if payment == 0 || payAsset != cfg.PayAsset {
		return PurchaseResult{}, ErrMissingFunds
	}
	if buyer.Allocation == 0 {
		return PurchaseResult{}, ErrNotParticipating
	}
	if payment > buyer.AvailableAllocation() {
		return PurchaseResult{}, &UserAllocationExceededError{
			Wanted: payment,
			Max:    buyer.AvailableAllocation(),
		}
	}
	// A config swap can lower MaxRaise below what is already raised, so
	// the headroom clamps at zero instead of underflowing.
	headroom := uint64(0)
	if cfg.MaxRaise > led.TotalRaised {
		headroom = cfg.MaxRaise - led.TotalRaised
	}
	if payment > headroom {
		return PurchaseResult{}, &SaleAllocationExceededError{
			Wanted: payment,
			Max:    headroom,
		}
	}

	receipt := cfg.ReceiptAmount(payment)
	buyer.Spent += payment
	buyer.Received += receipt
	led.TotalRaised += payment

	return PurchaseResult{Buyer: buyer, Ledger: led, Receipt: receipt}, nil
}
