package main

import (
	"strconv"

	"moonpad/contract/ledger"
	"moonpad/contract/wire"
	"moonpad/sdk"
)

// -----------------------------------------------------------------------------
// Sale Engine Entrypoints
// -----------------------------------------------------------------------------

// SaleSetConfig replaces the sale parameters wholesale. The aggregate raise
// counter lives in its own slot and survives config swaps. Owner only.
// Payload: json wire.SaleConfig
func SaleSetConfig(payload *string) *string {
	requireInitialized()
	requireOwner()

	raw := unwrapPayload(payload, "sale config payload missing")
	var args wire.SaleConfig
	decodeJSON(raw, &args, "sale config")

	if !isValidAsset(args.PayAsset) {
		sdk.Revert("unsupported pay asset", "input_error")
	}
	cfg := ledger.SaleConfig{
		StartTime:  args.StartTime,
		EndTime:    args.EndTime,
		PayAsset:   sdk.Asset(args.PayAsset),
		SaleAsset:  sdk.Asset(args.SaleAsset),
		MaxRaise:   args.MaxRaise,
		PriceNum:   args.PriceNum,
		PriceDenom: args.PriceDenom,
	}
	if err := cfg.Validate(); err != nil {
		sdk.Revert(err.Error(), "input_error")
	}
	saveSaleConfig(&cfg)

	emitSaleConfigSetEvent(cfg.StartTime, cfg.EndTime, cfg.MaxRaise)
	return strptr("sale config set")
}

// SaleSetUsers replaces the whole buyer set. Received always restarts at
// zero, whatever the payload claims.
// Payload: json wire.BuyerList
func SaleSetUsers(payload *string) *string {
	requireInitialized()
	requireOwner()

	raw := unwrapPayload(payload, "buyer list payload missing")
	var args wire.BuyerList
	decodeJSON(raw, &args, "buyer list")

	addrs := make([]sdk.Address, 0, len(args.Users))
	buyers := make([]ledger.BuyerAccount, 0, len(args.Users))
	for _, u := range args.Users {
		addrs = append(addrs, parseAddressField(u.Address, "buyer address"))
		buyers = append(buyers, ledger.BuyerAccount{
			Allocation: u.Allocation,
			Spent:      u.Spent,
			Received:   0,
		})
	}
	replaceBuyers(buyers, addrs)

	emitSaleUsersSetEvent(len(buyers))
	return strptr("sale users set: " + strconv.Itoa(len(buyers)))
}

// Buy purchases receipt tokens at the fixed price. The payment amount comes
// from the payload and must be covered by a transfer.allow intent in the pay
// asset; the draw happens only after every ledger check passed.
// Payload: amount
func Buy(payload *string) *string {
	requireInitialized()

	amount := parseAmountField(unwrapPayload(payload, "payment amount required"), "payment amount")
	cfg := loadSaleConfig()
	if cfg == nil {
		sdk.Revert("sale not configured", "not_found")
	}

	// An absent or undersized intent degrades to an empty pay asset so the
	// engine reports missing_funds in its own check order.
	payAsset := sdk.Asset("")
	if ta := getFirstTransferAllow(); ta != nil && ta.Limit >= amount {
		payAsset = ta.Token
	}

	sender := getSenderAddress()
	buyer := loadBuyer(sender)
	if buyer == nil {
		buyer = &ledger.BuyerAccount{}
	}
	led := loadSaleLedger()

	res, err := ledger.ProcessPurchase(*buyer, led, *cfg, amount, payAsset, nowUnix())
	if err != nil {
		revertLedgerError(err)
	}

	sdk.HiveDraw(hostAmount(amount), cfg.PayAsset)
	saveBuyer(sender, &res.Buyer)
	saveSaleLedger(res.Ledger)

	emitBuyEvent(sender.String(), amount, res.Receipt)
	return strptr("bought " + strconv.FormatUint(res.Receipt, 10))
}

// -----------------------------------------------------------------------------
// Sale Engine Queries
// -----------------------------------------------------------------------------

// SaleGetConfig returns the sale parameters plus the running raise total.
func SaleGetConfig(_ *string) *string {
	cfg := loadSaleConfig()
	if cfg == nil {
		sdk.Revert("sale not configured", "not_found")
	}
	led := loadSaleLedger()
	return encodeJSON(wire.SaleState{
		Config: wire.SaleConfig{
			StartTime:  cfg.StartTime,
			EndTime:    cfg.EndTime,
			PayAsset:   cfg.PayAsset.String(),
			SaleAsset:  cfg.SaleAsset.String(),
			MaxRaise:   cfg.MaxRaise,
			PriceNum:   cfg.PriceNum,
			PriceDenom: cfg.PriceDenom,
		},
		TotalRaised: led.TotalRaised,
	})
}

// SaleGetUser returns one buyer record, zeroed when not enrolled.
// Payload: address
func SaleGetUser(payload *string) *string {
	addr := parseAddressField(unwrapPayload(payload, "address required"), "address")
	buyer := loadBuyer(addr)
	if buyer == nil {
		buyer = &ledger.BuyerAccount{}
	}
	return encodeJSON(wire.Buyer{
		Address:    addr.String(),
		Allocation: buyer.Allocation,
		Spent:      buyer.Spent,
		Received:   buyer.Received,
	})
}

// SaleGetUsers returns every enrolled buyer in admin order.
func SaleGetUsers(_ *string) *string {
	addrs := loadBuyerIndex()
	users := make([]wire.Buyer, 0, len(addrs))
	for _, addr := range addrs {
		buyer := loadBuyer(addr)
		if buyer == nil {
			continue
		}
		users = append(users, wire.Buyer{
			Address:    addr.String(),
			Allocation: buyer.Allocation,
			Spent:      buyer.Spent,
			Received:   buyer.Received,
		})
	}
	return encodeJSON(wire.BuyerList{Users: users})
}

// SaleQuote prices a hypothetical payment without touching state.
// Payload: amount
func SaleQuote(payload *string) *string {
	amount := parseAmountField(unwrapPayload(payload, "payment amount required"), "payment amount")
	cfg := loadSaleConfig()
	if cfg == nil {
		sdk.Revert("sale not configured", "not_found")
	}
	return strptr(strconv.FormatUint(cfg.ReceiptAmount(amount), 10))
}
