package main

import (
	"bytes"
	"encoding/binary"
	"errors"

	"moonpad/contract/ledger"
	"moonpad/sdk"
)

// Stored records use a compact deterministic binary form instead of json:
// the wasm binary stays small and storage diffs are stable byte for byte.

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAsset just dumps the ticker string, nothing fancy but consistent.
func (w *binWriter) writeAsset(a sdk.Asset) {
	w.writeString(a.String())
}

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can read sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

// readUint64 decodes big endian integers for amounts and totals.
func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

// readInt64 simply casts the unsigned read, matching the writer logic.
func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// readVarUint undoes the compact varint encoding for lengths/counts.
func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

// readString reads the varint length then slices out the utf8 chunk.
func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(l) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

func (r *binReader) readAsset() (sdk.Asset, error) {
	s, err := r.readString()
	if err != nil {
		return sdk.Asset(""), err
	}
	return sdk.Asset(s), nil
}

// ------------------------------------------------------------------
// Record codecs
// ------------------------------------------------------------------

// EncodeSchedule packs the vesting schedule into bytes for storage.
func EncodeSchedule(s *ledger.VestingSchedule) []byte {
	w := newWriter()
	w.writeAsset(s.RewardAsset)
	w.writeUint64(s.InitialUnlockBps)
	w.writeInt64(s.StartTime)
	w.writeInt64(s.CliffSeconds)
	w.writeInt64(s.VestingSeconds)
	w.writeInt64(s.IntervalSeconds)
	return w.bytes()
}

// DecodeSchedule restores a schedule written by EncodeSchedule.
func DecodeSchedule(data []byte) (*ledger.VestingSchedule, error) {
	r := newReader(data)
	s := &ledger.VestingSchedule{}
	var err error
	if s.RewardAsset, err = r.readAsset(); err != nil {
		return nil, err
	}
	if s.InitialUnlockBps, err = r.readUint64(); err != nil {
		return nil, err
	}
	if s.StartTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if s.CliffSeconds, err = r.readInt64(); err != nil {
		return nil, err
	}
	if s.VestingSeconds, err = r.readInt64(); err != nil {
		return nil, err
	}
	if s.IntervalSeconds, err = r.readInt64(); err != nil {
		return nil, err
	}
	return s, nil
}

// EncodeClaimAccount packs a per-beneficiary claim record.
func EncodeClaimAccount(a *ledger.ClaimAccount) []byte {
	w := newWriter()
	w.writeUint64(a.Reward)
	w.writeUint64(a.Withdrawn)
	return w.bytes()
}

// DecodeClaimAccount restores a record written by EncodeClaimAccount.
func DecodeClaimAccount(data []byte) (*ledger.ClaimAccount, error) {
	r := newReader(data)
	a := &ledger.ClaimAccount{}
	var err error
	if a.Reward, err = r.readUint64(); err != nil {
		return nil, err
	}
	if a.Withdrawn, err = r.readUint64(); err != nil {
		return nil, err
	}
	return a, nil
}

// EncodeSaleConfig packs the sale parameter record.
func EncodeSaleConfig(c *ledger.SaleConfig) []byte {
	w := newWriter()
	w.writeInt64(c.StartTime)
	w.writeInt64(c.EndTime)
	w.writeAsset(c.PayAsset)
	w.writeAsset(c.SaleAsset)
	w.writeUint64(c.MaxRaise)
	w.writeUint64(c.PriceNum)
	w.writeUint64(c.PriceDenom)
	return w.bytes()
}

// DecodeSaleConfig restores a record written by EncodeSaleConfig.
func DecodeSaleConfig(data []byte) (*ledger.SaleConfig, error) {
	r := newReader(data)
	c := &ledger.SaleConfig{}
	var err error
	if c.StartTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if c.EndTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if c.PayAsset, err = r.readAsset(); err != nil {
		return nil, err
	}
	if c.SaleAsset, err = r.readAsset(); err != nil {
		return nil, err
	}
	if c.MaxRaise, err = r.readUint64(); err != nil {
		return nil, err
	}
	if c.PriceNum, err = r.readUint64(); err != nil {
		return nil, err
	}
	if c.PriceDenom, err = r.readUint64(); err != nil {
		return nil, err
	}
	return c, nil
}

// EncodeBuyer packs a per-buyer sale record.
func EncodeBuyer(b *ledger.BuyerAccount) []byte {
	w := newWriter()
	w.writeUint64(b.Allocation)
	w.writeUint64(b.Spent)
	w.writeUint64(b.Received)
	return w.bytes()
}

// DecodeBuyer restores a record written by EncodeBuyer.
func DecodeBuyer(data []byte) (*ledger.BuyerAccount, error) {
	r := newReader(data)
	b := &ledger.BuyerAccount{}
	var err error
	if b.Allocation, err = r.readUint64(); err != nil {
		return nil, err
	}
	if b.Spent, err = r.readUint64(); err != nil {
		return nil, err
	}
	if b.Received, err = r.readUint64(); err != nil {
		return nil, err
	}
	return b, nil
}

// EncodeAddressIndex packs the ordered enrollment list for either engine.
func EncodeAddressIndex(addrs []sdk.Address) []byte {
	w := newWriter()
	w.writeVarUint(uint64(len(addrs)))
	for _, a := range addrs {
		w.writeString(a.String())
	}
	return w.bytes()
}

// DecodeAddressIndex restores a list written by EncodeAddressIndex.
func DecodeAddressIndex(data []byte) ([]sdk.Address, error) {
	r := newReader(data)
	n, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	addrs := make([]sdk.Address, 0, n)
	for i := uint64(0); i < n; i++ {
		s, err := r.readString()
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, sdk.Address(s))
	}
	return addrs, nil
}
