package main

import (
	"strconv"
	"strings"

	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"moonpad/sdk"
)

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}

// parseAmountField parses a payload field as an integer amount, reverting
// with input_error on garbage so callers stay one-liners.
func parseAmountField(val string, field string) uint64 {
	n, err := strconv.ParseUint(strings.TrimSpace(val), 10, 64)
	if err != nil {
		sdk.Revert("invalid "+field, "input_error")
	}
	return n
}

// parseAddressField trims and validates a payload address field.
func parseAddressField(val string, field string) sdk.Address {
	v := strings.TrimSpace(val)
	if v == "" {
		sdk.Revert("missing "+field, "input_error")
	}
	return sdk.Address(v)
}

// decodeJSON funnels every tinyjson payload decode through one revert path.
func decodeJSON(raw string, out interface{ UnmarshalTinyJSON(*jlexer.Lexer) }, what string) {
	l := jlexer.Lexer{Data: []byte(raw)}
	out.UnmarshalTinyJSON(&l)
	if l.Error() != nil {
		sdk.Revert("malformed "+what+" payload", "input_error")
	}
}

// encodeJSON renders a query response through tinyjson.
func encodeJSON(in interface{ MarshalTinyJSON(*jwriter.Writer) }) *string {
	w := jwriter.Writer{}
	in.MarshalTinyJSON(&w)
	b, err := w.Buffer.BuildBytes(), w.Error
	if err != nil {
		sdk.Abort("could not serialize response")
	}
	return strptr(string(b))
}

func strptr(s string) *string { return &s }
