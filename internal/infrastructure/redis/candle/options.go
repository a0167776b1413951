package candle

import (
	"strings"

	"github.com/zetamarkets/pyth-history/pkg/errors"
)

// DecodePolicy decides what LoadCandles and LoadPrices do with an entry that fails to decode.
type DecodePolicy string

const (
	// DecodeFail aborts the read with a malformed_record error.
	DecodeFail DecodePolicy = "fail"
	// DecodeSkip drops the entry, logs a warning and carries on.
	DecodeSkip DecodePolicy = "skip"
)

// ParseDecodePolicy maps a config value to a DecodePolicy. Empty means DecodeFail.
func ParseDecodePolicy(s string) (DecodePolicy, error) {
	switch policy := DecodePolicy(strings.ToLower(strings.TrimSpace(s))); policy {
	case "":
		return DecodeFail, nil
	case DecodeFail, DecodeSkip:
		return policy, nil
	default:
		return "", errors.NewErrorDetailsWithObject("Unknown decode error policy", string(errors.InvalidConfigError), "on_decode_error", s)
	}
}

// Options tunes a Store.
type Options struct {
	OnDecodeError DecodePolicy
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{OnDecodeError: DecodeFail}
}
