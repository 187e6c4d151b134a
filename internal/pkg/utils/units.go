package utils

import (
	"math/big"
	"strings"
	"time"

	"github.com/ElWaje/PrestamoDefi/internal/pkg/consts"
)

// The ledger denominates everything in wei: 10^-18 of the display unit.
const baseUnitDecimals = 18

var weiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(baseUnitDecimals), nil)

// ToBaseUnits parses a human-entered decimal amount into wei. Fractional
// digits past the 18th are truncated; anything below wei resolution cannot
// be represented on the ledger.
func ToBaseUnits(display string) (*big.Int, error) {
	s := strings.TrimSpace(display)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return nil, consts.ErrorInvalidAmount
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if !isDigits(intPart) || (fracPart != "" && !isDigits(fracPart)) {
		return nil, consts.ErrorInvalidAmount
	}

	if len(fracPart) > baseUnitDecimals {
		fracPart = fracPart[:baseUnitDecimals]
	}
	fracPart += strings.Repeat("0", baseUnitDecimals-len(fracPart))

	wei, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return nil, consts.ErrorInvalidAmount
	}
	return wei, nil
}

// ToDisplayUnits renders a non-negative wei amount as a decimal string,
// trimming trailing fractional zeros.
func ToDisplayUnits(base *big.Int) string {
	if base == nil || base.Sign() == 0 {
		return "0"
	}

	quo, rem := new(big.Int).QuoRem(base, weiPerEther, new(big.Int))
	if rem.Sign() == 0 {
		return quo.String()
	}

	frac := rem.String()
	frac = strings.Repeat("0", baseUnitDecimals-len(frac)) + frac
	frac = strings.TrimRight(frac, "0")
	return quo.String() + "." + frac
}

// FormatTimestamp renders contract epoch seconds in UTC. The contract uses
// zero for fields it has not set yet; those render empty.
func FormatTimestamp(epoch uint64) string {
	if epoch == 0 {
		return ""
	}
	return time.Unix(int64(epoch), 0).UTC().Format(consts.TimestampLayout)
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
