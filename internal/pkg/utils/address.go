package utils

import (
	"strings"

	"github.com/ElWaje/PrestamoDefi/internal/pkg/consts"

	"github.com/ethereum/go-ethereum/common"
)

// ValidateAddress checks the 0x-prefixed 20-byte hex format and returns the
// EIP-55 checksummed canonical form. Mixed-case input must already carry a
// valid checksum; all-lower or all-upper input is accepted and canonicalized.
func ValidateAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return common.Address{}, consts.ErrorInvalidAddress
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, consts.ErrorInvalidAddress
	}

	addr := common.HexToAddress(s)

	stripped := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	lower := strings.ToLower(stripped)
	upper := strings.ToUpper(stripped)
	if stripped != lower && stripped != upper && addr.Hex() != "0x"+stripped {
		return common.Address{}, consts.ErrorInvalidAddress
	}

	return addr, nil
}
