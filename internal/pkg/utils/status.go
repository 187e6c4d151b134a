package utils

import "github.com/ElWaje/PrestamoDefi/internal/pkg/consts"

// MapLoanStatus maps the contract's uint8 lifecycle code to its display
// name. Codes the client does not know are surfaced as Unknown, not hidden.
func MapLoanStatus(code uint8) string {
	switch code {
	case 0:
		return consts.LoanStatusPending
	case 1:
		return consts.LoanStatusApproved
	case 2:
		return consts.LoanStatusRepaid
	case 3:
		return consts.LoanStatusLiquidated
	default:
		return consts.LoanStatusUnknown
	}
}
