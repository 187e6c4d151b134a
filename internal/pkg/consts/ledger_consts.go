package consts

// Contract method names as exposed by the deployed lending contract ABI.
const (
	MethodPrincipalIssuer     = "principalIssuer"
	MethodOfficers            = "officers"
	MethodAccounts            = "accounts"
	MethodRegisterOfficer     = "registerOfficer"
	MethodRegisterBorrower    = "registerBorrower"
	MethodDepositCollateral   = "depositCollateral"
	MethodRequestLoan         = "requestLoan"
	MethodApproveLoan         = "approveLoan"
	MethodRepayLoan           = "repayLoan"
	MethodLiquidateCollateral = "liquidateCollateral"
	MethodLoansByBorrower     = "loansByBorrower"
	MethodLoanDetail          = "loanDetail"
)

// Loan lifecycle states as rendered to callers. The contract encodes them
// as uint8 codes 0..3; anything else is surfaced as Unknown.
const (
	LoanStatusPending    = "Pending"
	LoanStatusApproved   = "Approved"
	LoanStatusRepaid     = "Repaid"
	LoanStatusLiquidated = "Liquidated"
	LoanStatusUnknown    = "Unknown"
)

// Timestamps coming back from the contract are epoch seconds; they are
// rendered in this layout, in UTC.
const TimestampLayout = "2006-01-02 15:04:05"
