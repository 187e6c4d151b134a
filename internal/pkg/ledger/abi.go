package ledger

import "math/big"

// Interface definition of the deployed lending contract. CONTRACT_ABI_PATH
// overrides this with a schema file when the deployment differs.
const defaultContractABI = `[
  {"type":"function","name":"principalIssuer","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"officers","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"accounts","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"activated","type":"bool"},{"name":"balance","type":"uint256"}]},
  {"type":"function","name":"registerOfficer","stateMutability":"nonpayable","inputs":[{"name":"newOfficer","type":"address"}],"outputs":[]},
  {"type":"function","name":"registerBorrower","stateMutability":"nonpayable","inputs":[{"name":"newBorrower","type":"address"}],"outputs":[]},
  {"type":"function","name":"depositCollateral","stateMutability":"payable","inputs":[],"outputs":[]},
  {"type":"function","name":"requestLoan","stateMutability":"nonpayable","inputs":[{"name":"amount","type":"uint256"},{"name":"term","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"approveLoan","stateMutability":"nonpayable","inputs":[{"name":"borrower","type":"address"},{"name":"loanId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"repayLoan","stateMutability":"payable","inputs":[{"name":"loanId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"liquidateCollateral","stateMutability":"nonpayable","inputs":[{"name":"borrower","type":"address"},{"name":"loanId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"loansByBorrower","stateMutability":"view","inputs":[{"name":"borrower","type":"address"}],"outputs":[{"name":"","type":"tuple[]","components":[{"name":"id","type":"uint256"},{"name":"amount","type":"uint256"},{"name":"term","type":"uint256"},{"name":"requestedAt","type":"uint256"},{"name":"status","type":"uint8"}]}]},
  {"type":"function","name":"loanDetail","stateMutability":"view","inputs":[{"name":"borrower","type":"address"},{"name":"loanId","type":"uint256"}],"outputs":[{"name":"id","type":"uint256"},{"name":"borrower","type":"address"},{"name":"amount","type":"uint256"},{"name":"term","type":"uint256"},{"name":"requestedAt","type":"uint256"},{"name":"dueAt","type":"uint256"},{"name":"status","type":"uint8"}]}
]`

// LoanRecord mirrors the contract's loan tuple as returned by
// loansByBorrower.
type LoanRecord struct {
	Id          *big.Int
	Amount      *big.Int
	Term        *big.Int
	RequestedAt *big.Int
	Status      uint8
}
