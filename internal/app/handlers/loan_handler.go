package handlers

import (
	"errors"
	"net/http"

	"github.com/ElWaje/PrestamoDefi/internal/pkg/consts"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/models"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/services"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	service services.LoanServiceInterface
}

func NewLoanHandler(service services.LoanServiceInterface) *LoanHandler {
	return &LoanHandler{service: service}
}

func (h *LoanHandler) RegisterOfficer(c *gin.Context) {
	var body models.RegisterOfficerRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	receipt, err := h.service.RegisterOfficer(c, body.Caller, body.PrivateKey, body.NewOfficer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *LoanHandler) RegisterBorrower(c *gin.Context) {
	var body models.RegisterBorrowerRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	receipt, err := h.service.RegisterBorrower(c, body.Caller, body.PrivateKey, body.NewBorrower)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *LoanHandler) DepositCollateral(c *gin.Context) {
	var body models.DepositCollateralRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	receipt, err := h.service.DepositCollateral(c, body.Caller, body.PrivateKey, body.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *LoanHandler) RequestLoan(c *gin.Context) {
	var body models.RequestLoanRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	receipt, err := h.service.RequestLoan(c, body.Caller, body.PrivateKey, body.Amount, body.TermSeconds)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *LoanHandler) ApproveLoan(c *gin.Context) {
	var body models.ApproveLoanRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	receipt, err := h.service.ApproveLoan(c, body.Caller, body.PrivateKey, body.Borrower, body.LoanID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *LoanHandler) RepayLoan(c *gin.Context) {
	var body models.RepayLoanRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	receipt, err := h.service.RepayLoan(c, body.Caller, body.PrivateKey, body.LoanID, body.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *LoanHandler) LiquidateCollateral(c *gin.Context) {
	var body models.LiquidateCollateralRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	receipt, err := h.service.LiquidateCollateral(c, body.Caller, body.PrivateKey, body.Borrower, body.LoanID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *LoanHandler) LoansByBorrower(c *gin.Context) {
	loans, err := h.service.LoansByBorrower(c, c.Param("borrower"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"loans": loans})
}

func (h *LoanHandler) LoanDetail(c *gin.Context) {
	var params struct {
		Borrower string `uri:"borrower" binding:"required"`
		LoanID   uint64 `uri:"id"`
	}
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	detail, err := h.service.LoanDetail(c, params.Borrower, params.LoanID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *LoanHandler) CollateralAccount(c *gin.Context) {
	account, err := h.service.CollateralAccount(c, c.Param("address"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{
		"error": err.Error(),
		"code":  utils.GetErrorCode(err),
	})
}

// statusForError maps the domain sentinels onto HTTP statuses. Validation
// failures never reached the ledger; 502/504 mean the ledger itself did
// not cooperate.
func statusForError(err error) int {
	switch {
	case errors.Is(err, consts.ErrorInvalidAddress),
		errors.Is(err, consts.ErrorInvalidAmount),
		errors.Is(err, consts.ErrorInvalidAccount),
		errors.Is(err, consts.ErrorInvalidPrivateKey):
		return http.StatusBadRequest
	case errors.Is(err, consts.ErrorNotAuthorized),
		errors.Is(err, consts.ErrorNotActivated):
		return http.StatusForbidden
	case errors.Is(err, consts.ErrorInsufficientFunds),
		errors.Is(err, consts.ErrorTransactionReverted),
		errors.Is(err, consts.ErrorEstimationFailed),
		errors.Is(err, consts.ErrorTransactionNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, consts.ErrorLedgerUnreachable),
		errors.Is(err, consts.ErrorRetriesExhausted):
		return http.StatusBadGateway
	case errors.Is(err, consts.ErrorConfirmationTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
