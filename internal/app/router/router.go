package router

import (
	"github.com/ElWaje/PrestamoDefi/configs"
	"github.com/ElWaje/PrestamoDefi/internal/app/handlers"
	"github.com/ElWaje/PrestamoDefi/internal/app/middleware"
	"github.com/ElWaje/PrestamoDefi/internal/pkg/services"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func SetupRouter(service services.LoanServiceInterface) *gin.Engine {

	r := gin.Default()
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.AttachRequestDetails())

	loanHandler := handlers.NewLoanHandler(service)

	r.POST("/officers", loanHandler.RegisterOfficer)
	r.POST("/borrowers", loanHandler.RegisterBorrower)
	r.POST("/collateral/deposit", loanHandler.DepositCollateral)
	r.POST("/collateral/liquidate", loanHandler.LiquidateCollateral)
	r.POST("/loans/request", loanHandler.RequestLoan)
	r.POST("/loans/approve", loanHandler.ApproveLoan)
	r.POST("/loans/repay", loanHandler.RepayLoan)

	r.GET("/loans/:borrower", loanHandler.LoansByBorrower)
	r.GET("/loans/:borrower/:id", loanHandler.LoanDetail)
	r.GET("/accounts/:address", loanHandler.CollateralAccount)

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"message": "Health Check"})
	})

	return r
}
