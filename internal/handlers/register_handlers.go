package handlers

import (
	portssvc "github.com/bankwise/bank_account_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	// Delegate route registration to specific handlers, passing required services
	registerAccountRoutes(v1, services.Account, services.Transfer)
	registerTransferRoutes(v1, services.Transfer)
	registerCurrencyRoutes(v1, services.Currency, services.Exchange)
}
