package routes

import (
	adminapi "compliance-app/internal/api/admin"
	authapi "compliance-app/internal/api/auth"
	"compliance-app/internal/api/billing"
	propertiesapi "compliance-app/internal/api/properties"
	reportsapi "compliance-app/internal/api/reports"
	stripewebhooks "compliance-app/internal/api/stripewebhook"
	tiersapi "compliance-app/internal/api/tiers"
	todosapi "compliance-app/internal/api/todos"
	"compliance-app/internal/api/users"
	"compliance-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Raw body required for signature verification, so no sanitizer here
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/tiers", tiersapi.ListTiers)
	public.GET("/billing/config", tiersapi.BillingConfig)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.POST("/billing/checkout", billing.CreateCheckoutSession)
	auth.POST("/billing/subscribe", billing.CreateSubscription)
	auth.POST("/billing/downgrade", billing.DowngradeToFree)
	auth.POST("/billing/portal", billing.CreateBillingPortal)
	auth.GET("/billing/payments", billing.GetPaymentHistory)

	auth.GET("/properties", propertiesapi.ListProperties)
	auth.POST("/properties", propertiesapi.CreateProperty)
	auth.PUT("/properties/:id", propertiesapi.UpdateProperty)
	auth.DELETE("/properties/:id", propertiesapi.DeleteProperty)

	auth.GET("/todos", todosapi.ListTodos)
	auth.GET("/todos/dashboard", todosapi.Dashboard)
	auth.POST("/todos", todosapi.CreateTodo)
	auth.POST("/properties/:id/todos/quick-generate", todosapi.QuickGenerate)
	auth.PUT("/todos/:id/status", todosapi.SetStatus)
	auth.DELETE("/todos/:id", todosapi.DeleteTodo)

	auth.GET("/reports", reportsapi.ListReports)

	// Quota-guarded
	guarded := auth.Group("/")
	guarded.Use(middleware.RequireReportQuota())
	guarded.POST("/properties/:id/reports", reportsapi.GenerateReport)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/stats", adminapi.GetAdminStats)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.GET("/user/:id", adminapi.GetUserDetails)
}
