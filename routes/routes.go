package routes

import (
	"net/http"

	"goldentouch-backend/config"
	"goldentouch-backend/controllers"
	"goldentouch-backend/monitoring"
	"goldentouch-backend/session"
	"goldentouch-backend/store"
	"goldentouch-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Dependencies carries the shared state handed to every controller.
type Dependencies struct {
	Store   *store.Store
	Session *session.Session
}

func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger())
	r.Use(monitoring.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(monitoring.Handler()))

	authController := &controllers.AuthController{Session: deps.Session}
	clientController := &controllers.ClientController{Store: deps.Store}
	serviceController := &controllers.ServiceController{Store: deps.Store}
	appointmentController := &controllers.AppointmentController{Store: deps.Store}
	financeController := &controllers.FinanceController{Store: deps.Store}
	feedbackController := &controllers.FeedbackController{Store: deps.Store}
	dashboardController := &controllers.DashboardController{Store: deps.Store}
	reportController := &controllers.ReportController{Store: deps.Store}
	exportController := &controllers.ExportController{Store: deps.Store}

	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.GET("/state", authController.State)

		auth.Use(utils.AuthMiddleware())
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		services := api.Group("/services")
		{
			services.GET("", serviceController.List)
			services.GET("/:id", serviceController.Get)

			services.Use(utils.AdminOnly())
			services.POST("", serviceController.Create)
			services.PUT("/:id", serviceController.Update)
			services.DELETE("/:id", serviceController.Delete)
		}

		clients := api.Group("/clients", utils.AdminOnly())
		{
			clients.POST("", clientController.Create)
			clients.GET("", clientController.List)
			clients.GET("/birthdays", clientController.Birthdays)
			clients.GET("/:id", clientController.Get)
			clients.PUT("/:id", clientController.Update)
			clients.DELETE("/:id", clientController.Delete)
		}

		appointments := api.Group("/appointments")
		{
			appointments.GET("/upcoming", appointmentController.Upcoming)
			appointments.POST("", appointmentController.Book)

			appointments.Use(utils.AdminOnly())
			appointments.GET("", appointmentController.List)
			appointments.PUT("/:id", appointmentController.Update)
			appointments.PUT("/:id/status", appointmentController.UpdateStatus)
			appointments.DELETE("/:id", appointmentController.Delete)
		}

		expenses := api.Group("/expenses", utils.AdminOnly())
		{
			expenses.POST("", financeController.CreateExpense)
			expenses.GET("", financeController.ListExpenses)
			expenses.DELETE("/:id", financeController.DeleteExpense)
		}

		revenues := api.Group("/revenues", utils.AdminOnly())
		{
			revenues.POST("", financeController.CreateRevenue)
			revenues.GET("", financeController.ListRevenues)
			revenues.DELETE("/:id", financeController.DeleteRevenue)
		}

		feedback := api.Group("/feedback")
		{
			feedback.POST("", feedbackController.Create)
			feedback.GET("", utils.AdminOnly(), feedbackController.List)
		}

		api.GET("/finance/summary", utils.AdminOnly(), financeController.Summary)
		api.GET("/dashboard", utils.AdminOnly(), dashboardController.Overview)
		api.GET("/reports", utils.AdminOnly(), reportController.GetAnalytics)
		api.GET("/export/:entity", utils.AdminOnly(), exportController.Export)
	}

	return r
}
