// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"canopy/internal/delivery/http/middleware"
	"canopy/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	RequestHandler       *handler.RequestHandler
	LandPlotHandler      *handler.LandPlotHandler
	QuestionnaireHandler *handler.QuestionnaireHandler
	ProfileHandler       *handler.ProfileHandler
	RiskHandler          *handler.RiskHandler
	DirectoryHandler     *handler.DirectoryHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	requestHandler       *handler.RequestHandler
	landPlotHandler      *handler.LandPlotHandler
	questionnaireHandler *handler.QuestionnaireHandler
	profileHandler       *handler.ProfileHandler
	riskHandler          *handler.RiskHandler
	directoryHandler     *handler.DirectoryHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		requestHandler:       params.RequestHandler,
		landPlotHandler:      params.LandPlotHandler,
		questionnaireHandler: params.QuestionnaireHandler,
		profileHandler:       params.ProfileHandler,
		riskHandler:          params.RiskHandler,
		directoryHandler:     params.DirectoryHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Everything below requires a valid access token.
	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	api.GET("/me", r.authHandler.Me)

	// Request workflow, visible to both parties. The usecase decides which
	// side of each request the caller acts as.
	requestGroup := api.Group("/requests")
	{
		requestGroup.POST("", r.requestHandler.CreateRequest)
		requestGroup.GET("", r.requestHandler.ListRequests)
		requestGroup.GET("/shared-plots", r.requestHandler.GetSharedPlots)
		requestGroup.GET("/:id", r.requestHandler.GetRequest)
		requestGroup.POST("/:id/respond", r.requestHandler.RespondToRequest)

		// Purchase order fulfillment: the supplier assembles and submits
		// the payload, both parties read the response, the customer reads
		// the backing plots.
		requestGroup.GET("/:id/purchase-order", r.requestHandler.GetPurchaseOrderDetails,
			r.authMiddleware.RequireRole("supplier"))
		requestGroup.POST("/:id/purchase-order", r.requestHandler.SubmitPurchaseOrderData,
			r.authMiddleware.RequireRole("supplier"))
		requestGroup.GET("/:id/purchase-order/response", r.requestHandler.GetPurchaseOrderResponse)
		requestGroup.GET("/:id/purchase-order/plots", r.requestHandler.GetPurchaseOrderPlots,
			r.authMiddleware.RequireRole("customer"))
	}
	api.GET("/dashboard/stats", r.requestHandler.GetDashboardStats)

	// Land plot registry, supplier side only.
	plotGroup := api.Group("/plots")
	plotGroup.Use(r.authMiddleware.RequireRole("supplier"))
	{
		plotGroup.POST("", r.landPlotHandler.CreateLandPlot)
		plotGroup.POST("/bulk", r.landPlotHandler.BulkCreateLandPlots)
		plotGroup.GET("", r.landPlotHandler.ListLandPlots)
		plotGroup.GET("/:plotID", r.landPlotHandler.GetLandPlot)
		plotGroup.PUT("/:plotID", r.landPlotHandler.UpdateLandPlot)
		plotGroup.POST("/:plotID/recalculate", r.landPlotHandler.RecalculateAnalysis)
		plotGroup.DELETE("/:plotID", r.landPlotHandler.DeleteLandPlot)
		plotGroup.GET("/:plotID/qrcode", r.landPlotHandler.PlotQRCode)
	}

	// Questionnaire workflow, visible to both parties.
	questionnaireGroup := api.Group("/questionnaires")
	{
		questionnaireGroup.POST("", r.questionnaireHandler.CreateQuestionnaire)
		questionnaireGroup.GET("", r.questionnaireHandler.ListQuestionnaires)
		questionnaireGroup.GET("/:id", r.questionnaireHandler.GetQuestionnaire)
		questionnaireGroup.POST("/:id/answers", r.questionnaireHandler.SubmitAnswers)
		questionnaireGroup.POST("/:id/questions/:questionID/file", r.questionnaireHandler.UploadAnswerFile)
		questionnaireGroup.DELETE("/:id", r.questionnaireHandler.DeleteQuestionnaire)
	}

	// Organization and contact profile.
	profileGroup := api.Group("/profile")
	{
		profileGroup.GET("/organization", r.profileHandler.GetOrganizationProfile)
		profileGroup.PUT("/organization", r.profileHandler.SaveOrganizationProfile)
		profileGroup.POST("/certificates", r.profileHandler.AddCertificate)
		profileGroup.DELETE("/certificates/:id", r.profileHandler.DeleteCertificate)
		profileGroup.GET("/contact", r.profileHandler.GetContactProfile)
		profileGroup.PUT("/contact", r.profileHandler.UpdateContactProfile)
	}

	// Risk views, customer side only.
	riskGroup := api.Group("/risk")
	riskGroup.Use(r.authMiddleware.RequireRole("customer"))
	{
		riskGroup.GET("/dashboard", r.riskHandler.GetRiskDashboardData)
		riskGroup.POST("/analyze", r.riskHandler.RunRiskAnalysis)
		riskGroup.GET("/suppliers", r.riskHandler.GetSuppliersWithRisk)
	}

	// Directories available to any authenticated user.
	directoryGroup := api.Group("/directory")
	{
		directoryGroup.GET("/suppliers", r.directoryHandler.GetSuppliers)
		directoryGroup.GET("/products", r.directoryHandler.GetProducts)
	}
}
