package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	handlers "github.com/padhaihub/payment-service/internal/adapter/handler/http"
	"github.com/padhaihub/payment-service/internal/config"
	"github.com/padhaihub/payment-service/internal/infrastructure/database"
	"github.com/padhaihub/payment-service/internal/infrastructure/gateway/razorpay"
	"github.com/padhaihub/payment-service/internal/middleware/auth"
	"github.com/padhaihub/payment-service/internal/usecase"
	"go.uber.org/zap"
)

// requestValidator plugs validator/v10 into echo's Validate hook.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

type Server struct {
	config *config.Config
	logger *zap.Logger
	echo   *echo.Echo
	repos  *database.Repositories
}

func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories) *Server {
	e := echo.New()
	e.Validator = &requestValidator{validate: validator.New()}

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Service.ClientURL},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	return &Server{
		config: cfg,
		logger: logger,
		echo:   e,
		repos:  repos,
	}
}

func (s *Server) Start() error {
	// Setup routes
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": "payment",
		})
	})

	// Gateway client and signature verifier are built here and injected;
	// no package-level gateway state.
	rzp := s.config.Service.Razorpay
	gatewayClient := razorpay.NewClient(rzp.KeyID, rzp.KeySecret, s.logger)
	verifier := razorpay.NewVerifier(rzp.KeySecret, rzp.NotificationSecret())

	// Initialize services
	enrollmentService := usecase.NewEnrollmentService(s.repos.Enrollment, s.repos.Resource, s.logger)
	orderService := usecase.NewOrderService(s.repos.Payment, s.repos.Student, s.repos.Resource, gatewayClient, rzp.Currency, s.logger)
	verificationService := usecase.NewVerificationService(s.repos.Payment, s.repos.Revenue, enrollmentService, verifier, s.logger)
	webhookService := usecase.NewWebhookService(s.repos.Payment, s.repos.Revenue, enrollmentService, verifier, s.logger)
	settlementService := usecase.NewSettlementService(s.repos.Payment, s.repos.Revenue, s.logger)
	listingService := usecase.NewListingService(s.repos.Payment, s.logger)

	// Initialize handlers
	paymentHandler := handlers.NewPaymentHandler(orderService, verificationService, listingService, s.logger)
	webhookHandler := handlers.NewWebhookHandler(webhookService, s.logger)
	settlementHandler := handlers.NewSettlementHandler(settlementService, s.logger)

	// JWT middleware configuration
	jwtConfig := auth.JWTConfig{
		Secret: s.config.Service.JWTSecret,
		Logger: s.logger,
		SkipPaths: []string{
			"/health",
			"/webhook",
		},
	}

	// API v1 routes (require JWT authentication)
	v1 := s.echo.Group("/api/v1", auth.JWTMiddleware(jwtConfig))

	payments := v1.Group("/payments")
	payments.POST("/orders", paymentHandler.CreateOrder)
	payments.POST("/verify", paymentHandler.Verify)
	payments.POST("/:id/settle", settlementHandler.Settle)
	payments.GET("/student/:studentId", paymentHandler.GetStudentPayments)
	payments.GET("/educator/:educatorId", paymentHandler.GetEducatorPayments)

	// Webhook route (outside API versioning, signature-authenticated)
	s.echo.POST("/webhook", webhookHandler.HandleWebhook)
}
