package router

import (
	"time"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/config"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/handler"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/infra"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/middleware"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/repository"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/service"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Mongo/Redis
func New(cfg *config.Config, db *mongo.Database, rdb *redis.Client, gatewayCB *infra.CircuitBreaker, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	gateway := infra.NewGatewayClient(cfg.PaymentGatewayURL, cfg.PaymentGatewayKey)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	cartRepo := repository.NewCartRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(cfg)
	userSvc := service.NewUserService(userRepo)
	menuSvc := service.NewMenuService(menuRepo, rdb)
	reviewSvc := service.NewReviewService(reviewRepo)
	cartSvc := service.NewCartService(cartRepo, userRepo)
	bookingSvc := service.NewBookingService(bookingRepo, userRepo)
	paymentSvc := service.NewPaymentService(paymentRepo, cartRepo, gateway, gatewayCB, dispatcher)
	statsSvc := service.NewStatsService(userRepo, menuRepo, paymentRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(userSvc)
	menuH := handler.NewMenuHandler(menuSvc)
	reviewsH := handler.NewReviewsHandler(reviewSvc)
	cartsH := handler.NewCartsHandler(cartSvc)
	bookingsH := handler.NewBookingsHandler(bookingSvc)
	paymentsH := handler.NewPaymentsHandler(paymentSvc)
	statsH := handler.NewStatsHandler(statsSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, gatewayCB))
	r.POST("/jwt", middleware.TokenRateLimiter(), authH.IssueToken)
	r.POST("/users", usersH.Register)
	r.GET("/menu", menuH.List)
	r.GET("/menu/:id", menuH.Get)
	r.GET("/reviews", reviewsH.List)
	r.POST("/reviews", reviewsH.Create)
	r.POST("/bookings", bookingsH.Create)
	r.POST("/create-payment-intent", paymentsH.CreateIntent)
	r.POST("/payments", paymentsH.Settle)

	// Guards
	authMW := middleware.JWTAuth(cfg.JWTSecret)
	adminMW := middleware.RequireAdmin(userRepo)

	// Authenticated
	authed := r.Group("", authMW)
	{
		authed.GET("/users/admin/:email", usersH.CheckAdmin) // self-check only
		authed.GET("/carts", cartsH.List)
		authed.POST("/carts", cartsH.Add)
		authed.DELETE("/carts/:id", cartsH.Remove) // owner or admin, checked in service
		authed.GET("/bookings", bookingsH.ListMine)
		authed.DELETE("/bookings/:id", bookingsH.Remove) // owner or admin
		authed.GET("/payments/:email", paymentsH.ListByEmail)
	}

	// Admin only
	admin := r.Group("", authMW, adminMW)
	{
		admin.GET("/users", usersH.List)
		admin.PATCH("/users/admin/:id", usersH.Promote)
		admin.DELETE("/users/:id", usersH.Delete)
		admin.POST("/menu", menuH.Create)
		admin.PATCH("/menu/:id", menuH.Update)
		admin.DELETE("/menu/:id", menuH.Delete)
		admin.GET("/admin/bookings", bookingsH.ListAll)
		admin.GET("/admin-stats", statsH.AdminStats)
		admin.GET("/order-stats", statsH.OrderStats)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
