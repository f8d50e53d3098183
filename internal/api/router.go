package api

import (
	"context"
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/quickbasket/commerce-api/docs"
	"github.com/quickbasket/commerce-api/internal/api/handler"
	"github.com/quickbasket/commerce-api/internal/api/middleware"
	"github.com/quickbasket/commerce-api/internal/core/domain"
	"github.com/quickbasket/commerce-api/internal/core/service"
	"github.com/quickbasket/commerce-api/internal/core/token"
	mongodb "github.com/quickbasket/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/quickbasket/commerce-api/internal/infrastructure/db/redis"
	"github.com/quickbasket/commerce-api/internal/infrastructure/http/handlers"
	"github.com/quickbasket/commerce-api/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered. It also
// creates the user collection's unique email index, which backs the store's
// uniqueness invariant.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	issuer, err := token.NewIssuer(token.Secrets{
		Access:  cfg.Tokens.AccessSecret,
		Refresh: cfg.Tokens.RefreshSecret,
		Legacy:  cfg.Tokens.LegacySecret,
	})
	if err != nil {
		return nil, err
	}

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("user indexes: %w", err)
	}
	productRepo := mongodb.NewProductRepository(db)
	cartRepo := mongodb.NewCartRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb)

	admin := service.BootstrapAdmin{Email: cfg.Admin.Email, Password: cfg.Admin.Password}
	authService := service.NewAuthService(userRepo, issuer, admin, log)
	productService := service.NewProductService(productRepo, catalogCache, log)
	cartService := service.NewCartService(cartRepo, productRepo, log)
	accountService := service.NewAccountService(userRepo, cartRepo)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	accountHandler := handler.NewAccountHandler(accountService)

	requireAuth := middleware.Auth(cfg.Tokens.LegacySecret)
	requireAdmin := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/refresh-token", authHandler.Refresh)
	auth.POST("/biometric-login", authHandler.BiometricLogin)
	auth.POST("/add-biometric", authHandler.AddBiometric)
	auth.POST("/remove-biometric", authHandler.RemoveBiometric)
	auth.GET("/biometric-status/:email", authHandler.BiometricStatus)

	// --- Catalog ---
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)
	e.POST("/products", productHandler.Create, requireAuth, requireAdmin)
	e.DELETE("/products/:id", productHandler.Delete, requireAuth, requireAdmin)

	// --- Cart ---
	cart := e.Group("/cart", requireAuth)
	cart.POST("/add", cartHandler.Add)
	cart.PUT("/update", cartHandler.Update)
	cart.DELETE("/remove", cartHandler.Remove)
	cart.POST("/buyall/:userId", cartHandler.BuyAll)
	cart.GET("/:userId", cartHandler.Get)

	// --- User / admin projections ---
	e.GET("/user/role", accountHandler.Role, requireAuth)

	adminGroup := e.Group("/admin", requireAuth, requireAdmin)
	adminGroup.GET("/users", accountHandler.ListUsers)
	adminGroup.GET("/cartitems", accountHandler.ListCartItems)
	adminGroup.GET("/profile", accountHandler.Profile)

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
