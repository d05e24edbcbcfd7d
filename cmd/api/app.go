package main

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/loja-api/docs"
	"github.com/hugohenrick/loja-api/internal/adapter/api/controller"
	"github.com/hugohenrick/loja-api/internal/adapter/api/route"
	"github.com/hugohenrick/loja-api/internal/adapter/repository"
	"github.com/hugohenrick/loja-api/internal/adapter/repository/memory"
	"github.com/hugohenrick/loja-api/internal/config"
	"github.com/hugohenrick/loja-api/internal/domain/cart"
	"github.com/hugohenrick/loja-api/internal/domain/catalog"
	"github.com/hugohenrick/loja-api/internal/domain/expense"
	"github.com/hugohenrick/loja-api/internal/domain/finance"
	"github.com/hugohenrick/loja-api/internal/domain/order"
	"github.com/hugohenrick/loja-api/internal/domain/user"
	"github.com/hugohenrick/loja-api/internal/infrastructure/database"
	"github.com/hugohenrick/loja-api/internal/infrastructure/geocoding"
	"github.com/hugohenrick/loja-api/internal/service"
	"github.com/hugohenrick/loja-api/pkg/auth"
	"github.com/hugohenrick/loja-api/pkg/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// repositories agrupa os repositórios de um backend de armazenamento
type repositories struct {
	categories catalog.CategoryRepository
	products   catalog.ProductRepository
	carts      cart.Repository
	orders     order.Repository
	uow        order.UnitOfWork
	expenses   expense.Repository
	users      user.Repository
	finance    finance.Repository
	check      controller.StorageChecker
}

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *database.PostgresDB
	log    logger.Logger
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	app := &App{log: log}

	repos, err := app.openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewJWTService(cfg.JWT)
	if err != nil {
		app.Close()
		return nil, err
	}

	loc := cfg.Location()
	geocoder := geocoding.NewNominatimClient(cfg.Geocoder, log)

	// Criar serviços
	userService := service.NewUserService(repos.users, log)
	authService := service.NewAuthService(userService, repos.users, tokens, log)
	catalogService := service.NewCatalogService(repos.categories, repos.products, log)
	cartService := service.NewCartService(repos.carts, repos.products, log)
	orderService := service.NewOrderService(repos.orders, repos.uow, repos.carts, geocoder, log)
	expenseService := service.NewExpenseService(repos.expenses, loc, log)
	financeService := service.NewFinanceService(repos.finance, loc, log)

	// Criar controllers
	controllers := route.Controllers{
		Health:   controller.NewHealthController(cfg.Storage, repos.check, log),
		Auth:     controller.NewAuthController(authService, log),
		User:     controller.NewUserController(userService, log),
		Category: controller.NewCategoryController(catalogService, log),
		Product:  controller.NewProductController(catalogService, log),
		Cart:     controller.NewCartController(cartService, log),
		Order:    controller.NewOrderController(orderService, log),
		Expense:  controller.NewExpenseController(expenseService, log),
		Finance:  controller.NewFinanceController(financeService, log),
	}

	if cfg.Server.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinMiddleware(log))
	router.Use(cors.New(corsConfig(cfg.Server.CORSAllowedOrigins)))

	docs.SwaggerInfo.BasePath = cfg.Server.BasePath
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	route.SetupRoutes(router.Group(cfg.Server.BasePath), controllers, auth.JWTAuthMiddleware(tokens))

	app.router = router
	return app, nil
}

// openStorage monta os repositórios do backend configurado
func (a *App) openStorage(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if cfg.Storage == config.StorageMemory {
		a.log.Warn("usando armazenamento em memória; os dados são perdidos ao reiniciar")
		store := memory.New()
		return &repositories{
			categories: store.Categories(),
			products:   store.Products(),
			carts:      store.Carts(),
			orders:     store.Orders(),
			uow:        store.UnitOfWork(),
			expenses:   store.Expenses(),
			users:      store.Users(),
			finance:    store.Finance(),
		}, nil
	}

	if cfg.Server.AutoMigrate {
		if err := database.RunMigrations(cfg.Postgres.ConnectionString()); err != nil {
			return nil, fmt.Errorf("erro ao executar migrações: %w", err)
		}
		a.log.Info("migrações aplicadas")
	}

	db, err := database.NewPostgresDB(ctx, cfg.Postgres, a.log)
	if err != nil {
		return nil, err
	}
	a.db = db

	pool := db.Pool()
	return &repositories{
		categories: repository.NewCategoryRepository(pool),
		products:   repository.NewProductRepository(pool),
		carts:      repository.NewCartRepository(pool),
		orders:     repository.NewOrderRepository(pool),
		uow:        repository.NewOrderUnitOfWork(pool, a.log),
		expenses:   repository.NewExpenseRepository(pool),
		users:      repository.NewUserRepository(pool),
		finance:    repository.NewFinanceRepository(db.SQLX()),
		check:      pool.Ping,
	}, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
