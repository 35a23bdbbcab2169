package routes

import (
	"context"
	"log"

	"bahia_gestao/internal/adapter/cache"
	"bahia_gestao/internal/adapter/export"
	"bahia_gestao/internal/adapter/http/handlers"
	"bahia_gestao/internal/adapter/http/middleware"
	"bahia_gestao/internal/adapter/persistence/repository"
	"bahia_gestao/internal/domain/dashboard"
	"bahia_gestao/internal/infrastructure/auth"
	"bahia_gestao/internal/infrastructure/config"
	"bahia_gestao/internal/infrastructure/database"
	"bahia_gestao/internal/infrastructure/payments"
	"bahia_gestao/internal/usecase"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

type handlerSet struct {
	auth        *handlers.AuthHandler
	profile     *handlers.ProfileHandler
	product     *handlers.ProductHandler
	service     *handlers.ServiceHandler
	cart        *handlers.CartHandler
	budget      *handlers.BudgetHandler
	payment     *handlers.BudgetPaymentHandler
	customer    *handlers.CustomerHandler
	appointment *handlers.AppointmentHandler
	kanban      *handlers.KanbanHandler
	expense     *handlers.ExpenseHandler
	dashboard   *handlers.DashboardHandler
	authUseCase usecase.IAuthUseCase
	authLimiter gin.HandlerFunc
}

func getRoutes(cfg config.Config) {
	h := buildHandlers(cfg)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, h.auth, h.authUseCase, h.authLimiter)

	// Rotas autenticadas
	private := v1.Group("")
	private.Use(middleware.Authenticate(h.authUseCase))
	addProfileRoutes(private, h.profile)
	addCatalogRoutes(private, h.product, h.service)
	addSalesRoutes(private, h.cart, h.budget, h.payment, h.customer)
	addAppointmentRoutes(private, h.appointment)
	addKanbanRoutes(private, h.kanban)
	addExpenseRoutes(private, h.expense)
	addDashboardRoutes(private, h.dashboard)
}

func buildHandlers(cfg config.Config) handlerSet {
	ctx := context.Background()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}
	authDB, err := database.ConnectAuthDB(cfg.AuthDB)
	if err != nil {
		log.Fatalf("Failed to connect to auth database: %v", err)
	}
	if err := repository.MigrateUserDB(authDB); err != nil {
		log.Fatalf("Failed to migrate auth database: %v", err)
	}
	rdb, err := database.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	productRepo := repository.NewProductDynamoRepository(ddb)
	serviceRepo := repository.NewServiceDynamoRepository(ddb)
	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	budgetRepo := repository.NewBudgetDynamoRepository(ddb)
	paymentRepo := repository.NewBudgetPaymentDynamoRepository(ddb)
	appointmentRepo := repository.NewAppointmentDynamoRepository(ddb)
	columnRepo := repository.NewKanbanColumnDynamoRepository(ddb)
	projectRepo := repository.NewProjectDynamoRepository(ddb)
	expenseRepo := repository.NewExpenseDynamoRepository(ddb)
	fulfillment := repository.NewFulfillmentDynamoRepository(ddb)
	userRepo := repository.NewUserGormRepository(authDB)

	carts := cache.NewCartRedisStore(rdb, cfg.CartTTL)
	guard := cache.NewOperationGuard(rdb, cfg.GuardTTL)
	denylist := cache.NewTokenDenylist(rdb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken, cfg.Payments.Mock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	tokens := auth.NewJWTIssuer(cfg.JWT.Secret, cfg.JWT.TTL, cfg.JWT.Issuer)
	authUseCase := usecase.NewAuthUseCase(userRepo, tokens, denylist, cfg.JWT.BcryptCost)

	budgetUseCase := usecase.NewBudgetUseCase(usecase.BudgetDeps{
		Budgets:     budgetRepo,
		Products:    productRepo,
		Services:    serviceRepo,
		Customers:   customerRepo,
		Fulfillment: fulfillment,
		Guard:       guard,
		Users:       userRepo,
		Renderer:    export.NewBudgetPDFRenderer(cfg.Location),
	})
	paymentUseCase := usecase.NewBudgetPaymentUseCase(paymentRepo, budgetRepo, paymentGateway, usecase.PaymentOptions{
		MockMode:        cfg.Payments.Mock,
		AccessToken:     cfg.Payments.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	})
	dashboardUseCase := usecase.NewDashboardUseCase(usecase.DashboardDeps{
		Products:     productRepo,
		Services:     serviceRepo,
		Orders:       orderRepo,
		Appointments: appointmentRepo,
		Expenses:     expenseRepo,
		Thresholds: dashboard.Thresholds{
			ProductMargin: cfg.Dashboard.ProductMargin,
			ServiceMargin: cfg.Dashboard.ServiceMargin,
		},
		Location: cfg.Location,
	})

	authLimiter, err := middleware.RateLimit(cfg.RateLimit)
	if err != nil {
		log.Fatalf("Invalid AUTH_RATE_LIMIT %q: %v", cfg.RateLimit, err)
	}

	return handlerSet{
		auth:        handlers.NewAuthHandler(authUseCase),
		profile:     handlers.NewProfileHandler(usecase.NewProfileUseCase(userRepo)),
		product:     handlers.NewProductHandler(usecase.NewProductUseCase(productRepo)),
		service:     handlers.NewServiceHandler(usecase.NewServiceUseCase(serviceRepo)),
		cart:        handlers.NewCartHandler(usecase.NewCartUseCase(carts, productRepo, serviceRepo, customerRepo, fulfillment, guard)),
		budget:      handlers.NewBudgetHandler(budgetUseCase),
		payment:     handlers.NewBudgetPaymentHandler(paymentUseCase, cfg.Payments.Mock),
		customer:    handlers.NewCustomerHandler(usecase.NewCustomerUseCase(customerRepo, orderRepo)),
		appointment: handlers.NewAppointmentHandler(usecase.NewAppointmentUseCase(appointmentRepo, customerRepo, export.NewAppointmentsPDF(cfg.Location), cfg.Location), cfg.Location),
		kanban:      handlers.NewKanbanHandler(usecase.NewKanbanUseCase(columnRepo, projectRepo)),
		expense:     handlers.NewExpenseHandler(usecase.NewExpenseUseCase(expenseRepo)),
		dashboard:   handlers.NewDashboardHandler(dashboardUseCase),
		authUseCase: authUseCase,
		authLimiter: authLimiter,
	}
}

func setMiddlewares(cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.CORS(cfg.CORSOrigins))
}
