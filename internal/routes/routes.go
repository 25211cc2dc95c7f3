package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barberflow-web/internal/cep"
	"github.com/BruksfildServices01/barberflow-web/internal/config"
	"github.com/BruksfildServices01/barberflow-web/internal/events"
	"github.com/BruksfildServices01/barberflow-web/internal/gateway"
	"github.com/BruksfildServices01/barberflow-web/internal/handlers"
	"github.com/BruksfildServices01/barberflow-web/internal/onboarding"
	"github.com/BruksfildServices01/barberflow-web/internal/onboarding/storage"
	"github.com/BruksfildServices01/barberflow-web/internal/session"
)

// RegisterRoutes monta todas as rotas do web client.
func RegisterRoutes(r *gin.Engine, rdb *redis.Client, cfg *config.Config) {
	// ======================================
	// Dependências compartilhadas
	// ======================================
	gwOpts := []gateway.Option{}
	if cfg.IsDevelopment() {
		gwOpts = append(gwOpts, gateway.WithLogging())
	}
	gw := gateway.New(cfg.APIBaseURL, gwOpts...)

	cepClient := cep.New(cfg.ViaCEPBaseURL)
	dispatcher := events.NewDispatcher(nil)

	stores := func(c *gin.Context) *onboarding.Store {
		id := c.GetString(session.ContextSessionID)
		return onboarding.NewStore(c.Request.Context(), storage.NewRedis(rdb, id))
	}

	sessions := session.NewManager(cfg.SessionSecret)
	r.Use(sessions.Middleware())

	// ======================================
	// Handlers
	// ======================================
	onboardingHandler := handlers.NewOnboardingHandler(gw, stores, dispatcher)
	verificationHandler := handlers.NewVerificationHandler(gw, stores, cfg.ResendCooldown, dispatcher)
	paymentHandler := handlers.NewPaymentHandler(stores)
	setupHandler := handlers.NewSetupHandler(stores, cepClient, gw, dispatcher)
	dashboardHandler := handlers.NewDashboardHandler()

	// ======================================
	// Onboarding
	// ======================================
	ob := r.Group("/onboarding")
	{
		ob.GET("/novo-usuario", onboardingHandler.SignupPage)
		ob.POST("/novo-usuario", onboardingHandler.Signup)

		ob.GET("/verificar-codigo", verificationHandler.VerifyPage)
		ob.POST("/verificar-codigo", verificationHandler.Verify)
		ob.POST("/verificar-codigo/reenviar", verificationHandler.Resend)
		ob.GET("/verificar-codigo/contagem", verificationHandler.CountdownStream)

		ob.GET("/assinatura", paymentHandler.PaymentPage)
		ob.POST("/assinatura", paymentHandler.Subscribe)

		ob.GET("/barbershop-setup", setupHandler.SetupPage)
		ob.POST("/barbershop-setup", setupHandler.Setup)
	}

	// Rotas antigas do fluxo, mantidas por compatibilidade.
	r.GET("/onboarding", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/onboarding/novo-usuario")
	})
	r.GET("/verificar-codigo", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/onboarding/verificar-codigo")
	})
	r.GET("/clientes", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/dashboard/clientes")
	})

	// ======================================
	// Painel
	// ======================================
	r.GET("/", dashboardHandler.Dashboard)
	r.GET("/dashboard/clientes", dashboardHandler.Clients)
	r.GET("/vendas/nova-transacao", dashboardHandler.NewSalePage)
	r.POST("/vendas/nova-transacao", dashboardHandler.NewSale)

	// ======================================
	// API interna
	// ======================================
	api := r.Group("/api")
	{
		api.GET("/cep/:cep", setupHandler.LookupCEP)
	}
}
