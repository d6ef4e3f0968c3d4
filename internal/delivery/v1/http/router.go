package http

import (
	_ "github.com/DRSN-tech/storefront/docs" // регистрация swagger-спецификации
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/DRSN-tech/storefront/pkg/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// UseCases: всё, что обслуживает HTTP API витрины и админки.
type UseCases struct {
	Catalog  usecase.CatalogUC
	Auth     usecase.AuthUC
	Cart     usecase.CartUC
	Checkout usecase.CheckoutUC
	Favorite usecase.FavoriteUC
	Profile  usecase.ProfileUC
	Admin    usecase.AdminUC
	Events   usecase.EventsUC
}

type Router struct {
	router      *chi.Mux
	sessions    *Sessions
	staticDir   string
	serviceName string
	logger      logger.Logger
}

func NewRouter(router *chi.Mux, sessions *Sessions, staticDir, serviceName string, logger logger.Logger) *Router {
	return &Router{
		router:      router,
		sessions:    sessions,
		staticDir:   staticDir,
		serviceName: serviceName,
		logger:      logger,
	}
}

func (r *Router) Init(uc UseCases) {
	r.router.Use(
		telemetry.Middleware(r.serviceName),
		middleware.RealIP,
		middleware.Recoverer,
		r.sessions.Middleware,
	)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCatalogRoutes(v1, NewCatalogHandler(uc.Catalog, r.logger))

		authHandler := NewAuthHandler(uc.Auth, r.sessions, r.logger)
		registerAuthRoutes(v1, authHandler)
		registerCartRoutes(v1, NewCartHandler(uc.Cart, r.logger))
		v1.Get("/events", NewEventsHandler(uc.Events, r.logger).stream)

		v1.Group(func(private chi.Router) {
			private.Use(RequireToken)
			registerCheckoutRoutes(private, NewCheckoutHandler(uc.Checkout, r.logger))
			registerFavoriteRoutes(private, NewFavoriteHandler(uc.Favorite, r.logger))
			registerProfileRoutes(private, NewProfileHandler(uc.Profile, r.logger))
		})

		v1.Route("/admin", func(admin chi.Router) {
			admin.Post("/auth/login", authHandler.adminLogin)
			admin.Post("/auth/logout", authHandler.adminLogout)

			admin.Group(func(protected chi.Router) {
				protected.Use(RequireAdminToken)
				registerAdminRoutes(protected, NewAdminHandler(uc.Admin, r.logger))
			})
		})
	})

	// Страницы витрины: защита навигации, затем бандл с fallback на index.html.
	r.router.With(PageGuard).Handle("/*", SPAHandler(r.staticDir))
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/{id}", h.getProduct)
	})
	router.Get("/categories", h.listCategories)
}

func registerAuthRoutes(router chi.Router, h *AuthHandler) {
	router.Route("/auth", func(a chi.Router) {
		a.Post("/login", h.login)
		a.Post("/register", h.register)
		a.Post("/logout", h.logout)
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(c chi.Router) {
		c.Get("/", h.getCart)
		c.Post("/", h.addToCart)
		c.Delete("/", h.clearCart)
		c.Patch("/{productID}", h.updateQuantity)
		c.Delete("/{productID}", h.removeFromCart)
	})
}

func registerCheckoutRoutes(router chi.Router, h *CheckoutHandler) {
	router.Post("/checkout", h.beginCheckout)
	router.Post("/checkout/confirm", h.confirmCheckout)
	router.Get("/receipt", h.receipt)
	router.Get("/orders", h.orders)
}

func registerFavoriteRoutes(router chi.Router, h *FavoriteHandler) {
	router.Route("/favorites", func(f chi.Router) {
		f.Get("/", h.listFavorites)
		f.Post("/{productID}", h.toggleFavorite)
		f.Delete("/{productID}", h.removeFavorite)
	})
}

func registerProfileRoutes(router chi.Router, h *ProfileHandler) {
	router.Get("/profile", h.getProfile)
	router.Put("/profile", h.updateProfile)
	router.Get("/settings", h.getSettings)
	router.Put("/settings", h.saveSettings)
}

func registerAdminRoutes(router chi.Router, h *AdminHandler) {
	router.Post("/images", h.uploadImages)

	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", h.createProduct)
		pr.Put("/{id}", h.updateProduct)
		pr.Delete("/{id}", h.deleteProduct)
	})

	router.Route("/categories", func(c chi.Router) {
		c.Post("/", h.createCategory)
		c.Put("/{id}", h.updateCategory)
		c.Delete("/{id}", h.deleteCategory)
	})
}
