package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/papertrade/dashboard-backend/internal/api/handlers"
	custommiddleware "github.com/papertrade/dashboard-backend/internal/api/middleware"
	"github.com/papertrade/dashboard-backend/internal/config"
	"github.com/papertrade/dashboard-backend/internal/market"
	"github.com/papertrade/dashboard-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	portfolioService *service.PortfolioService,
	contactService *service.ContactService,
	mkt *market.Market,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
			r.Get("/", portfolioHandler.Holdings)
			r.Get("/valuation", portfolioHandler.Valuation)
		})

		r.Route("/trade", func(r chi.Router) {
			tradeHandler := handlers.NewTradeHandler(portfolioService)
			r.Post("/stock", tradeHandler.TradeStock)
			r.Post("/crypto", tradeHandler.TradeCrypto)
		})

		r.Route("/funds", func(r chi.Router) {
			fundHandler := handlers.NewFundHandler(portfolioService, mkt)
			r.Get("/", fundHandler.Funds)
			r.Post("/invest", fundHandler.Invest)
			r.Post("/{fundId}/sell", fundHandler.Sell)
		})

		r.Route("/gold", func(r chi.Router) {
			goldHandler := handlers.NewGoldHandler(portfolioService, mkt)
			r.Get("/", goldHandler.Balance)
			r.Post("/", goldHandler.Transact)
		})

		r.Route("/savings-plans", func(r chi.Router) {
			savingsHandler := handlers.NewSavingsPlanHandler(portfolioService)
			r.Get("/", savingsHandler.Plans)
			r.Post("/", savingsHandler.Create)
			r.With(custommiddleware.ValidateUUIDMiddleware).Delete("/{uuid}", savingsHandler.Delete)
		})

		r.Route("/wallet", func(r chi.Router) {
			walletHandler := handlers.NewWalletHandler(portfolioService)
			r.Get("/", walletHandler.Wallet)
			r.Post("/deposit", walletHandler.Deposit)
		})

		r.Route("/transactions", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(portfolioService)
			r.Get("/", transactionHandler.AllTransactions)
			r.Get("/stock", transactionHandler.StockTransactions)
			r.Get("/crypto", transactionHandler.CryptoTransactions)
			r.Get("/fund", transactionHandler.FundTransactions)
			r.Get("/gold", transactionHandler.GoldTransactions)
		})

		r.Route("/market", func(r chi.Router) {
			marketHandler := handlers.NewMarketHandler(mkt)
			r.Get("/stocks", marketHandler.Stocks)
			r.Get("/stocks/{symbol}", marketHandler.Stock)
			r.Get("/cryptos", marketHandler.Cryptos)
			r.Get("/cryptos/{symbol}", marketHandler.Crypto)
			r.Get("/gold", marketHandler.GoldPrice)
		})

		r.Route("/watchlist", func(r chi.Router) {
			watchlistHandler := handlers.NewWatchlistHandler(portfolioService)
			r.Get("/", watchlistHandler.Watchlist)
			r.Post("/{symbol}", watchlistHandler.Add)
			r.Delete("/{symbol}", watchlistHandler.Remove)
		})

		r.Route("/profile", func(r chi.Router) {
			profileHandler := handlers.NewProfileHandler(portfolioService)
			r.Get("/", profileHandler.Profile)
			r.Put("/", profileHandler.Update)
		})

		r.Route("/contact", func(r chi.Router) {
			contactHandler := handlers.NewContactHandler(contactService)
			r.Post("/", contactHandler.Submit)
		})

		// Developer namespace, protected by the API-key middleware
		r.Route("/developer", func(r chi.Router) {
			r.Use(custommiddleware.APIKeyMiddleware)
			developerHandler := handlers.NewDeveloperHandler(portfolioService)
			r.Post("/state/reset", developerHandler.ResetState)
		})
	})

	return r
}
