package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pocketwatch-io/pocketwatch/internal/auth"
	aihandler "github.com/pocketwatch-io/pocketwatch/internal/http/ai"
	analyticshandler "github.com/pocketwatch-io/pocketwatch/internal/http/analytics"
	authhandler "github.com/pocketwatch-io/pocketwatch/internal/http/authapi"
	categoryhandler "github.com/pocketwatch-io/pocketwatch/internal/http/category"
	importhandler "github.com/pocketwatch-io/pocketwatch/internal/http/importcsv"
	matchinghandler "github.com/pocketwatch-io/pocketwatch/internal/http/matching"
	receipthandler "github.com/pocketwatch-io/pocketwatch/internal/http/receipt"
	transactionhandler "github.com/pocketwatch-io/pocketwatch/internal/http/transaction"
)

func New(
	tokens *auth.Tokens,
	authV1 *authhandler.Handler,
	transactionsV1 *transactionhandler.Handler,
	analyticsV1 *analyticshandler.Handler,
	categoriesV1 *categoryhandler.Handler,
	receiptsV1 *receipthandler.Handler,
	aiV1 *aihandler.Handler,
	importsV1 *importhandler.Handler,
	rulesV1 *matchinghandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(tokens))

			r.Route("/transactions", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				transactionsV1.Routes(r)
			})

			r.Route("/analytics", analyticsV1.Routes)

			r.Route("/categories", categoriesV1.Routes)

			r.Route("/receipts", receiptsV1.Routes)

			r.Route("/imports", importsV1.Routes)

			r.Route("/rules", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				rulesV1.Routes(r)
			})

			r.Route("/ai", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				aiV1.Routes(r)
			})
		})
	})

	return router
}
