package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Routes returns the API with its middleware chain applied.
func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodGet, "/v1/books", h.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/v1/books/:bookId", h.showBookHandler)

	router.HandlerFunc(http.MethodGet, "/v1/books/:bookId/reviews", h.listReviewsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/books/:bookId/reviews", h.requireAuthenticatedUser(h.createReviewHandler))
	router.HandlerFunc(http.MethodPost, "/v1/reviews/:reviewId/likes", h.requireAuthenticatedUser(h.likeReviewHandler))

	router.HandlerFunc(http.MethodPost, "/v1/challenges", h.createChallengeHandler)

	router.HandlerFunc(http.MethodPost, "/v1/users", h.registerUserHandler)
	router.HandlerFunc(http.MethodGet, "/v1/users/:username", h.showUserHandler)

	router.HandlerFunc(http.MethodPost, "/v1/tokens/authentication", h.createAuthenticationTokenHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/tokens/authentication", h.requireAuthenticatedUser(h.deleteAuthenticationTokenHandler))

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", h.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/metrics", h.basicAuth(promhttp.Handler().ServeHTTP))

	router.HandlerFunc(http.MethodGet, "/spec", h.handleSwaggerFile())
	router.Handler(http.MethodGet, "/docs/*any", httpSwagger.Handler(httpSwagger.URL("/spec")))

	return h.metrics(h.recoverPanic(h.requestID(h.enableCORS(h.rateLimit(h.authenticate(router))))))
}
