package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/auth"
	"github.com/umarhameed12/ghani-glass-backend-repo/internal/service"
)

// Services groups the per-entity services the gateway mounts.
type Services struct {
	Departments service.Departments
	Categories  service.Categories
	AssetStores service.AssetStores
	Users       service.Users
	Auth        service.Auth
}

// NewRouter binds every handler to its method+path pair under /api/v1 and
// wraps the whole tree in logging, recovery, CORS and metrics middleware.
func NewRouter(services Services, tokens *auth.Tokens, logger *zap.Logger) http.Handler {
	router := mux.NewRouter()
	router.Use(Metrics)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	departments := NewDepartmentHandler(services.Departments, logger)
	api.HandleFunc("/departments", departments.List).Methods(http.MethodGet)
	api.HandleFunc("/departments", departments.Create).Methods(http.MethodPost)
	api.HandleFunc("/departments/{id:[0-9]+}", departments.Get).Methods(http.MethodGet)
	api.HandleFunc("/departments/{id:[0-9]+}", departments.Update).Methods(http.MethodPut)
	api.HandleFunc("/departments/{id:[0-9]+}", departments.Delete).Methods(http.MethodDelete)

	// The category prefix is singular for compatibility with existing
	// clients.
	categories := NewCategoryHandler(services.Categories, logger)
	api.HandleFunc("/category", categories.List).Methods(http.MethodGet)
	api.HandleFunc("/category", categories.Create).Methods(http.MethodPost)
	api.HandleFunc("/category/{id:[0-9]+}", categories.Get).Methods(http.MethodGet)
	api.HandleFunc("/category/{id:[0-9]+}", categories.Update).Methods(http.MethodPut)
	api.HandleFunc("/category/{id:[0-9]+}", categories.Delete).Methods(http.MethodDelete)

	assets := NewAssetStoreHandler(services.AssetStores, logger)
	api.HandleFunc("/asset-stores", assets.List).Methods(http.MethodGet)
	api.HandleFunc("/asset-stores", assets.CreateOrUpdate).Methods(http.MethodPost)
	api.HandleFunc("/asset-stores/bulk-upload", assets.BulkUpload).Methods(http.MethodPost)
	api.HandleFunc("/asset-stores/{id:[0-9]+}", assets.Get).Methods(http.MethodGet)
	api.HandleFunc("/asset-stores/{id:[0-9]+}", assets.Update).Methods(http.MethodPut)
	api.HandleFunc("/asset-stores/{id:[0-9]+}", assets.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/asset-stores/{id:[0-9]+}/transfers", assets.ListTransfers).Methods(http.MethodGet)
	api.HandleFunc("/asset-stores/{id:[0-9]+}/transfers", assets.AppendTransfer).Methods(http.MethodPost)

	users := NewUserHandler(services.Users, logger)
	api.HandleFunc("/users", users.List).Methods(http.MethodGet)

	authHandler := NewAuthHandler(services.Auth, logger)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/signin", authHandler.Signin).Methods(http.MethodPost)
	api.Handle("/auth/me", AuthRequired(tokens)(http.HandlerFunc(authHandler.Me))).Methods(http.MethodGet)

	var handler http.Handler = router
	handler = CORS(handler)
	handler = Recovery(logger)(handler)
	handler = RequestLogging(logger)(handler)
	return handler
}
