package http

import (
	"net/http"

	"nutritional-planner/internal/delivery/http/handler"
	"nutritional-planner/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	profileHandler     *handler.ProfileHandler
	measurementHandler *handler.MeasurementHandler
	catalogHandler     *handler.CatalogHandler
	lookupHandler      *handler.LookupHandler
	snapshotHandler    *handler.SnapshotHandler
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	measurementHandler *handler.MeasurementHandler,
	catalogHandler *handler.CatalogHandler,
	lookupHandler *handler.LookupHandler,
	snapshotHandler *handler.SnapshotHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		profileHandler:     profileHandler,
		measurementHandler: measurementHandler,
		catalogHandler:     catalogHandler,
		lookupHandler:      lookupHandler,
		snapshotHandler:    snapshotHandler,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Profiles and per-profile measurement history
	api.HandleFunc("/profiles", r.profileHandler.CreateProfile).Methods(http.MethodPost)
	api.HandleFunc("/profiles", r.profileHandler.ListProfiles).Methods(http.MethodGet)
	api.HandleFunc("/profiles/{name}/latest", r.profileHandler.GetLatestMeasurement).Methods(http.MethodGet)
	api.HandleFunc("/profiles/{name}/measurements", r.measurementHandler.SubmitMeasurement).Methods(http.MethodPost)
	api.HandleFunc("/profiles/{name}/history", r.measurementHandler.GetHistory).Methods(http.MethodGet)

	// Static catalog and its rendered table
	api.HandleFunc("/catalog", r.catalogHandler.GetCatalog).Methods(http.MethodGet)
	api.HandleFunc("/catalog/export", r.catalogHandler.ExportCatalog).Methods(http.MethodGet)

	// External nutrition data lookup (best effort)
	api.HandleFunc("/nutrition/foods", r.lookupHandler.GetFoods).Methods(http.MethodGet)

	// Flat-file form snapshot codec for the save/load dialogs
	api.HandleFunc("/snapshot/encode", r.snapshotHandler.Encode).Methods(http.MethodPost)
	api.HandleFunc("/snapshot/decode", r.snapshotHandler.Decode).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
