package handler

import (
	"net/http"

	"github.com/Dan9191/calc-service/internal/middleware"
	"github.com/gorilla/mux"
)

// NewRouter wires every route of the API
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()

	// Calculators, one route per catalog entry
	r.HandleFunc("/simple-calculator", h.Simple).Methods(http.MethodPost)
	r.HandleFunc("/emi-calculator", h.EMI).Methods(http.MethodPost)
	r.HandleFunc("/interest-calculator", h.Interest).Methods(http.MethodPost)
	r.HandleFunc("/investment-calculator", h.Investment).Methods(http.MethodPost)
	r.HandleFunc("/period-calculator", h.Period).Methods(http.MethodPost)
	r.HandleFunc("/age-calculator", h.Age).Methods(http.MethodPost)
	r.HandleFunc("/fuel-calculator", h.Fuel).Methods(http.MethodPost)
	r.HandleFunc("/gpa-calculator", h.GPA).Methods(http.MethodPost)
	r.HandleFunc("/hex-calculator", h.Hex).Methods(http.MethodPost)
	r.HandleFunc("/pregnancy-calculator", h.Pregnancy).Methods(http.MethodPost)
	r.HandleFunc("/target-zone-calculator", h.TargetZone).Methods(http.MethodPost)
	r.HandleFunc("/world-time-calculator", h.WorldTime).Methods(http.MethodGet)
	r.HandleFunc("/world-time/zones", h.Zones).Methods(http.MethodGet)
	r.HandleFunc("/world-time/stream", h.WorldTimeStream).Methods(http.MethodGet)

	r.HandleFunc("/calculators", h.Calculators).Methods(http.MethodGet)
	r.HandleFunc("/reference-rate", h.ReferenceRate).Methods(http.MethodGet)

	// Public routes
	r.HandleFunc("/devices", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/devices/login", h.Login).Methods(http.MethodPost)

	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(h.cfg))
	authRouter.HandleFunc("/favorites", h.Favorites).Methods(http.MethodGet)
	authRouter.HandleFunc("/favorites", h.ToggleFavorite).Methods(http.MethodPost)
	authRouter.HandleFunc("/notes/{calculator}", h.ListNotes).Methods(http.MethodGet)
	authRouter.HandleFunc("/notes/{calculator}", h.AddNote).Methods(http.MethodPost)
	authRouter.HandleFunc("/notes/{calculator}/share", h.ShareNotes).Methods(http.MethodPost)
	authRouter.HandleFunc("/notes/{calculator}/{id}", h.UpdateNote).Methods(http.MethodPut)
	authRouter.HandleFunc("/notes/{calculator}/{id}", h.DeleteNote).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(h.NotFound)
	return r
}
