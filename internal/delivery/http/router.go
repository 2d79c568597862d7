package http

import (
	"net/http"

	"bookingcare-service/internal/delivery/http/handler"
	"bookingcare-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	doctorHandler       *handler.DoctorHandler
	scheduleHandler     *handler.ScheduleHandler
	allcodeHandler      *handler.AllcodeHandler
	corsMiddleware      *middleware.CORSMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	scheduleHandler *handler.ScheduleHandler,
	allcodeHandler *handler.AllcodeHandler,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		doctorHandler:       doctorHandler,
		scheduleHandler:     scheduleHandler,
		allcodeHandler:      allcodeHandler,
		corsMiddleware:      corsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		loggingMiddleware:   loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctor routes
	api.HandleFunc("/top-doctor-home", r.doctorHandler.GetTopDoctorHome).Methods(http.MethodGet)
	api.HandleFunc("/get-all-doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/save-infor-doctors", r.doctorHandler.SaveDetailInfoDoctor).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/get-detail-doctor-by-id", r.doctorHandler.GetDetailDoctorByID).Methods(http.MethodGet)

	// Schedule routes
	api.HandleFunc("/bulk-create-schedule", r.scheduleHandler.BulkCreateSchedule).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/get-schedule-doctor-by-date", r.scheduleHandler.GetScheduleByDate).Methods(http.MethodGet)

	// Reference data
	api.HandleFunc("/allcode", r.allcodeHandler.GetAllcodes).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)
	if r.rateLimitMiddleware != nil {
		r.router.Use(r.rateLimitMiddleware.Handle)
	}

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
