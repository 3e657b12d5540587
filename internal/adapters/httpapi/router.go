package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/andrescamacho/puremvc-go/pkg/mvc/logging"
)

// Dispatcher is the part of the facade the HTTP surface needs
type Dispatcher interface {
	SendNotification(ctx context.Context, name string, body any, notificationType string) error
	HasCommand(notificationName string) bool
	HasMediator(mediatorName string) bool
}

// NotificationRequest is the JSON body of POST /notifications/{name}
type NotificationRequest struct {
	Type string `json:"type"`
	Body any    `json:"body"`
}

// RegistrationResponse answers the lookup endpoints
type RegistrationResponse struct {
	Name       string `json:"name"`
	Registered bool   `json:"registered"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Options configures optional routes
type Options struct {
	// MetricsPath mounts MetricsHandler when both are set
	MetricsPath    string
	MetricsHandler http.Handler
	Logger         logging.Logger
}

type handler struct {
	dispatcher Dispatcher
	logger     logging.Logger
}

// NewRouter builds the HTTP routes over a dispatcher
func NewRouter(dispatcher Dispatcher, opts Options) *mux.Router {
	h := &handler{dispatcher: dispatcher, logger: opts.Logger}
	if h.logger == nil {
		h.logger = logging.NoOp()
	}

	r := mux.NewRouter()
	r.HandleFunc("/notifications/{name}", h.sendNotification).Methods(http.MethodPost)
	r.HandleFunc("/commands/{name}", h.hasCommand).Methods(http.MethodGet)
	r.HandleFunc("/mediators/{name}", h.hasMediator).Methods(http.MethodGet)
	if opts.MetricsPath != "" && opts.MetricsHandler != nil {
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}
	return r
}

func (h *handler) sendNotification(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req NotificationRequest
	// An empty body, with or without Content-Length, is a bare notification
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
			return
		}
	}

	ctx := logging.WithLogger(r.Context(), h.logger)
	if err := h.dispatcher.SendNotification(ctx, name, req.Body, req.Type); err != nil {
		h.logger.Log(logging.LevelError, "notification dispatch failed", map[string]interface{}{
			"notification": name,
			"error":        err.Error(),
		})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *handler) hasCommand(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	writeJSON(w, http.StatusOK, RegistrationResponse{Name: name, Registered: h.dispatcher.HasCommand(name)})
}

func (h *handler) hasMediator(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	writeJSON(w, http.StatusOK, RegistrationResponse{Name: name, Registered: h.dispatcher.HasMediator(name)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
