// Package server exposes the planner over a small JSON HTTP API.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/plutus-labs/finadvisor/internal/config"
	"github.com/plutus-labs/finadvisor/internal/planner"
	"github.com/plutus-labs/finadvisor/pkg/catalog"
	"github.com/plutus-labs/finadvisor/pkg/constants"
	"go.uber.org/zap"
)

type handler struct {
	logger         *zap.Logger
	products       *catalog.Document
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the planning API.
// The catalog may be nil; plans then carry empty shortlists.
func NewHandler(logger *zap.Logger, products *catalog.Document, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		products:       products,
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/plan", h.handlePlan)
	mux.HandleFunc("/api/catalog/meta", h.handleCatalogMeta)
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.HandleFunc("/healthz", h.handleHealthz)

	return mux
}

type planResponse struct {
	Plan     planner.Plan `json:"plan"`
	Warnings []string     `json:"warnings,omitempty"`
}

type catalogMetaResponse struct {
	DataVersion     string `json:"dataVersion"`
	AsOf            string `json:"asOf"`
	MutualFunds     int    `json:"mutualFunds"`
	FDRates         int    `json:"fdRates"`
	TermInsurance   int    `json:"termInsurance"`
	HealthInsurance int    `json:"healthInsurance"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var profile config.Profile
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxRequestSize))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&profile); err != nil {
		h.logger.Warn("failed to decode profile",
			zap.String("op", "server.handlePlan"),
			zap.Error(err),
		)
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid profile: %v", err))
		return
	}

	warnings, err := profile.Validate()
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	plan := planner.BuildPlan(h.logger, profile.Normalize(), h.products)

	h.writeJSON(w, http.StatusOK, planResponse{Plan: plan, Warnings: warnings})
}

func (h *handler) handleCatalogMeta(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.products == nil {
		h.writeError(w, http.StatusNotFound, "no product catalog loaded")
		return
	}

	h.writeJSON(w, http.StatusOK, catalogMetaResponse{
		DataVersion:     h.products.DataVersion,
		AsOf:            h.products.AsOf,
		MutualFunds:     len(h.products.MutualFunds),
		FDRates:         len(h.products.FDRates),
		TermInsurance:   len(h.products.TermInsurance),
		HealthInsurance: len(h.products.HealthInsurance),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}
