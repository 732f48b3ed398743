package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/admybrand/adbot-gateway/internal/gateway"
	"github.com/admybrand/adbot-gateway/internal/leads"
	"github.com/admybrand/adbot-gateway/internal/metrics"
	"github.com/admybrand/adbot-gateway/internal/pricing"
)

const demoVideoURL = "/AI_Generated_Demo_Video_Creation.mp4"

// chatRequest is the POST /api/v1/chat request body.
type chatRequest struct {
	Message string `json:"message"`
}

// demoRequest is the POST /api/v1/demo-request request body.
type demoRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// handleChat handles chat requests. Upstream problems never produce an error
// status; the gateway degrades to its knowledge base instead.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := s.gateway.Send(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, gateway.ErrEmptyMessage) {
			http.Error(w, "Message is required", http.StatusBadRequest)
			return
		}
		s.log.Error("chat request failed", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handlePricingEstimate computes a plan recommendation and cost estimate for
// the submitted usage profile.
func (s *Server) handlePricingEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var usage pricing.Usage
	if err := json.NewDecoder(r.Body).Decode(&usage); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := usage.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	quote := pricing.Calculate(usage)
	metrics.PricingEstimatesTotal.WithLabelValues(quote.Plan.Name).Inc()

	writeJSON(w, http.StatusOK, quote)
}

// handlePricingPlans returns the plan catalog.
func (s *Server) handlePricingPlans(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"plans": pricing.Plans(),
	})
}

// handleDemoRequest captures a demo request into the leads store.
func (s *Server) handleDemoRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req demoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" {
		http.Error(w, "Name and email are required", http.StatusBadRequest)
		return
	}
	if !strings.Contains(req.Email, "@") {
		http.Error(w, "Invalid email address", http.StatusBadRequest)
		return
	}

	lead := &leads.Lead{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Company:   strings.TrimSpace(req.Company),
		CreatedAt: time.Now(),
	}

	if err := s.leads.Save(r.Context(), lead); err != nil {
		s.log.Error("failed to save lead", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	metrics.LeadsCapturedTotal.Inc()
	s.log.Info("demo request captured",
		zap.String("lead_id", lead.ID),
		zap.String("email", lead.Email))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"message":      "Demo request received. Your demo video is ready.",
		"download_url": demoVideoURL,
	})
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status := "healthy"
	code := http.StatusOK
	if err := s.leads.Ping(r.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
