// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package oauth

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-pet-storefront/internal/logger"
	"github.com/MKhiriev/go-pet-storefront/internal/utils"
)

const (
	maxBodyBytes = 16 << 10

	msgTokenReceived = "Google sign-in received. You can return to the storefront terminal."
	msgTokenPending  = "A Google sign-in is already being processed. Please try again shortly."
)

type callbackRequest struct {
	TokenID string `json:"tokenId"`
}

type callbackResponse struct {
	Message string `json:"message"`
}

// Init builds the callback router.
func (r *Receiver) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(r.withTraceID, r.withLogging)

	router.Get(CallbackPath, r.callbackFromQuery)
	router.Post(CallbackPath, r.callbackFromBody)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// callbackFromQuery handles the redirect form: GET ?token=...
func (r *Receiver) callbackFromQuery(w http.ResponseWriter, req *http.Request) {
	r.accept(w, req, req.URL.Query().Get("token"))
}

// callbackFromBody handles the JSON form: POST {"tokenId": "..."}
func (r *Receiver) callbackFromBody(w http.ResponseWriter, req *http.Request) {
	log := logger.FromRequest(req)

	var body callbackRequest
	if err := json.NewDecoder(io.LimitReader(req.Body, maxBodyBytes)).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		log.Debug().Err(err).Msg("invalid callback body")
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	r.accept(w, req, body.TokenID)
}

func (r *Receiver) accept(w http.ResponseWriter, req *http.Request, token string) {
	log := logger.FromRequest(req)

	if token == "" {
		log.Debug().Msg(errMissingToken.Error())
		http.Error(w, errMissingToken.Error(), http.StatusBadRequest)
		return
	}

	if !r.deliver(token) {
		log.Warn().Msg("google token dropped, previous one still pending")
		_, _ = utils.WriteJSON(w, callbackResponse{Message: msgTokenPending}, http.StatusServiceUnavailable)
		return
	}

	log.Info().Msg("google token received")
	_, _ = utils.WriteJSON(w, callbackResponse{Message: msgTokenReceived}, http.StatusOK)
}
