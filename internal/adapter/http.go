// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-pet-storefront/internal/config"
	"github.com/MKhiriev/go-pet-storefront/internal/logger"
	"github.com/MKhiriev/go-pet-storefront/internal/utils"
	"github.com/MKhiriev/go-pet-storefront/models"
)

type graphQLAuthGateway struct {
	client      *utils.HTTPClient
	graphQLPath string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewGraphQLAuthGateway constructs a GraphQL-over-HTTP implementation of
// [AuthGateway]. The base URL comes from adapterCfg.HTTPAddress (a missing
// scheme defaults to http) and every operation is POSTed to
// adapterCfg.GraphQLPath. Responses are never cached: each request carries
// "Cache-Control: no-cache" and "Pragma: no-cache".
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewGraphQLAuthGateway(adapterCfg config.ClientAdapter, logger *logger.Logger) (AuthGateway, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	path := adapterCfg.GraphQLPath
	if path == "" {
		path = "/graphql"
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("Cache-Control", "no-cache").
		SetHeader("Pragma", "no-cache")

	return &graphQLAuthGateway{client: client, graphQLPath: path, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [AuthGateway].
func (g *graphQLAuthGateway) SetToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = strings.TrimSpace(token)
}

// Token implements [AuthGateway].
func (g *graphQLAuthGateway) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// EmailLogin implements [AuthGateway].
func (g *graphQLAuthGateway) EmailLogin(ctx context.Context, email, passwordCipher string) (models.Account, error) {
	var data struct {
		Result *models.AuthResult `json:"customerEmailLogin"`
	}

	vars := map[string]any{"email": email, "password": passwordCipher}
	if err := g.execute(ctx, opEmailLogin, emailLoginQuery, vars, &data); err != nil {
		return models.Account{}, err
	}

	return g.accountFromResult(opEmailLogin, data.Result)
}

// GoogleLogin implements [AuthGateway].
func (g *graphQLAuthGateway) GoogleLogin(ctx context.Context, oauthToken string) (models.Account, error) {
	var data struct {
		Result *models.AuthResult `json:"customerGoogleLogin"`
	}

	vars := map[string]any{"token": oauthToken}
	if err := g.execute(ctx, opGoogleLogin, googleLoginQuery, vars, &data); err != nil {
		return models.Account{}, err
	}

	return g.accountFromResult(opGoogleLogin, data.Result)
}

// Logout implements [AuthGateway].
func (g *graphQLAuthGateway) Logout(ctx context.Context, email string) (models.UserDetails, error) {
	defer g.SetToken("")

	var data struct {
		Result *models.UserDetails `json:"customerLogout"`
	}

	vars := map[string]any{"email": email}
	if err := g.execute(ctx, opLogout, logoutMutation, vars, &data); err != nil {
		return models.UserDetails{}, err
	}
	if data.Result == nil {
		return models.UserDetails{}, fmt.Errorf("%w: %s: missing customerLogout", ErrMalformedResponse, opLogout)
	}

	return *data.Result, nil
}

// Register implements [AuthGateway].
func (g *graphQLAuthGateway) Register(ctx context.Context, name, email, passwordCipher string) (models.UserDetails, error) {
	var data struct {
		Result *models.UserDetails `json:"customerRegistration"`
	}

	vars := map[string]any{"name": name, "email": email, "password": passwordCipher}
	if err := g.execute(ctx, opRegister, registerMutation, vars, &data); err != nil {
		return models.UserDetails{}, err
	}

	// the API signals a taken email with an empty name
	if data.Result == nil || data.Result.Name == "" {
		return models.UserDetails{}, ErrAlreadyRegistered
	}

	return *data.Result, nil
}

func (g *graphQLAuthGateway) accountFromResult(op string, result *models.AuthResult) (models.Account, error) {
	if result == nil || result.AccessToken == "" {
		return models.Account{}, fmt.Errorf("%s: %w", op, ErrAuthRejected)
	}

	account := models.Account{
		UserDetails: models.UserDetails{Name: result.Name, Email: result.Email},
		AccessToken: result.AccessToken,
	}

	expiresAt, err := utils.TokenExpiry(result.AccessToken)
	if err != nil {
		g.logger.Debug().Err(err).Str("operation", op).Msg("access token expiry unknown")
	} else {
		account.ExpiresAt = expiresAt
	}

	g.SetToken(result.AccessToken)
	return account, nil
}

// execute POSTs a GraphQL document and decodes the "data" member into out.
func (g *graphQLAuthGateway) execute(ctx context.Context, op, query string, vars map[string]any, out any) error {
	requestID, ok := utils.RequestIDFromContext(ctx)
	if !ok {
		requestID = utils.NewRequestID()
	}

	log := g.logger.With().
		Str("operation", op).
		Str("request_id", requestID).
		Logger()

	req := g.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		SetBody(models.GraphQLRequest{Query: query, OperationName: op, Variables: vars})
	if token := g.Token(); token != "" {
		req.SetAuthToken(token)
	}

	start := time.Now()
	resp, err := req.Post(g.graphQLPath)
	if err != nil {
		err = mapTransportError(op, err)
		log.Err(err).Dur("duration", time.Since(start)).Msg("graphql request failed")
		return err
	}

	log.Debug().
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("graphql request completed")

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var envelope models.GraphQLResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedResponse, op, err)
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		return fmt.Errorf("%w: %s: %s", ErrGraphQL, op, strings.Join(messages, "; "))
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return fmt.Errorf("%w: %s: empty data", ErrMalformedResponse, op)
	}

	if err = json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedResponse, op, err)
	}

	return nil
}

// IsTransportError reports whether err came from the transport rather than
// from an answer of the API.
func IsTransportError(err error) bool {
	return errors.Is(err, ErrServerUnavailable) ||
		errors.Is(err, ErrUnexpectedStatus) ||
		errors.Is(err, ErrGraphQL) ||
		errors.Is(err, ErrMalformedResponse)
}
