package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// APIError est une erreur renvoyée par l'API RetailEdge (statut HTTP + message).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API RetailEdge: %d %s", e.Status, e.Message)
}

// Gateway porte la mécanique commune des clients : URL de base, client HTTP,
// encodage JSON et décoration Bearer des requêtes authentifiées.
type Gateway struct {
	baseURL string
	http    *http.Client
}

func NewGateway(baseURL string) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		// Pas de timeout côté client : la responsabilité du transport est
		// laissée à l'infrastructure, comme le HttpClient d'origine.
		http: &http.Client{},
	}
}

// NewGatewayWithClient permet d'injecter un client HTTP (tests).
func NewGatewayWithClient(baseURL string, hc *http.Client) *Gateway {
	g := NewGateway(baseURL)
	if hc != nil {
		g.http = hc
	}
	return g
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	token  string
	out    any
}

func (g *Gateway) do(ctx context.Context, req request) error {
	u := g.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return err
	}
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	resp, err := g.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if req.out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(req.out)
}

// readErrorMessage extrait un message lisible du corps d'erreur, quel que soit
// le champ utilisé par le serveur ({"error": …} ou {"message": …}).
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return "réponse vide"
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(data))
}
