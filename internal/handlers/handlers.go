// Package handlers est la couche "vues" du front : chaque handler va chercher
// son instantané chez le client API concerné, pousse les intentions de
// l'utilisateur vers les magasins locaux, et relit l'état serveur après toute
// mutation admin (pas de patch local spéculatif).
package handlers

import (
	"errors"
	"net/http"

	"retail_edge_front/internal/api"
	"retail_edge_front/internal/utils"
)

type Handler struct {
	Products  *api.ProductsClient
	Orders    *api.OrdersClient
	Inventory *api.InventoryClient
	Dashboard *api.DashboardClient

	// Mailer peut être nil (SMTP non configuré) : le checkout s'en passe.
	Mailer *utils.Mailer

	PublicBaseURL string
}

// apiStatus reprend le statut renvoyé par l'API distante, 502 quand l'appel
// n'a même pas abouti.
func apiStatus(err error) int {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusBadGateway
}
