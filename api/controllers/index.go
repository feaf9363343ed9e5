package controllers

import (
	"net/http"

	"github.com/angelmondragon/inventory-backend/api/responses"
)

type serviceInfo struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Index describes the service and its routes for anyone hitting the root.
func Index(version string) http.HandlerFunc {
	info := serviceInfo{
		Service: "inventory-backend",
		Version: version,
		Endpoints: map[string]string{
			"health":  "GET /health",
			"ready":   "GET /health/ready",
			"list":    "GET /inventory",
			"create":  "POST /inventory",
			"read":    "GET /inventory/{id}",
			"update":  "PUT /inventory/{id}",
			"delete":  "DELETE /inventory/{id}",
			"restock": "PUT /inventory/{id}/restock",
			"metrics": "GET /metrics",
		},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, info)
	}
}
