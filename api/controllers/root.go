package controllers

import (
	"net/http"

	"github.com/packline/inventory-api/api/responses"
)

const apiVersion = "1.0.0"

// Root serves the service metadata and endpoint directory.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"message": "Welcome to Inventory Management API",
			"version": apiVersion,
			"endpoints": map[string]string{
				"GET /items":              "List all items",
				"POST /items":             "Create a new item",
				"GET /items/{item_id}":    "Get a specific item",
				"PUT /items/{item_id}":    "Update an item",
				"DELETE /items/{item_id}": "Delete an item",
			},
		})
	}
}
