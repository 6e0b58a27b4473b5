package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/packline/inventory-api/api/responses"
	"github.com/packline/inventory-api/api/validators"
	itemsvc "github.com/packline/inventory-api/internal/items"
	pkgerrors "github.com/packline/inventory-api/pkg/errors"
	"github.com/packline/inventory-api/pkg/logger"
)

const defaultListLimit = 50

type itemRequest struct {
	Name  string   `json:"name" validate:"required"`
	SKU   string   `json:"sku" validate:"required"`
	Qty   *int     `json:"qty"`
	Price *float64 `json:"price"`
}

func (req itemRequest) qty() int {
	if req.Qty == nil {
		return 0
	}
	return *req.Qty
}

func (req itemRequest) price() float64 {
	if req.Price == nil {
		return 0
	}
	return *req.Price
}

// CreateItem persists a new item. Client-supplied id and timestamps are
// ignored; storage assigns the id and the service stamps both timestamps.
func CreateItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		var payload itemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Create(r.Context(), itemsvc.CreateItemInput{
			Name:  payload.Name,
			SKU:   payload.SKU,
			Qty:   payload.qty(),
			Price: payload.price(),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

// ListItems returns a page of items in ascending id order, optionally
// filtered by a substring match on name.
func ListItems(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", defaultListLimit, 0)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		offset, err := validators.ParseQueryInt(r, "offset", 0, 0)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		items, err := svc.List(r.Context(), itemsvc.ListItemsInput{
			Query:  query,
			Limit:  limit,
			Offset: offset,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// GetItem looks up a single item by id.
func GetItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		itemID, err := parseItemID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ctx := logg.WithItemID(r.Context(), itemID)

		item, err := svc.Get(ctx, itemID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

// UpdateItem overwrites name, sku, qty and price and refreshes updated_at.
// Identity and created_at are preserved.
func UpdateItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		itemID, err := parseItemID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ctx := logg.WithItemID(r.Context(), itemID)

		var payload itemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.Update(ctx, itemID, itemsvc.UpdateItemInput{
			Name:  payload.Name,
			SKU:   payload.SKU,
			Qty:   payload.qty(),
			Price: payload.price(),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

// DeleteItem removes an item permanently.
func DeleteItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		itemID, err := parseItemID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ctx := logg.WithItemID(r.Context(), itemID)

		if err := svc.Delete(ctx, itemID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"ok":      true,
			"message": "Item deleted",
		})
	}
}

func parseItemID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "itemID")
	itemID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "item id must be an integer").WithDetails(map[string]any{"item_id": raw})
	}
	return itemID, nil
}
