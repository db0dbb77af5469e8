package orders

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sangeeth-21/velkani-admin/internal/domain/order"
	"github.com/sangeeth-21/velkani-admin/internal/httpx"
	"github.com/sangeeth-21/velkani-admin/internal/receipt"
	"github.com/sangeeth-21/velkani-admin/internal/upstream"
)

type Handler struct {
	api       *upstream.Client
	formatter *receipt.Formatter
}

func NewHandler(api *upstream.Client, formatter *receipt.Formatter) *Handler {
	return &Handler{api: api, formatter: formatter}
}

// List returns the orders plus the dashboard numbers (count, revenue).
func (h *Handler) List(c *gin.Context) {
	items, err := h.api.ListOrders(c.Request.Context())
	if err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	revenue := 0.0
	for _, o := range items {
		revenue += o.Amount.Float64()
	}
	c.JSON(http.StatusOK, gin.H{
		"items":   items,
		"count":   len(items),
		"revenue": revenue,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.api.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Receipt serves the printable page: the browser opens it and the inline
// script raises the print dialog.
func (h *Handler) Receipt(c *gin.Context) {
	o, u, ok := h.lookup(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.formatter.Document(o, u, true)))
}

// ReceiptDownload serves the same document as an attachment named after the
// order's short id and today's date.
func (h *Handler) ReceiptDownload(c *gin.Context) {
	o, u, ok := h.lookup(c)
	if !ok {
		return
	}
	name := receipt.FileName(o, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.formatter.Document(o, u, false)))
}

// lookup finds the order and, best-effort, its user. The API has no
// single-order endpoint, so this scans the listing like the UI did. A
// missing or unfetchable user is not an error: the receipt falls back to
// walk-in labels.
func (h *Handler) lookup(c *gin.Context) (order.Order, *order.User, bool) {
	ctx := c.Request.Context()
	ordersList, err := h.api.ListOrders(ctx)
	if err != nil {
		httpx.UpstreamError(c, err)
		return order.Order{}, nil, false
	}

	id := c.Param("id")
	var found *order.Order
	for i := range ordersList {
		if ordersList[i].ID == id {
			found = &ordersList[i]
			break
		}
	}
	if found == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return order.Order{}, nil, false
	}

	var user *order.User
	if found.UserUID != "" {
		if users, err := h.api.ListUsers(ctx); err == nil {
			for i := range users {
				if users[i].UID == found.UserUID {
					user = &users[i]
					break
				}
			}
		}
	}
	return *found, user, true
}
