package cart

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sangeeth-21/velkani-admin/internal/domain/catalog"
	"github.com/sangeeth-21/velkani-admin/internal/httpx"
	"github.com/sangeeth-21/velkani-admin/internal/upstream"
)

// ProductSource is the slice of the upstream client the cart needs: the
// store API has no single-product endpoint, so adds look the product up in
// the full listing the same way the UI pages did.
type ProductSource interface {
	ListProducts(ctx context.Context, f upstream.ProductFilter) ([]catalog.Product, error)
}

type Handler struct {
	store    *Store
	products ProductSource
}

func NewHandler(store *Store, products ProductSource) *Handler {
	return &Handler{store: store, products: products}
}

func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.store.Items(),
		"count": h.store.ItemCount(),
		"total": h.store.Total(),
	})
}

type AddItemReq struct {
	ProductID    string `json:"product_id" binding:"required"`
	PricePointID string `json:"price_point_id" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
}

func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	products, err := h.products.ListProducts(c.Request.Context(), upstream.ProductFilter{})
	if err != nil {
		httpx.UpstreamError(c, err)
		return
	}

	var product catalog.Product
	found := false
	for _, p := range products {
		if p.ID == req.ProductID {
			product = p
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	pp, ok := product.PricePointByID(req.PricePointID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "price point not found"})
		return
	}

	item, err := h.store.Add(c.Request.Context(), product, pp, req.Quantity)
	if err != nil {
		if IsValidationError(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item":  item,
		"count": h.store.ItemCount(),
		"total": h.store.Total(),
	})
}

type RemoveItemReq struct {
	ProductID    string `json:"product_id" binding:"required"`
	PricePointID string `json:"price_point_id" binding:"required"`
}

func (h *Handler) RemoveItem(c *gin.Context) {
	var req RemoveItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.store.RemoveItem(c.Request.Context(), req.ProductID, req.PricePointID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": h.store.ItemCount()})
}

func (h *Handler) RemoveProduct(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.RemoveProduct(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": h.store.ItemCount()})
}

func (h *Handler) Clear(c *gin.Context) {
	if err := h.store.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
