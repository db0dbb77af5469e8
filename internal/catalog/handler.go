// Package catalog exposes the admin CRUD surface for categories,
// subcategories, products and the offer listing. Everything proxies the
// remote store API; the only local state touched here is the cart, which
// loses its entries for a product the moment that product is deleted.
package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sangeeth-21/velkani-admin/internal/cart"
	"github.com/sangeeth-21/velkani-admin/internal/httpx"
	"github.com/sangeeth-21/velkani-admin/internal/upstream"
)

type Handler struct {
	api  *upstream.Client
	cart *cart.Store
}

func NewHandler(api *upstream.Client, cartStore *cart.Store) *Handler {
	return &Handler{api: api, cart: cartStore}
}

func (h *Handler) ListCategories(c *gin.Context) {
	items, err := h.api.ListCategories(c.Request.Context())
	if err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type CreateCategoryReq struct {
	Name        string `json:"name" binding:"required"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.api.AddCategory(c.Request.Context(), req.Name, req.Image, req.Description); err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.api.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) ListSubcategories(c *gin.Context) {
	ctx := c.Request.Context()
	if categoryID := c.Query("category_id"); categoryID != "" {
		items, err := h.api.ListSubcategories(ctx, categoryID)
		if err != nil {
			httpx.UpstreamError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
		return
	}
	items, err := h.api.ListAllSubcategories(ctx)
	if err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type CreateSubcategoryReq struct {
	CategoryID  string `json:"category_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func (h *Handler) CreateSubcategory(c *gin.Context) {
	var req CreateSubcategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.api.AddSubcategory(c.Request.Context(), req.CategoryID, req.Name, req.Image, req.Description); err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

func (h *Handler) DeleteSubcategory(c *gin.Context) {
	if err := h.api.DeleteSubcategory(c.Request.Context(), c.Param("id")); err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) ListProducts(c *gin.Context) {
	items, err := h.api.ListProducts(c.Request.Context(), upstream.ProductFilter{
		CategoryID:    c.Query("category_id"),
		SubcategoryID: c.Query("subcategory_id"),
		OfferOnly:     c.Query("offer") == "1",
	})
	if err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type PricePointReq struct {
	Quantity string  `json:"quantity" binding:"required"`
	Type     string  `json:"type"`
	Price    float64 `json:"price" binding:"required"`
	MRP      float64 `json:"mrp" binding:"required"`
	Stock    int     `json:"stock"`
}

type CreateProductReq struct {
	CategoryID    string          `json:"category_id" binding:"required"`
	SubcategoryID string          `json:"subcategory_id" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	ImageURLs     []string        `json:"image_urls"`
	PricePoints   []PricePointReq `json:"price_points" binding:"required"`
}

// price <= mrp and stock >= 0 are enforced here, at entry; nothing
// re-validates stored products later.
func validatePricePoints(points []PricePointReq) string {
	if len(points) == 0 {
		return "at least one price point is required"
	}
	for _, pp := range points {
		if pp.Price <= 0 {
			return "price must be positive"
		}
		if pp.Price > pp.MRP {
			return "price cannot exceed mrp"
		}
		if pp.Stock < 0 {
			return "stock cannot be negative"
		}
	}
	return ""
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if msg := validatePricePoints(req.PricePoints); msg != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": msg})
		return
	}

	images := make([]upstream.NewImage, 0, len(req.ImageURLs))
	for i, url := range req.ImageURLs {
		images = append(images, upstream.NewImage{URL: url, DisplayOrder: i})
	}
	points := make([]upstream.NewPricePoint, 0, len(req.PricePoints))
	for _, pp := range req.PricePoints {
		points = append(points, upstream.NewPricePoint{
			Quantity: pp.Quantity,
			Type:     pp.Type,
			Price:    pp.Price,
			MRP:      pp.MRP,
			Stock:    pp.Stock,
		})
	}

	err := h.api.AddProduct(c.Request.Context(), upstream.NewProduct{
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Name:          req.Name,
		Description:   req.Description,
		Images:        images,
		PricePoints:   points,
	})
	if err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

type UpdateProductReq struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	ImageURLs   []string        `json:"image_urls"`
	PricePoints []PricePointReq `json:"price_points"`
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var req UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.PricePoints != nil {
		if msg := validatePricePoints(req.PricePoints); msg != "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": msg})
			return
		}
	}

	upd := upstream.ProductUpdate{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
	}
	if req.ImageURLs != nil {
		upd.Images = make([]upstream.NewImage, 0, len(req.ImageURLs))
		for i, url := range req.ImageURLs {
			upd.Images = append(upd.Images, upstream.NewImage{URL: url, DisplayOrder: i})
		}
	}
	if req.PricePoints != nil {
		upd.PricePoints = make([]upstream.NewPricePoint, 0, len(req.PricePoints))
		for _, pp := range req.PricePoints {
			upd.PricePoints = append(upd.PricePoints, upstream.NewPricePoint{
				Quantity: pp.Quantity,
				Type:     pp.Type,
				Price:    pp.Price,
				MRP:      pp.MRP,
				Stock:    pp.Stock,
			})
		}
	}

	if err := h.api.UpdateProduct(c.Request.Context(), upd); err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeleteProduct removes the product upstream, then cascades into the cart.
// A cart persistence failure after a successful delete is logged by the
// cart layer but not reported as a delete failure.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := h.api.DeleteProduct(c.Request.Context(), id); err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	if err := h.cart.RemoveProduct(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": true, "warning": "product deleted but cart cleanup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type SetOfferReq struct {
	Offer *bool  `json:"offer" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

// SetOffer toggles the promotion flag through update_product, the same call
// the offer page used.
func (h *Handler) SetOffer(c *gin.Context) {
	var req SetOfferReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	err := h.api.UpdateProduct(c.Request.Context(), upstream.ProductUpdate{
		ID:    c.Param("id"),
		Name:  req.Name,
		Offer: req.Offer,
	})
	if err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) PricePointTypes(c *gin.Context) {
	types, err := h.api.PricePointTypes(c.Request.Context())
	if err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": types})
}

func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}
	defer f.Close()

	url, err := h.api.UploadImage(c.Request.Context(), file.Filename, f)
	if err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *Handler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image files are required"})
		return
	}

	var files []upstream.UploadFile
	var open []interface{ Close() error }
	defer func() {
		for _, f := range open {
			_ = f.Close()
		}
	}()
	for _, fh := range form.File["images"] {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
			return
		}
		open = append(open, f)
		files = append(files, upstream.UploadFile{Name: fh.Filename, Reader: f})
	}

	urls, err := h.api.UploadImages(c.Request.Context(), files)
	if err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"urls": urls})
}
