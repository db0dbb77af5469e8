package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sangeeth-21/velkani-admin/internal/httpx"
	"github.com/sangeeth-21/velkani-admin/internal/upstream"
)

type Handler struct {
	api *upstream.Client
}

func NewHandler(api *upstream.Client) *Handler {
	return &Handler{api: api}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.api.ListUsers(c.Request.Context())
	if err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

type UserReq struct {
	Name   string `json:"name" binding:"required"`
	Number string `json:"number" binding:"required"`
}

func (h *Handler) Create(c *gin.Context) {
	var req UserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.api.AddUser(c.Request.Context(), req.Name, req.Number); err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

func (h *Handler) Update(c *gin.Context) {
	var req UserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.api.UpdateUser(c.Request.Context(), c.Param("uid"), req.Name, req.Number); err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.api.DeleteUser(c.Request.Context(), c.Param("uid")); err != nil {
		httpx.UpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
