package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sangeeth-21/velkani-admin/internal/config"
)

// The admin panel has exactly one operator account, configured through the
// environment. There is no registration or password reset; rotating the
// credential means redeploying with a new hash.
type Handler struct {
	cfg config.Config
	jwt *JWTManager
}

func NewHandler(cfg config.Config, jwtMgr *JWTManager) *Handler {
	return &Handler{cfg: cfg, jwt: jwtMgr}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if h.cfg.AdminEmail == "" || h.cfg.AdminPasswordHash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin credential not configured"})
		return
	}
	if req.Email != strings.ToLower(h.cfg.AdminEmail) || !CheckPassword(h.cfg.AdminPasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	access, accessExp, err := h.jwt.SignAccess(req.Email, "admin")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         gin.H{"email": req.Email, "role": "admin"},
		"access_token": access,
		"access_exp":   accessExp,
	})
}

func (h *Handler) Me(c *gin.Context) {
	email, _ := c.Get(CtxEmailKey)
	role, _ := c.Get(CtxRoleKey)
	c.JSON(http.StatusOK, gin.H{"email": email, "role": role})
}
