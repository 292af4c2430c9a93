package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"historial-clinico-core/internal/modules/auth/dto"
	"historial-clinico-core/internal/modules/auth/services"
)

// AuthController maneja los endpoints de autenticación
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController crea el controlador de autenticación
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login maneja POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email y contraseña son requeridos",
			"details": gin.H{
				"code": "VALIDATION_ERROR",
			},
		})
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), &req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if authErr, ok := err.(*dto.AuthError); ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": authErr.Message,
				"details": gin.H{
					"code": authErr.Code,
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error interno durante el login",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// Logout maneja POST /api/v1/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	token := ExtractBearerToken(c)

	// Idempotente: sin token o token ya revocado responde igual
	if err := ctrl.authService.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error interno durante el logout",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sesión cerrada",
	})
}

// Me maneja GET /api/v1/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	token := ExtractBearerToken(c)

	result, err := ctrl.authService.Me(c.Request.Context(), token)
	if err != nil {
		if authErr, ok := err.(*dto.AuthError); ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": authErr.Message,
				"details": gin.H{
					"code": authErr.Code,
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error interno consultando la sesión",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// ExtractBearerToken extrae el token del header Authorization
func ExtractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
