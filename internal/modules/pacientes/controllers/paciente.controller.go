package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"historial-clinico-core/internal/modules/pacientes/dto"
	"historial-clinico-core/internal/modules/pacientes/services"
)

// PacienteController maneja los endpoints de pacientes
type PacienteController struct {
	registroService *services.PacienteRegistroService
	searchService   *services.PacienteSearchService
}

// NewPacienteController crea el controlador de pacientes
func NewPacienteController(registroService *services.PacienteRegistroService, searchService *services.PacienteSearchService) *PacienteController {
	return &PacienteController{
		registroService: registroService,
		searchService:   searchService,
	}
}

// Buscar maneja GET /api/v1/pacientes?q=
func (ctrl *PacienteController) Buscar(c *gin.Context) {
	pacientes, err := ctrl.searchService.Buscar(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error buscando pacientes",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    pacientes,
		"total":   len(pacientes),
	})
}

// Registrar maneja POST /api/v1/pacientes
func (ctrl *PacienteController) Registrar(c *gin.Context) {
	var req dto.RegistrarPacienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Payload de registro inválido",
			"details": gin.H{
				"code": "VALIDATION_ERROR",
			},
		})
		return
	}

	result, err := ctrl.registroService.Registrar(c.Request.Context(), &req)
	if err != nil {
		if valErr, ok := err.(*dto.ValidationError); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": valErr.Message,
				"details": gin.H{
					"code":  valErr.Code,
					"field": valErr.Field,
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error registrando paciente",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    result,
	})
}

// Detalle maneja GET /api/v1/pacientes/:id
func (ctrl *PacienteController) Detalle(c *gin.Context) {
	idPaciente, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Identificador de paciente inválido",
			"details": gin.H{
				"code": "ID_INVALIDO",
			},
		})
		return
	}

	detalle, err := ctrl.searchService.Detalle(c.Request.Context(), idPaciente)
	if err != nil {
		if valErr, ok := err.(*dto.ValidationError); ok {
			c.JSON(http.StatusNotFound, gin.H{
				"error": valErr.Message,
				"details": gin.H{
					"code": valErr.Code,
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error consultando paciente",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    detalle,
	})
}

// Count maneja GET /api/v1/pacientes/count
func (ctrl *PacienteController) Count(c *gin.Context) {
	total, err := ctrl.searchService.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error contando pacientes",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total": total,
		},
	})
}
