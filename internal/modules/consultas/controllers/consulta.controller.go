package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"historial-clinico-core/internal/modules/consultas/dto"
	"historial-clinico-core/internal/modules/consultas/services"
	historialesservices "historial-clinico-core/internal/modules/historiales/services"
)

// ConsultaController maneja los endpoints de consultas médicas
type ConsultaController struct {
	consultaService *services.ConsultaService
}

// NewConsultaController crea el controlador de consultas
func NewConsultaController(consultaService *services.ConsultaService) *ConsultaController {
	return &ConsultaController{
		consultaService: consultaService,
	}
}

// Registrar maneja POST /api/v1/pacientes/:id/consultas
func (ctrl *ConsultaController) Registrar(c *gin.Context) {
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

	var req dto.RegistrarConsultaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Payload de consulta inválido",
			"details": gin.H{
				"code": "VALIDATION_ERROR",
			},
		})
		return
	}

	result, err := ctrl.consultaService.Registrar(c.Request.Context(), idPaciente, &req)
	if err != nil {
		if domErr, ok := err.(*dto.ConsultaError); ok {
			status := http.StatusBadRequest
			if domErr.Code == "PACIENTE_NO_ENCONTRADO" {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{
				"error": domErr.Message,
				"details": gin.H{
					"code": domErr.Code,
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error registrando consulta",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    result,
	})
}

// Listar maneja GET /api/v1/consultas: una fila por paciente con su
// última consulta y el total acumulado
func (ctrl *ConsultaController) Listar(c *gin.Context) {
	filas, err := ctrl.consultaService.ListarConPaciente(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error listando consultas",
		})
		return
	}

	resumenes := historialesservices.AgruparConsultas(filas)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    resumenes,
		"total":   len(resumenes),
	})
}

// Estadisticas maneja GET /api/v1/consultas/estadisticas
func (ctrl *ConsultaController) Estadisticas(c *gin.Context) {
	stats, err := ctrl.consultaService.Estadisticas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error calculando estadísticas",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}
