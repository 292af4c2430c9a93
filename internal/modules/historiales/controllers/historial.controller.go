package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"historial-clinico-core/internal/modules/historiales/dto"
	"historial-clinico-core/internal/modules/historiales/services"
	pacientesdto "historial-clinico-core/internal/modules/pacientes/dto"
)

// HistorialController maneja listados, expedientes y exportaciones
type HistorialController struct {
	historialService *services.HistorialService
	pdfService       *services.PDFExportService
	wordService      *services.WordExportService
	auditService     *services.ExportAuditService
}

// NewHistorialController crea el controlador de historiales
func NewHistorialController(
	historialService *services.HistorialService,
	pdfService *services.PDFExportService,
	wordService *services.WordExportService,
	auditService *services.ExportAuditService,
) *HistorialController {
	return &HistorialController{
		historialService: historialService,
		pdfService:       pdfService,
		wordService:      wordService,
		auditService:     auditService,
	}
}

// Listado maneja GET /api/v1/historiales?q=&seq=
func (ctrl *HistorialController) Listado(c *gin.Context) {
	var seq *int64
	if raw := c.Query("seq"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			seq = &parsed
		}
	}

	listado, err := ctrl.historialService.Listado(c.Request.Context(), c.Query("q"), seq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error armando el listado de historiales",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    listado,
	})
}

// Expediente maneja GET /api/v1/historiales/:id
func (ctrl *HistorialController) Expediente(c *gin.Context) {
	historial, ok := ctrl.cargarExpediente(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    historial,
	})
}

// ExportarPDF maneja GET /api/v1/historiales/:id/export/pdf
func (ctrl *HistorialController) ExportarPDF(c *gin.Context) {
	historial, ok := ctrl.cargarExpediente(c)
	if !ok {
		return
	}

	archivo, err := ctrl.pdfService.Generar(historial)
	if err != nil {
		fmt.Printf("[HISTORIALES] ⚠️ Exportación PDF fallida: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "No se pudo exportar el PDF",
			"details": gin.H{
				"code": "EXPORT_FAILED",
			},
		})
		return
	}

	ctrl.auditService.RegistrarExportacion(historial.Paciente.ID, historial.Paciente.DNI, "pdf", len(archivo.Contenido))
	entregarArchivo(c, archivo)
}

// ExportarWord maneja GET /api/v1/historiales/:id/export/word
func (ctrl *HistorialController) ExportarWord(c *gin.Context) {
	historial, ok := ctrl.cargarExpediente(c)
	if !ok {
		return
	}

	archivo, err := ctrl.wordService.Generar(historial)
	if err != nil {
		fmt.Printf("[HISTORIALES] ⚠️ Exportación Word fallida: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "No se pudo exportar el documento Word",
			"details": gin.H{
				"code": "EXPORT_FAILED",
			},
		})
		return
	}

	ctrl.auditService.RegistrarExportacion(historial.Paciente.ID, historial.Paciente.DNI, "word", len(archivo.Contenido))
	entregarArchivo(c, archivo)
}

// cargarExpediente resuelve el :id y carga el historial completo,
// escribiendo la respuesta de error cuando corresponde
func (ctrl *HistorialController) cargarExpediente(c *gin.Context) (*dto.HistorialCompleto, bool) {
	idPaciente, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Identificador de paciente inválido",
			"details": gin.H{
				"code": "ID_INVALIDO",
			},
		})
		return nil, false
	}

	historial, err := ctrl.historialService.Expediente(c.Request.Context(), idPaciente)
	if err != nil {
		if valErr, ok := err.(*pacientesdto.ValidationError); ok {
			c.JSON(http.StatusNotFound, gin.H{
				"error": valErr.Message,
				"details": gin.H{
					"code": valErr.Code,
				},
			})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error consultando el historial",
		})
		return nil, false
	}

	return historial, true
}

// entregarArchivo escribe el artefacto como descarga adjunta. El
// contenido ya está completo en memoria, nunca se entrega parcial.
func entregarArchivo(c *gin.Context, archivo *dto.ExportArchivo) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, archivo.Nombre))
	c.Data(http.StatusOK, archivo.ContentType, archivo.Contenido)
}
