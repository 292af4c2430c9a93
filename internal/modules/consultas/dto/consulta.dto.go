package dto

import (
	"fmt"
	"strings"
)

// RegistrarConsultaRequest payload de una consulta nueva. La fecha y la
// hora las asigna el servidor al momento del registro.
type RegistrarConsultaRequest struct {
	MotivoConsulta    string  `json:"motivo_consulta"`
	PresionSistolica  *string `json:"presion_sistolica"`
	PresionDiastolica *string `json:"presion_diastolica"`
	Pulso             *string `json:"pulso"`
	Temperatura       *string `json:"temperatura"`
	SaturacionO2      *string `json:"saturacion_o2"`
	Peso              *string `json:"peso"`
	Talla             *string `json:"talla"`
	ExamenFisico      *string `json:"examen_fisico"`
	Diagnostico       string  `json:"diagnostico"`
	Medicamentos      *string `json:"medicamentos"`
	Indicaciones      *string `json:"indicaciones"`
}

// RegistrarConsultaResult resultado del registro
type RegistrarConsultaResult struct {
	IDConsulta int64  `json:"id_consulta"`
	Fecha      string `json:"fecha"`
	Hora       string `json:"hora"`
}

// EstadisticasConsultas conteos de actividad reciente
type EstadisticasConsultas struct {
	Hoy           int64 `json:"hoy"`
	UltimaSemana  int64 `json:"ultima_semana"`
	UltimoMes     int64 `json:"ultimo_mes"`
	TotalHistoria int64 `json:"total"`
}

// ComponerPresion compone "sistolica/diastolica" cuando ambos valores
// están presentes y no vacíos; en cualquier otro caso retorna nil.
func ComponerPresion(sistolica, diastolica *string) *string {
	if sistolica == nil || diastolica == nil {
		return nil
	}
	sis := strings.TrimSpace(*sistolica)
	dia := strings.TrimSpace(*diastolica)
	if sis == "" || dia == "" {
		return nil
	}
	presion := fmt.Sprintf("%s/%s", sis, dia)
	return &presion
}

// ConsultaError error de dominio de consultas
type ConsultaError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ConsultaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewConsultaError crea un error de dominio
func NewConsultaError(code, message string) *ConsultaError {
	return &ConsultaError{
		Code:    code,
		Message: message,
	}
}
