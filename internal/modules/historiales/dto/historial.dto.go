package dto

import (
	"time"

	pacientesdto "historial-clinico-core/internal/modules/pacientes/dto"
)

// Estados de actividad de un paciente
const (
	EstadoActivo   = "Activo"
	EstadoInactivo = "Inactivo"
)

// ConsultaResumen fila de consulta unida con el paciente, entrada del
// motor de agregación
type ConsultaResumen struct {
	IDConsulta     int64     `json:"id_consulta"`
	IDPaciente     int64     `json:"id_paciente"`
	NombrePaciente string    `json:"nombre_paciente"`
	DNI            string    `json:"dni"`
	Fecha          time.Time `json:"fecha"`
	Hora           string    `json:"hora"`
	MotivoConsulta string    `json:"motivo_consulta"`
	Diagnostico    string    `json:"diagnostico"`
}

// ResumenConsultas una fila por paciente: última consulta + total
type ResumenConsultas struct {
	IDPaciente        int64     `json:"id_paciente"`
	NombrePaciente    string    `json:"nombre_paciente"`
	DNI               string    `json:"dni"`
	UltimaFecha       time.Time `json:"ultima_fecha"`
	UltimaHora        string    `json:"ultima_hora"`
	UltimoMotivo      string    `json:"ultimo_motivo"`
	UltimoDiagnostico string    `json:"ultimo_diagnostico"`
	TotalConsultas    int       `json:"total_consultas"`
}

// ResumenPaciente fila del listado de historiales: paciente + actividad
type ResumenPaciente struct {
	IDPaciente     int64      `json:"id_paciente"`
	Nombre         string     `json:"nombre"`
	DNI            string     `json:"dni"`
	Edad           int        `json:"edad"`
	Sexo           string     `json:"sexo"`
	TotalConsultas int        `json:"total_consultas"`
	UltimaConsulta *time.Time `json:"ultima_consulta"`
	Estado         string     `json:"estado"`
}

// EstadisticasListado estadísticas agregadas del listado de historiales
type EstadisticasListado struct {
	TotalPacientes      int `json:"total_pacientes"`
	PacientesActivos    int `json:"pacientes_activos"`
	TotalConsultas      int `json:"total_consultas"`
	PromedioPorPaciente int `json:"promedio_por_paciente"`
}

// ListadoHistoriales respuesta de GET /historiales. Seq es el tag de
// secuencia que el cliente envía para descartar respuestas obsoletas.
type ListadoHistoriales struct {
	Pacientes    []ResumenPaciente   `json:"pacientes"`
	Estadisticas EstadisticasListado `json:"estadisticas"`
	Seq          *int64              `json:"seq,omitempty"`
}

// Consulta fila completa de la tabla consultas
type Consulta struct {
	IDConsulta      int64   `json:"id_consulta"`
	IDPaciente      int64   `json:"id_paciente"`
	Fecha           string  `json:"fecha"`
	Hora            string  `json:"hora"`
	MotivoConsulta  string  `json:"motivo_consulta"`
	PresionArterial *string `json:"presion_arterial"`
	Pulso           *string `json:"pulso"`
	Temperatura     *string `json:"temperatura"`
	SaturacionO2    *string `json:"saturacion_o2"`
	Peso            *string `json:"peso"`
	Talla           *string `json:"talla"`
	ExamenFisico    *string `json:"examen_fisico"`
	Diagnostico     string  `json:"diagnostico"`
	Medicamentos    *string `json:"medicamentos"`
	Indicaciones    *string `json:"indicaciones"`
	CreatedAt       string  `json:"created_at"`
}

// HistorialCompleto expediente desnormalizado de un paciente
type HistorialCompleto struct {
	Paciente    pacientesdto.Paciente     `json:"paciente"`
	Antecedente *pacientesdto.Antecedente `json:"antecedente"`
	Consultas   []Consulta                `json:"consultas"`
}

// ExportArchivo artefacto de exportación generado completamente en
// memoria antes de escribir la respuesta
type ExportArchivo struct {
	Nombre      string
	ContentType string
	Contenido   []byte
}
