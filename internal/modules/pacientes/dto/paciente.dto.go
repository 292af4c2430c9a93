package dto

import "fmt"

// Paciente fila completa de la tabla pacientes
type Paciente struct {
	ID                   int64   `json:"id_paciente"`
	Nombre               string  `json:"nombre"`
	DNI                  string  `json:"dni"`
	FechaNacimiento      string  `json:"fecha_nacimiento"`
	Edad                 int     `json:"edad"`
	Sexo                 string  `json:"sexo"`
	Raza                 *string `json:"raza"`
	Telefono             *string `json:"telefono"`
	EstadoCivil          *string `json:"estado_civil"`
	LugarNacimiento      *string `json:"lugar_nacimiento"`
	GradoInstruccion     *string `json:"grado_instruccion"`
	DomicilioActual      *string `json:"domicilio_actual"`
	LugarProcedencia     *string `json:"lugar_procedencia"`
	TiempoProcedencia    *string `json:"tiempo_procedencia"`
	TipoSeguro           *string `json:"tipo_seguro"`
	PersonaResponsable   *string `json:"persona_responsable"`
	DNIResponsable       *string `json:"dni_responsable"`
	CelularResponsable   *string `json:"celular_responsable"`
	DireccionResponsable *string `json:"direccion_responsable"`
	Estado               string  `json:"estado"`
	CreatedAt            string  `json:"created_at"`
}

// Antecedente fila de la tabla antecedentes. Los campos gineco-obstétricos
// (menarca, ritmo_menstrual, uso_anticonceptivos, numero_embarazos) solo
// aplican cuando el paciente es de sexo Femenino.
type Antecedente struct {
	ID                   int64   `json:"id_antecedente"`
	IDPaciente           int64   `json:"id_paciente"`
	Ocupacion            *string `json:"ocupacion"`
	Religion             *string `json:"religion"`
	Tabaquismo           *string `json:"tabaquismo"`
	Alcoholismo          *string `json:"alcoholismo"`
	Drogas               *string `json:"drogas"`
	Alimentacion         *string `json:"alimentacion"`
	ActividadFisica      *string `json:"actividad_fisica"`
	Inmunizaciones       *string `json:"inmunizaciones"`
	DiagnosticoPrevio    *string `json:"diagnostico_previo"`
	EnfermedadesInfancia *string `json:"enfermedades_infancia"`
	CirugiasPrevias      *string `json:"cirugias_previas"`
	Alergias             *string `json:"alergias"`
	MedicamentosActuales *string `json:"medicamentos_actuales"`
	Menarca              *string `json:"menarca"`
	RitmoMenstrual       *string `json:"ritmo_menstrual"`
	UsoAnticonceptivos   *string `json:"uso_anticonceptivos"`
	NumeroEmbarazos      *string `json:"numero_embarazos"`
}

// PacienteDetalle paciente con sus antecedentes
type PacienteDetalle struct {
	Paciente    Paciente     `json:"paciente"`
	Antecedente *Antecedente `json:"antecedente"`
}

// RegistrarPacienteRequest payload de registro de paciente.
// Los campos del paciente y del antecedente llegan en un solo payload;
// ambos inserts se ejecutan en una única transacción.
type RegistrarPacienteRequest struct {
	// Datos de filiación
	Nombre               string  `json:"nombre"`
	DNI                  string  `json:"dni"`
	FechaNacimiento      string  `json:"fecha_nacimiento"`
	Sexo                 string  `json:"sexo"`
	Raza                 *string `json:"raza"`
	Telefono             *string `json:"telefono"`
	EstadoCivil          *string `json:"estado_civil"`
	LugarNacimiento      *string `json:"lugar_nacimiento"`
	GradoInstruccion     *string `json:"grado_instruccion"`
	DomicilioActual      *string `json:"domicilio_actual"`
	LugarProcedencia     *string `json:"lugar_procedencia"`
	TiempoProcedencia    *string `json:"tiempo_procedencia"`
	TipoSeguro           *string `json:"tipo_seguro"`
	PersonaResponsable   *string `json:"persona_responsable"`
	DNIResponsable       *string `json:"dni_responsable"`
	CelularResponsable   *string `json:"celular_responsable"`
	DireccionResponsable *string `json:"direccion_responsable"`

	// Antecedentes
	Ocupacion            *string `json:"ocupacion"`
	Religion             *string `json:"religion"`
	Tabaquismo           *string `json:"tabaquismo"`
	Alcoholismo          *string `json:"alcoholismo"`
	Drogas               *string `json:"drogas"`
	Alimentacion         *string `json:"alimentacion"`
	ActividadFisica      *string `json:"actividad_fisica"`
	Inmunizaciones       *string `json:"inmunizaciones"`
	DiagnosticoPrevio    *string `json:"diagnostico_previo"`
	EnfermedadesInfancia *string `json:"enfermedades_infancia"`
	CirugiasPrevias      *string `json:"cirugias_previas"`
	Alergias             *string `json:"alergias"`
	MedicamentosActuales *string `json:"medicamentos_actuales"`

	// Gineco-obstétricos (solo sexo Femenino)
	Menarca            *string `json:"menarca"`
	RitmoMenstrual     *string `json:"ritmo_menstrual"`
	UsoAnticonceptivos *string `json:"uso_anticonceptivos"`
	NumeroEmbarazos    *string `json:"numero_embarazos"`
}

// RegistrarPacienteResult resultado del registro
type RegistrarPacienteResult struct {
	IDPaciente int64 `json:"id_paciente"`
	Edad       int   `json:"edad"`
}

// ValidationError error de validación con código máquina
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError crea un error de validación
func NewValidationError(code, message, field string) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: message,
		Field:   field,
	}
}
