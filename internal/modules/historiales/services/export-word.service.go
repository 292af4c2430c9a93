package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"

	"historial-clinico-core/internal/modules/historiales/dto"
)

// Ancho total de las tablas de vitales (unidades dxa, ~página A4 útil)
const wordAnchoTabla = 8120

// WordExportService genera el historial clínico como documento Word.
// El documento es un único flujo de contenido, sin saltos de sección
// ni de página artificiales.
type WordExportService struct{}

// NewWordExportService crea el servicio de exportación Word
func NewWordExportService() *WordExportService {
	return &WordExportService{}
}

// Generar produce el .docx del expediente: encabezados y párrafos para
// filiación y antecedentes, y por cada consulta una tabla fija de
// 3 filas por 4 columnas con los signos vitales.
func (s *WordExportService) Generar(historial *dto.HistorialCompleto) (*dto.ExportArchivo, error) {
	w := docx.New().WithDefaultTheme()
	paciente := historial.Paciente

	// Encabezado
	w.AddParagraph().AddText("Historial Clínico").Size("32").Bold()
	w.AddParagraph().AddText(" ")

	// Datos del paciente
	w.AddParagraph().AddText("Datos del Paciente").Size("24").Bold()
	datos := []struct {
		etiqueta string
		valor    string
	}{
		{"nombre", paciente.Nombre},
		{"dni", paciente.DNI},
		{"edad", fmt.Sprintf("%d", paciente.Edad)},
		{"sexo", paciente.Sexo},
		{"fecha nacimiento", paciente.FechaNacimiento},
		{"raza", valorOpcional(paciente.Raza)},
		{"telefono", valorOpcional(paciente.Telefono)},
		{"estado civil", valorOpcional(paciente.EstadoCivil)},
		{"lugar nacimiento", valorOpcional(paciente.LugarNacimiento)},
		{"grado instruccion", valorOpcional(paciente.GradoInstruccion)},
		{"domicilio actual", valorOpcional(paciente.DomicilioActual)},
		{"lugar procedencia", valorOpcional(paciente.LugarProcedencia)},
		{"tiempo procedencia", valorOpcional(paciente.TiempoProcedencia)},
		{"tipo seguro", valorOpcional(paciente.TipoSeguro)},
		{"persona responsable", valorOpcional(paciente.PersonaResponsable)},
		{"dni responsable", valorOpcional(paciente.DNIResponsable)},
		{"celular responsable", valorOpcional(paciente.CelularResponsable)},
		{"direccion responsable", valorOpcional(paciente.DireccionResponsable)},
		{"estado", paciente.Estado},
	}
	for _, dato := range datos {
		w.AddParagraph().AddText(dato.etiqueta + ": " + dato.valor)
	}
	w.AddParagraph().AddText(" ")

	// Antecedentes completos, todos los campos en un solo párrafo
	w.AddParagraph().AddText("Antecedentes").Size("24").Bold()
	if historial.Antecedente != nil {
		a := historial.Antecedente
		campos := []struct {
			etiqueta string
			valor    *string
		}{
			{"ocupacion", a.Ocupacion},
			{"religion", a.Religion},
			{"tabaquismo", a.Tabaquismo},
			{"alcoholismo", a.Alcoholismo},
			{"drogas", a.Drogas},
			{"alimentacion", a.Alimentacion},
			{"actividad fisica", a.ActividadFisica},
			{"inmunizaciones", a.Inmunizaciones},
			{"diagnostico previo", a.DiagnosticoPrevio},
			{"enfermedades infancia", a.EnfermedadesInfancia},
			{"cirugias previas", a.CirugiasPrevias},
			{"alergias", a.Alergias},
			{"medicamentos actuales", a.MedicamentosActuales},
			{"menarca", a.Menarca},
			{"ritmo menstrual", a.RitmoMenstrual},
			{"uso anticonceptivos", a.UsoAnticonceptivos},
			{"numero embarazos", a.NumeroEmbarazos},
		}
		partes := make([]string, 0, len(campos))
		for _, campo := range campos {
			partes = append(partes, campo.etiqueta+": "+valorOpcional(campo.valor))
		}
		w.AddParagraph().AddText(strings.Join(partes, ", "))
	} else {
		w.AddParagraph().AddText("Enfermedades: N/A")
		w.AddParagraph().AddText("Alergias: N/A")
	}
	w.AddParagraph().AddText(" ")

	// Consultas
	w.AddParagraph().AddText("Consultas").Size("24").Bold()
	if len(historial.Consultas) == 0 {
		w.AddParagraph().AddText("Sin consultas registradas")
	}
	for i, consulta := range historial.Consultas {
		w.AddParagraph().AddText(fmt.Sprintf("Consulta %d - %s", i+1, consulta.Fecha)).Bold()
		w.AddParagraph().AddText("Motivo: " + consulta.MotivoConsulta)

		tabla := w.AddTable(3, 4, wordAnchoTabla, nil)
		celdas := [3][4]string{
			{"Presión Arterial", valorVital(consulta.PresionArterial, ""), "Pulso", valorVital(consulta.Pulso, " lpm")},
			{"Temperatura", valorVital(consulta.Temperatura, " °C"), "Saturación O2", valorVital(consulta.SaturacionO2, " %")},
			{"Peso", valorVital(consulta.Peso, " kg"), "Talla", valorVital(consulta.Talla, " cm")},
		}
		for fila := 0; fila < 3; fila++ {
			for columna := 0; columna < 4; columna++ {
				tabla.TableRows[fila].TableCells[columna].AddParagraph().AddText(celdas[fila][columna])
			}
		}

		w.AddParagraph().AddText("Examen Físico").Bold()
		w.AddParagraph().AddText(valorVital(consulta.ExamenFisico, ""))
		w.AddParagraph().AddText("Diagnóstico").Bold()
		w.AddParagraph().AddText(consulta.Diagnostico)
		w.AddParagraph().AddText("Medicamentos").Bold()
		w.AddParagraph().AddText(valorVital(consulta.Medicamentos, ""))
		w.AddParagraph().AddText("Indicaciones").Bold()
		w.AddParagraph().AddText(valorVital(consulta.Indicaciones, ""))
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("error serializando documento Word: %w", err)
	}

	nombre := "historial.docx"
	if paciente.Nombre != "" {
		nombre = fmt.Sprintf("Historial_%s.docx", paciente.Nombre)
	}

	return &dto.ExportArchivo{
		Nombre:      nombre,
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Contenido:   buf.Bytes(),
	}, nil
}
