package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"historial-clinico-core/internal/modules/historiales/dto"
)

// Geometría de página del render PDF (A4 vertical, milímetros)
const (
	pdfMargen     = 12.0
	pdfAltoLinea  = 6.0
	pdfEspaciador = 4.0
)

// PDFExportService genera el historial clínico como PDF. El documento
// se arma completo en memoria; nunca se entrega un archivo parcial.
type PDFExportService struct{}

// NewPDFExportService crea el servicio de exportación PDF
func NewPDFExportService() *PDFExportService {
	return &PDFExportService{}
}

// Generar produce el PDF del expediente. La paginación es manual: un
// cursor vertical con chequeo de salto de página por cada línea emitida,
// por lo que un párrafo largo puede partirse entre páginas.
func (s *PDFExportService) Generar(historial *dto.HistorialCompleto) (*dto.ExportArchivo, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	maxWidth := pageWidth - pdfMargen*2
	y := pdfMargen

	addText := func(texto string, bold bool, size float64) {
		estilo := ""
		if bold {
			estilo = "B"
		}
		pdf.SetFont("Helvetica", estilo, size)

		// El texto se parte en UTF-8; la traducción cp1252 se aplica
		// recién al dibujar cada línea, nunca antes del SplitText.
		for _, linea := range pdf.SplitText(texto, maxWidth) {
			if y+pdfAltoLinea > pageHeight-pdfMargen {
				pdf.AddPage()
				y = pdfMargen
			}
			pdf.Text(pdfMargen, y, tr(linea))
			y += pdfAltoLinea
		}
	}

	addSpacer := func(alto float64) {
		if y+alto > pageHeight-pdfMargen {
			pdf.AddPage()
			y = pdfMargen
		}
		y += alto
	}

	paciente := historial.Paciente

	// Título
	addText("Historial Clínico", true, 16)
	addSpacer(2)

	// Datos del paciente, una línea etiquetada por campo
	addText("Datos del Paciente", true, 12)
	addText("nombre: "+paciente.Nombre, false, 12)
	addText("dni: "+paciente.DNI, false, 12)
	addText(fmt.Sprintf("edad: %d", paciente.Edad), false, 12)
	addText("sexo: "+paciente.Sexo, false, 12)
	addText("fecha nacimiento: "+paciente.FechaNacimiento, false, 12)
	addText("raza: "+valorOpcional(paciente.Raza), false, 12)
	addText("telefono: "+valorOpcional(paciente.Telefono), false, 12)
	addText("estado civil: "+valorOpcional(paciente.EstadoCivil), false, 12)
	addText("lugar nacimiento: "+valorOpcional(paciente.LugarNacimiento), false, 12)
	addText("grado instruccion: "+valorOpcional(paciente.GradoInstruccion), false, 12)
	addText("domicilio actual: "+valorOpcional(paciente.DomicilioActual), false, 12)
	addText("lugar procedencia: "+valorOpcional(paciente.LugarProcedencia), false, 12)
	addText("tiempo procedencia: "+valorOpcional(paciente.TiempoProcedencia), false, 12)
	addText("tipo seguro: "+valorOpcional(paciente.TipoSeguro), false, 12)
	addText("persona responsable: "+valorOpcional(paciente.PersonaResponsable), false, 12)
	addText("dni responsable: "+valorOpcional(paciente.DNIResponsable), false, 12)
	addText("celular responsable: "+valorOpcional(paciente.CelularResponsable), false, 12)
	addText("direccion responsable: "+valorOpcional(paciente.DireccionResponsable), false, 12)
	addText("estado: "+paciente.Estado, false, 12)
	addSpacer(pdfEspaciador)

	// Antecedentes: enfermedades de infancia y alergias como listas
	addText("Antecedentes", true, 12)
	var enfermedades, alergias []string
	if historial.Antecedente != nil {
		enfermedades = separarLista(historial.Antecedente.EnfermedadesInfancia)
		alergias = separarLista(historial.Antecedente.Alergias)
	}
	if len(enfermedades) > 0 {
		addText("Enfermedades: "+strings.Join(enfermedades, ", "), false, 12)
	} else {
		addText("Enfermedades: N/A", false, 12)
	}
	if len(alergias) > 0 {
		addText("Alergias: "+strings.Join(alergias, ", "), false, 12)
	} else {
		addText("Alergias: N/A", false, 12)
	}
	addSpacer(pdfEspaciador)

	// Consultas, de la más reciente a la más antigua
	addText("Consultas", true, 12)
	if len(historial.Consultas) == 0 {
		addText("Sin consultas registradas", false, 12)
	}
	for i, consulta := range historial.Consultas {
		addText(fmt.Sprintf("Consulta %d - %s", i+1, consulta.Fecha), true, 12)
		addText("Motivo: "+consulta.MotivoConsulta, false, 12)
		// Vitales línea por línea, sin tablas
		addText("Presión Arterial: "+valorVital(consulta.PresionArterial, ""), false, 12)
		addText("Pulso: "+valorVital(consulta.Pulso, " lpm"), false, 12)
		addText("Temperatura: "+valorVital(consulta.Temperatura, " °C"), false, 12)
		addText("Saturación O2: "+valorVital(consulta.SaturacionO2, " %"), false, 12)
		addText("Peso: "+valorVital(consulta.Peso, " kg"), false, 12)
		addText("Talla: "+valorVital(consulta.Talla, " cm"), false, 12)
		addText("Examen Físico", true, 12)
		addText(valorVital(consulta.ExamenFisico, ""), false, 12)
		addText("Diagnóstico", true, 12)
		addText(consulta.Diagnostico, false, 12)
		addText("Medicamentos", true, 12)
		addText(valorVital(consulta.Medicamentos, ""), false, 12)
		addText("Indicaciones", true, 12)
		addText(valorVital(consulta.Indicaciones, ""), false, 12)
		addSpacer(pdfEspaciador)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("error generando PDF: %v", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error serializando PDF: %w", err)
	}

	nombre := "historial.pdf"
	if paciente.DNI != "" {
		nombre = fmt.Sprintf("historial_%s.pdf", paciente.DNI)
	}

	return &dto.ExportArchivo{
		Nombre:      nombre,
		ContentType: "application/pdf",
		Contenido:   buf.Bytes(),
	}, nil
}

// valorOpcional retorna el valor o "N/A"
func valorOpcional(valor *string) string {
	if valor == nil || strings.TrimSpace(*valor) == "" {
		return "N/A"
	}
	return *valor
}

// valorVital retorna el valor con unidad o "-"
func valorVital(valor *string, unidad string) string {
	if valor == nil || strings.TrimSpace(*valor) == "" {
		return "-"
	}
	return *valor + unidad
}

// separarLista parte un campo de texto separado por comas
func separarLista(campo *string) []string {
	if campo == nil {
		return nil
	}
	partes := []string{}
	for _, parte := range strings.Split(*campo, ",") {
		if trimmed := strings.TrimSpace(parte); trimmed != "" {
			partes = append(partes, trimmed)
		}
	}
	return partes
}
