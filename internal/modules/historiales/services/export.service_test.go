package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"historial-clinico-core/internal/modules/historiales/dto"
	pacientesdto "historial-clinico-core/internal/modules/pacientes/dto"
)

func historialDePrueba() *dto.HistorialCompleto {
	alergias := "Penicilina, Polen"
	enfermedades := "Varicela"
	presion := "120/80"
	pulso := "72"

	return &dto.HistorialCompleto{
		Paciente: pacientesdto.Paciente{
			ID:              1,
			Nombre:          "Ana Quispe",
			DNI:             "12345678",
			Edad:            34,
			Sexo:            "Femenino",
			FechaNacimiento: "1990-04-12",
			Estado:          "Activo",
		},
		Antecedente: &pacientesdto.Antecedente{
			ID:                   1,
			IDPaciente:           1,
			Alergias:             &alergias,
			EnfermedadesInfancia: &enfermedades,
		},
		Consultas: []dto.Consulta{
			{
				IDConsulta:      1,
				IDPaciente:      1,
				Fecha:           "2024-03-01",
				Hora:            "11:30:00",
				MotivoConsulta:  "Dolor abdominal",
				PresionArterial: &presion,
				Pulso:           &pulso,
				Diagnostico:     "Gastritis aguda",
			},
		},
	}
}

func historialVacio() *dto.HistorialCompleto {
	return &dto.HistorialCompleto{
		Paciente: pacientesdto.Paciente{
			ID:              2,
			Nombre:          "Luis Mamani",
			DNI:             "87654321",
			Edad:            40,
			Sexo:            "Masculino",
			FechaNacimiento: "1984-01-01",
			Estado:          "Inactivo",
		},
		Antecedente: nil,
		Consultas:   []dto.Consulta{},
	}
}

func TestPDFExport_Generar(t *testing.T) {
	archivo, err := NewPDFExportService().Generar(historialDePrueba())

	require.NoError(t, err)
	assert.Equal(t, "historial_12345678.pdf", archivo.Nombre)
	assert.Equal(t, "application/pdf", archivo.ContentType)
	require.NotEmpty(t, archivo.Contenido)
	assert.True(t, bytes.HasPrefix(archivo.Contenido, []byte("%PDF")), "el contenido debe ser un PDF válido")
}

func TestPDFExport_TextoConAcentos(t *testing.T) {
	historial := historialDePrueba()
	historial.Paciente.Nombre = "José Ñahui Condori"
	motivo := "Cefalea y visión borrosa según evaluación previa"
	historial.Consultas[0].MotivoConsulta = motivo
	historial.Consultas[0].Diagnostico = "Migraña crónica"

	archivo, err := NewPDFExportService().Generar(historial)

	require.NoError(t, err)
	require.NotEmpty(t, archivo.Contenido)
	assert.True(t, bytes.HasPrefix(archivo.Contenido, []byte("%PDF")))
}

func TestPDFExport_SinAntecedentesNiConsultas(t *testing.T) {
	archivo, err := NewPDFExportService().Generar(historialVacio())

	require.NoError(t, err)
	require.NotEmpty(t, archivo.Contenido)
	assert.True(t, bytes.HasPrefix(archivo.Contenido, []byte("%PDF")))
}

func TestPDFExport_NombreFallback(t *testing.T) {
	historial := historialVacio()
	historial.Paciente.DNI = ""

	archivo, err := NewPDFExportService().Generar(historial)

	require.NoError(t, err)
	assert.Equal(t, "historial.pdf", archivo.Nombre)
}

func TestWordExport_Generar(t *testing.T) {
	archivo, err := NewWordExportService().Generar(historialDePrueba())

	require.NoError(t, err)
	assert.Equal(t, "Historial_Ana Quispe.docx", archivo.Nombre)
	require.NotEmpty(t, archivo.Contenido)
	// Un .docx es un contenedor ZIP
	assert.True(t, bytes.HasPrefix(archivo.Contenido, []byte("PK")), "el contenido debe ser un ZIP OOXML")
}

func TestWordExport_SinAntecedentesNiConsultas(t *testing.T) {
	archivo, err := NewWordExportService().Generar(historialVacio())

	require.NoError(t, err)
	require.NotEmpty(t, archivo.Contenido)
	assert.True(t, bytes.HasPrefix(archivo.Contenido, []byte("PK")))
}

func TestValoresDeExportacion(t *testing.T) {
	vacio := "   "
	valor := "120/80"

	assert.Equal(t, "N/A", valorOpcional(nil))
	assert.Equal(t, "N/A", valorOpcional(&vacio))
	assert.Equal(t, "120/80", valorOpcional(&valor))

	assert.Equal(t, "-", valorVital(nil, " lpm"))
	assert.Equal(t, "120/80", valorVital(&valor, ""))
	pulso := "72"
	assert.Equal(t, "72 lpm", valorVital(&pulso, " lpm"))
}

func TestSepararLista(t *testing.T) {
	campo := " Penicilina, , Polen ,"
	assert.Equal(t, []string{"Penicilina", "Polen"}, separarLista(&campo))
	assert.Nil(t, separarLista(nil))
}
