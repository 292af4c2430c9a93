package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"historial-clinico-core/internal/modules/historiales/dto"
	pacientesdto "historial-clinico-core/internal/modules/pacientes/dto"
)

func fecha(valor string) time.Time {
	t, err := time.Parse("2006-01-02", valor)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAgruparConsultas_UnResumenPorPaciente(t *testing.T) {
	filas := []dto.ConsultaResumen{
		{IDConsulta: 1, IDPaciente: 1, NombrePaciente: "Ana Quispe", DNI: "12345678", Fecha: fecha("2024-01-10"), Hora: "09:00:00", MotivoConsulta: "Control", Diagnostico: "Sano"},
		{IDConsulta: 2, IDPaciente: 2, NombrePaciente: "Luis Mamani", DNI: "87654321", Fecha: fecha("2024-02-01"), Hora: "10:00:00", MotivoConsulta: "Fiebre", Diagnostico: "Gripe"},
		{IDConsulta: 3, IDPaciente: 1, NombrePaciente: "Ana Quispe", DNI: "12345678", Fecha: fecha("2024-03-01"), Hora: "11:30:00", MotivoConsulta: "Dolor", Diagnostico: "Gastritis"},
	}

	resumenes := AgruparConsultas(filas)

	require.Len(t, resumenes, 2)
	// Orden de primera aparición
	assert.Equal(t, int64(1), resumenes[0].IDPaciente)
	assert.Equal(t, int64(2), resumenes[1].IDPaciente)
}

func TestAgruparConsultas_RetieneLaMasReciente(t *testing.T) {
	filas := []dto.ConsultaResumen{
		{IDPaciente: 1, Fecha: fecha("2024-01-10"), Hora: "09:00:00", MotivoConsulta: "Control", Diagnostico: "Sano"},
		{IDPaciente: 1, Fecha: fecha("2024-03-01"), Hora: "11:30:00", MotivoConsulta: "Dolor", Diagnostico: "Gastritis"},
	}

	resumenes := AgruparConsultas(filas)

	require.Len(t, resumenes, 1)
	assert.Equal(t, 2, resumenes[0].TotalConsultas)
	assert.Equal(t, fecha("2024-03-01"), resumenes[0].UltimaFecha)
	assert.Equal(t, "Dolor", resumenes[0].UltimoMotivo)
	assert.Equal(t, "Gastritis", resumenes[0].UltimoDiagnostico)
}

func TestAgruparConsultas_DesempataPorHora(t *testing.T) {
	filas := []dto.ConsultaResumen{
		{IDPaciente: 1, Fecha: fecha("2024-03-01"), Hora: "16:45:00", MotivoConsulta: "Tarde", Diagnostico: "B"},
		{IDPaciente: 1, Fecha: fecha("2024-03-01"), Hora: "08:15:00", MotivoConsulta: "Mañana", Diagnostico: "A"},
	}

	resumenes := AgruparConsultas(filas)

	require.Len(t, resumenes, 1)
	assert.Equal(t, "Tarde", resumenes[0].UltimoMotivo)
}

func TestAgruparConsultas_IndependienteDelOrden(t *testing.T) {
	filas := []dto.ConsultaResumen{
		{IDPaciente: 1, Fecha: fecha("2024-01-10"), Hora: "09:00:00", MotivoConsulta: "a", Diagnostico: "a"},
		{IDPaciente: 1, Fecha: fecha("2024-03-01"), Hora: "11:30:00", MotivoConsulta: "b", Diagnostico: "b"},
		{IDPaciente: 2, Fecha: fecha("2024-02-15"), Hora: "10:00:00", MotivoConsulta: "c", Diagnostico: "c"},
		{IDPaciente: 2, Fecha: fecha("2024-02-20"), Hora: "12:00:00", MotivoConsulta: "d", Diagnostico: "d"},
		{IDPaciente: 3, Fecha: fecha("2023-12-31"), Hora: "23:59:00", MotivoConsulta: "e", Diagnostico: "e"},
	}

	esperado := map[int64]dto.ResumenConsultas{}
	for _, resumen := range AgruparConsultas(filas) {
		esperado[resumen.IDPaciente] = resumen
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		barajadas := make([]dto.ConsultaResumen, len(filas))
		copy(barajadas, filas)
		rng.Shuffle(len(barajadas), func(a, b int) {
			barajadas[a], barajadas[b] = barajadas[b], barajadas[a]
		})

		for _, resumen := range AgruparConsultas(barajadas) {
			assert.Equal(t, esperado[resumen.IDPaciente], resumen,
				"el resumen del paciente %d debe ser idéntico con entrada barajada", resumen.IDPaciente)
		}
	}
}

func TestAgruparConsultas_Vacio(t *testing.T) {
	assert.Empty(t, AgruparConsultas(nil))
	assert.Empty(t, AgruparConsultas([]dto.ConsultaResumen{}))
}

func TestCalcularEstado_SinConsultas(t *testing.T) {
	assert.Equal(t, dto.EstadoInactivo, CalcularEstado(nil, time.Now()))
}

func TestCalcularEstado_Umbral(t *testing.T) {
	ahora := fecha("2024-06-30")

	exacto := ahora.AddDate(0, 0, -DiasUmbralActividad)
	assert.Equal(t, dto.EstadoActivo, CalcularEstado(&exacto, ahora), "exactamente 90 días sigue Activo")

	vencido := ahora.AddDate(0, 0, -(DiasUmbralActividad + 1))
	assert.Equal(t, dto.EstadoInactivo, CalcularEstado(&vencido, ahora), "91 días es Inactivo")

	hoy := ahora
	assert.Equal(t, dto.EstadoActivo, CalcularEstado(&hoy, ahora))
}

func TestCombinarConPacientes_PacienteSinConsultas(t *testing.T) {
	pacientes := []pacientesdto.Paciente{
		{ID: 1, Nombre: "Ana Quispe", DNI: "12345678", Edad: 34, Sexo: "Femenino"},
	}

	listado := CombinarConPacientes(pacientes, nil, fecha("2024-06-30"))

	require.Len(t, listado.Pacientes, 1)
	fila := listado.Pacientes[0]
	assert.Equal(t, 0, fila.TotalConsultas)
	assert.Nil(t, fila.UltimaConsulta)
	assert.Equal(t, dto.EstadoInactivo, fila.Estado)
}

func TestCombinarConPacientes_ActividadYTotales(t *testing.T) {
	ahora := fecha("2024-03-15")
	pacientes := []pacientesdto.Paciente{
		{ID: 1, Nombre: "Ana Quispe", DNI: "12345678"},
		{ID: 2, Nombre: "Luis Mamani", DNI: "87654321"},
	}
	filas := []dto.ConsultaResumen{
		{IDPaciente: 1, Fecha: fecha("2024-01-10"), Hora: "09:00:00"},
		{IDPaciente: 1, Fecha: fecha("2024-03-01"), Hora: "11:30:00"},
	}

	listado := CombinarConPacientes(pacientes, AgruparConsultas(filas), ahora)

	require.Len(t, listado.Pacientes, 2)

	ana := listado.Pacientes[0]
	assert.Equal(t, 2, ana.TotalConsultas)
	require.NotNil(t, ana.UltimaConsulta)
	assert.Equal(t, fecha("2024-03-01"), *ana.UltimaConsulta)
	assert.Equal(t, dto.EstadoActivo, ana.Estado)

	luis := listado.Pacientes[1]
	assert.Equal(t, 0, luis.TotalConsultas)
	assert.Equal(t, dto.EstadoInactivo, luis.Estado)

	assert.Equal(t, 2, listado.Estadisticas.TotalPacientes)
	assert.Equal(t, 1, listado.Estadisticas.PacientesActivos)
	assert.Equal(t, 2, listado.Estadisticas.TotalConsultas)
	assert.Equal(t, 1, listado.Estadisticas.PromedioPorPaciente)
}

func TestCombinarConPacientes_PreservaOrdenDePacientes(t *testing.T) {
	pacientes := []pacientesdto.Paciente{
		{ID: 3, Nombre: "C"},
		{ID: 1, Nombre: "A"},
		{ID: 2, Nombre: "B"},
	}

	listado := CombinarConPacientes(pacientes, nil, time.Now())

	require.Len(t, listado.Pacientes, 3)
	assert.Equal(t, int64(3), listado.Pacientes[0].IDPaciente)
	assert.Equal(t, int64(1), listado.Pacientes[1].IDPaciente)
	assert.Equal(t, int64(2), listado.Pacientes[2].IDPaciente)
}
