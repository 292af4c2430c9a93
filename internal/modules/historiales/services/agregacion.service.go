package services

import (
	"math"
	"time"

	"historial-clinico-core/internal/modules/historiales/dto"
	pacientesdto "historial-clinico-core/internal/modules/pacientes/dto"
)

// DiasUmbralActividad días desde la última consulta dentro de los cuales
// un paciente se considera Activo. Exactamente 90 días sigue siendo Activo.
const DiasUmbralActividad = 90

// AgruparConsultas reduce filas de consultas a un resumen por paciente.
// Produce un resumen por id_paciente distinto, en orden de primera
// aparición. La consulta retenida como "última" es la cronológicamente
// más reciente por comparación explícita de (fecha, hora), de modo que
// el resultado no depende del orden de entrada.
func AgruparConsultas(filas []dto.ConsultaResumen) []dto.ResumenConsultas {
	resumenes := []dto.ResumenConsultas{}
	porPaciente := map[int64]int{}

	for _, fila := range filas {
		idx, visto := porPaciente[fila.IDPaciente]
		if !visto {
			porPaciente[fila.IDPaciente] = len(resumenes)
			resumenes = append(resumenes, dto.ResumenConsultas{
				IDPaciente:        fila.IDPaciente,
				NombrePaciente:    fila.NombrePaciente,
				DNI:               fila.DNI,
				UltimaFecha:       fila.Fecha,
				UltimaHora:        fila.Hora,
				UltimoMotivo:      fila.MotivoConsulta,
				UltimoDiagnostico: fila.Diagnostico,
				TotalConsultas:    1,
			})
			continue
		}

		resumen := &resumenes[idx]
		resumen.TotalConsultas++
		if esMasReciente(fila.Fecha, fila.Hora, resumen.UltimaFecha, resumen.UltimaHora) {
			resumen.UltimaFecha = fila.Fecha
			resumen.UltimaHora = fila.Hora
			resumen.UltimoMotivo = fila.MotivoConsulta
			resumen.UltimoDiagnostico = fila.Diagnostico
		}
	}

	return resumenes
}

// esMasReciente compara (fecha, hora) de dos consultas
func esMasReciente(fecha time.Time, hora string, queFecha time.Time, queHora string) bool {
	if !fecha.Equal(queFecha) {
		return fecha.After(queFecha)
	}
	return hora > queHora
}

// CalcularEstado determina la actividad de un paciente según su última
// consulta: Activo si pasaron a lo sumo DiasUmbralActividad días completos.
// Sin consultas (nil) el paciente es Inactivo.
func CalcularEstado(ultimaConsulta *time.Time, ahora time.Time) string {
	if ultimaConsulta == nil {
		return dto.EstadoInactivo
	}

	dias := int(math.Floor(ahora.Sub(*ultimaConsulta).Hours() / 24))
	if dias <= DiasUmbralActividad {
		return dto.EstadoActivo
	}
	return dto.EstadoInactivo
}

// CombinarConPacientes une el listado de pacientes con los resúmenes de
// consultas. Todo paciente aparece en el resultado aunque no tenga
// consultas (Inactivo, total 0), preservando el orden del listado de
// pacientes. Calcula además las estadísticas del listado.
func CombinarConPacientes(pacientes []pacientesdto.Paciente, resumenes []dto.ResumenConsultas, ahora time.Time) dto.ListadoHistoriales {
	porPaciente := make(map[int64]*dto.ResumenConsultas, len(resumenes))
	for i := range resumenes {
		porPaciente[resumenes[i].IDPaciente] = &resumenes[i]
	}

	listado := make([]dto.ResumenPaciente, 0, len(pacientes))
	totalConsultas := 0
	activos := 0

	for _, paciente := range pacientes {
		fila := dto.ResumenPaciente{
			IDPaciente: paciente.ID,
			Nombre:     paciente.Nombre,
			DNI:        paciente.DNI,
			Edad:       paciente.Edad,
			Sexo:       paciente.Sexo,
		}

		if resumen, ok := porPaciente[paciente.ID]; ok {
			ultima := resumen.UltimaFecha
			fila.TotalConsultas = resumen.TotalConsultas
			fila.UltimaConsulta = &ultima
			fila.Estado = CalcularEstado(&ultima, ahora)
		} else {
			fila.TotalConsultas = 0
			fila.UltimaConsulta = nil
			fila.Estado = dto.EstadoInactivo
		}

		totalConsultas += fila.TotalConsultas
		if fila.Estado == dto.EstadoActivo {
			activos++
		}

		listado = append(listado, fila)
	}

	promedio := 0
	if len(pacientes) > 0 {
		promedio = int(math.Round(float64(totalConsultas) / float64(len(pacientes))))
	}

	return dto.ListadoHistoriales{
		Pacientes: listado,
		Estadisticas: dto.EstadisticasListado{
			TotalPacientes:      len(pacientes),
			PacientesActivos:    activos,
			TotalConsultas:      totalConsultas,
			PromedioPorPaciente: promedio,
		},
	}
}
