package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"historial-clinico-core/internal/infrastructure/database/postgres"
	"historial-clinico-core/internal/modules/consultas/dto"
	"historial-clinico-core/internal/modules/consultas/queries"
	historialesdto "historial-clinico-core/internal/modules/historiales/dto"
)

// ConsultaService registra y consulta atenciones médicas. La tabla de
// consultas es append-only: no hay updates ni deletes.
type ConsultaService struct {
	db *postgres.Client
}

// NewConsultaService crea el servicio de consultas
func NewConsultaService(db *postgres.Client) *ConsultaService {
	return &ConsultaService{
		db: db,
	}
}

// Registrar inserta una consulta nueva para un paciente existente
func (s *ConsultaService) Registrar(ctx context.Context, idPaciente int64, req *dto.RegistrarConsultaRequest) (*dto.RegistrarConsultaResult, error) {
	if strings.TrimSpace(req.MotivoConsulta) == "" {
		return nil, dto.NewConsultaError("CAMPO_REQUERIDO", "motivo_consulta es requerido")
	}
	if strings.TrimSpace(req.Diagnostico) == "" {
		return nil, dto.NewConsultaError("CAMPO_REQUERIDO", "diagnostico es requerido")
	}

	var existe bool
	if err := s.db.QueryRow(ctx, queries.ConsultaQueries.ExistePaciente, idPaciente).Scan(&existe); err != nil {
		return nil, fmt.Errorf("error verificando paciente: %w", err)
	}
	if !existe {
		return nil, dto.NewConsultaError("PACIENTE_NO_ENCONTRADO", "El paciente no existe")
	}

	presionArterial := dto.ComponerPresion(req.PresionSistolica, req.PresionDiastolica)

	var (
		idConsulta int64
		fecha      time.Time
		hora       string
	)
	err := s.db.QueryRow(ctx, queries.ConsultaQueries.InsertConsulta,
		idPaciente, req.MotivoConsulta, presionArterial,
		req.Pulso, req.Temperatura, req.SaturacionO2, req.Peso, req.Talla,
		req.ExamenFisico, req.Diagnostico, req.Medicamentos, req.Indicaciones,
	).Scan(&idConsulta, &fecha, &hora)
	if err != nil {
		return nil, fmt.Errorf("error registrando consulta: %w", err)
	}

	fmt.Printf("[CONSULTAS] ✅ Consulta %d registrada para paciente %d\n", idConsulta, idPaciente)

	return &dto.RegistrarConsultaResult{
		IDConsulta: idConsulta,
		Fecha:      fecha.Format("2006-01-02"),
		Hora:       hora,
	}, nil
}

// ListarConPaciente retorna todas las consultas unidas con su paciente,
// en orden cronológico descendente
func (s *ConsultaService) ListarConPaciente(ctx context.Context) ([]historialesdto.ConsultaResumen, error) {
	rows, err := s.db.Query(ctx, queries.ConsultaQueries.ListConsultasConPaciente)
	if err != nil {
		return nil, fmt.Errorf("error listando consultas: %w", err)
	}
	defer rows.Close()

	return scanConsultasResumen(rows)
}

// ListarPorPacientes retorna las consultas del conjunto de pacientes dado.
// Un conjunto vacío retorna cero filas.
func (s *ConsultaService) ListarPorPacientes(ctx context.Context, ids []int64) ([]historialesdto.ConsultaResumen, error) {
	if len(ids) == 0 {
		return []historialesdto.ConsultaResumen{}, nil
	}

	rows, err := s.db.Query(ctx, queries.ConsultaQueries.GetConsultasByPacientes, ids)
	if err != nil {
		return nil, fmt.Errorf("error consultando por pacientes: %w", err)
	}
	defer rows.Close()

	return scanConsultasResumen(rows)
}

// ExpedienteDePaciente retorna las consultas completas de un paciente
func (s *ConsultaService) ExpedienteDePaciente(ctx context.Context, idPaciente int64) ([]historialesdto.Consulta, error) {
	rows, err := s.db.Query(ctx, queries.ConsultaQueries.GetConsultasByPaciente, idPaciente)
	if err != nil {
		return nil, fmt.Errorf("error consultando expediente: %w", err)
	}
	defer rows.Close()

	consultas := []historialesdto.Consulta{}
	for rows.Next() {
		var (
			consulta  historialesdto.Consulta
			fecha     time.Time
			createdAt time.Time
		)
		if err := rows.Scan(
			&consulta.IDConsulta, &consulta.IDPaciente, &fecha, &consulta.Hora, &consulta.MotivoConsulta,
			&consulta.PresionArterial, &consulta.Pulso, &consulta.Temperatura, &consulta.SaturacionO2,
			&consulta.Peso, &consulta.Talla, &consulta.ExamenFisico, &consulta.Diagnostico,
			&consulta.Medicamentos, &consulta.Indicaciones, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("error leyendo consulta: %w", err)
		}
		consulta.Fecha = fecha.Format("2006-01-02")
		consulta.CreatedAt = createdAt.Format(time.RFC3339)
		consultas = append(consultas, consulta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando expediente: %w", err)
	}

	return consultas, nil
}

// Estadisticas cuenta consultas de hoy, últimos 7 días y últimos 30 días
func (s *ConsultaService) Estadisticas(ctx context.Context) (*dto.EstadisticasConsultas, error) {
	ahora := time.Now()
	hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())

	stats := &dto.EstadisticasConsultas{}

	periodos := []struct {
		desde   time.Time
		destino *int64
	}{
		{hoy, &stats.Hoy},
		{hoy.AddDate(0, 0, -7), &stats.UltimaSemana},
		{hoy.AddDate(0, 0, -30), &stats.UltimoMes},
	}

	for _, periodo := range periodos {
		if err := s.db.QueryRow(ctx, queries.ConsultaQueries.CountByPeriodo, periodo.desde).Scan(periodo.destino); err != nil {
			return nil, fmt.Errorf("error contando consultas: %w", err)
		}
	}

	if err := s.db.QueryRow(ctx, queries.ConsultaQueries.CountTotal).Scan(&stats.TotalHistoria); err != nil {
		return nil, fmt.Errorf("error contando total de consultas: %w", err)
	}

	return stats, nil
}

// scanConsultasResumen lee filas de consulta unidas con paciente
func scanConsultasResumen(rows pgx.Rows) ([]historialesdto.ConsultaResumen, error) {
	resumenes := []historialesdto.ConsultaResumen{}
	for rows.Next() {
		var resumen historialesdto.ConsultaResumen
		if err := rows.Scan(
			&resumen.IDConsulta, &resumen.IDPaciente, &resumen.NombrePaciente, &resumen.DNI,
			&resumen.Fecha, &resumen.Hora, &resumen.MotivoConsulta, &resumen.Diagnostico,
		); err != nil {
			return nil, fmt.Errorf("error leyendo fila de consulta: %w", err)
		}
		resumenes = append(resumenes, resumen)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando consultas: %w", err)
	}
	return resumenes, nil
}
