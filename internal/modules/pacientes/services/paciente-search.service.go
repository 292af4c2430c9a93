package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"historial-clinico-core/internal/infrastructure/database/postgres"
	"historial-clinico-core/internal/modules/pacientes/dto"
	"historial-clinico-core/internal/modules/pacientes/queries"
)

// PacienteSearchService resuelve búsquedas y lecturas de pacientes
type PacienteSearchService struct {
	db *postgres.Client
}

// NewPacienteSearchService crea el servicio de búsqueda
func NewPacienteSearchService(db *postgres.Client) *PacienteSearchService {
	return &PacienteSearchService{
		db: db,
	}
}

// Buscar retorna los pacientes cuyo nombre o DNI contiene el término.
// Un término vacío (o solo espacios) retorna el listado completo.
func (s *PacienteSearchService) Buscar(ctx context.Context, termino string) ([]dto.Paciente, error) {
	termino = strings.TrimSpace(termino)

	var (
		rows pgx.Rows
		err  error
	)
	if termino == "" {
		rows, err = s.db.Query(ctx, queries.PacienteQueries.ListPacientes)
	} else {
		rows, err = s.db.Query(ctx, queries.PacienteQueries.SearchPacientes, termino)
	}
	if err != nil {
		return nil, fmt.Errorf("error buscando pacientes: %w", err)
	}
	defer rows.Close()

	return scanPacientes(rows)
}

// BuscarPorIDs retorna los pacientes del conjunto de ids dado.
// Un conjunto vacío retorna cero filas.
func (s *PacienteSearchService) BuscarPorIDs(ctx context.Context, ids []int64) ([]dto.Paciente, error) {
	if len(ids) == 0 {
		return []dto.Paciente{}, nil
	}

	rows, err := s.db.Query(ctx, queries.PacienteQueries.GetPacientesByIDs, ids)
	if err != nil {
		return nil, fmt.Errorf("error consultando pacientes por ids: %w", err)
	}
	defer rows.Close()

	return scanPacientes(rows)
}

// Detalle retorna el paciente con sus antecedentes
func (s *PacienteSearchService) Detalle(ctx context.Context, idPaciente int64) (*dto.PacienteDetalle, error) {
	row := s.db.QueryRow(ctx, queries.PacienteQueries.GetPacienteByID, idPaciente)

	paciente, err := scanPaciente(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, dto.NewValidationError("PACIENTE_NO_ENCONTRADO", "El paciente no existe", "id_paciente")
		}
		return nil, fmt.Errorf("error consultando paciente: %w", err)
	}

	antecedente, err := s.AntecedenteDePaciente(ctx, idPaciente)
	if err != nil {
		return nil, err
	}

	return &dto.PacienteDetalle{
		Paciente:    *paciente,
		Antecedente: antecedente,
	}, nil
}

// AntecedenteDePaciente retorna los antecedentes, nil si no existen
func (s *PacienteSearchService) AntecedenteDePaciente(ctx context.Context, idPaciente int64) (*dto.Antecedente, error) {
	var a dto.Antecedente
	err := s.db.QueryRow(ctx, queries.PacienteQueries.GetAntecedentePaciente, idPaciente).Scan(
		&a.ID, &a.IDPaciente, &a.Ocupacion, &a.Religion, &a.Tabaquismo,
		&a.Alcoholismo, &a.Drogas, &a.Alimentacion, &a.ActividadFisica,
		&a.Inmunizaciones, &a.DiagnosticoPrevio, &a.EnfermedadesInfancia,
		&a.CirugiasPrevias, &a.Alergias, &a.MedicamentosActuales,
		&a.Menarca, &a.RitmoMenstrual, &a.UsoAnticonceptivos, &a.NumeroEmbarazos,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error consultando antecedentes: %w", err)
	}
	return &a, nil
}

// Count retorna el total de pacientes registrados
func (s *PacienteSearchService) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.QueryRow(ctx, queries.PacienteQueries.CountPacientes).Scan(&total); err != nil {
		return 0, fmt.Errorf("error contando pacientes: %w", err)
	}
	return total, nil
}

// scanPacientes recorre un rows completo de pacientes
func scanPacientes(rows pgx.Rows) ([]dto.Paciente, error) {
	pacientes := []dto.Paciente{}
	for rows.Next() {
		paciente, err := scanPaciente(rows)
		if err != nil {
			return nil, fmt.Errorf("error leyendo fila de paciente: %w", err)
		}
		pacientes = append(pacientes, *paciente)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando pacientes: %w", err)
	}
	return pacientes, nil
}

// scanPaciente lee una fila con las columnas de pacienteColumns
func scanPaciente(row pgx.Row) (*dto.Paciente, error) {
	var (
		p               dto.Paciente
		fechaNacimiento time.Time
		createdAt       time.Time
	)

	err := row.Scan(
		&p.ID, &p.Nombre, &p.DNI, &fechaNacimiento, &p.Edad, &p.Sexo,
		&p.Raza, &p.Telefono, &p.EstadoCivil, &p.LugarNacimiento, &p.GradoInstruccion,
		&p.DomicilioActual, &p.LugarProcedencia, &p.TiempoProcedencia, &p.TipoSeguro,
		&p.PersonaResponsable, &p.DNIResponsable, &p.CelularResponsable,
		&p.DireccionResponsable, &p.Estado, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	p.FechaNacimiento = fechaNacimiento.Format("2006-01-02")
	p.CreatedAt = createdAt.Format(time.RFC3339)
	return &p, nil
}
