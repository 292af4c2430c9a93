package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	consultasservices "historial-clinico-core/internal/modules/consultas/services"
	"historial-clinico-core/internal/modules/historiales/dto"
	pacientesdto "historial-clinico-core/internal/modules/pacientes/dto"
	pacientesservices "historial-clinico-core/internal/modules/pacientes/services"
)

// HistorialService arma los listados y expedientes de historia clínica
// combinando pacientes y consultas
type HistorialService struct {
	pacienteSearch  *pacientesservices.PacienteSearchService
	consultaService *consultasservices.ConsultaService
}

// NewHistorialService crea el servicio de historiales
func NewHistorialService(pacienteSearch *pacientesservices.PacienteSearchService, consultaService *consultasservices.ConsultaService) *HistorialService {
	return &HistorialService{
		pacienteSearch:  pacienteSearch,
		consultaService: consultaService,
	}
}

// Listado retorna una fila por paciente con su actividad de consultas.
// Sin término de búsqueda, pacientes y consultas se consultan en
// paralelo; con término, las consultas se restringen al conjunto de
// pacientes coincidentes (conjunto vacío ⇒ cero consultas, nunca todas).
// El tag seq del cliente se devuelve intacto para que pueda descartar
// respuestas obsoletas de búsquedas anteriores.
func (s *HistorialService) Listado(ctx context.Context, termino string, seq *int64) (*dto.ListadoHistoriales, error) {
	termino = strings.TrimSpace(termino)

	var (
		pacientes []pacientesdto.Paciente
		filas     []dto.ConsultaResumen
	)

	if termino == "" {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			pacientes, err = s.pacienteSearch.Buscar(gctx, "")
			return err
		})
		g.Go(func() error {
			var err error
			filas, err = s.consultaService.ListarConPaciente(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("error armando listado de historiales: %w", err)
		}
	} else {
		var err error
		pacientes, err = s.pacienteSearch.Buscar(ctx, termino)
		if err != nil {
			return nil, fmt.Errorf("error buscando pacientes: %w", err)
		}

		ids := make([]int64, 0, len(pacientes))
		for _, paciente := range pacientes {
			ids = append(ids, paciente.ID)
		}
		// Conjunto vacío: centinela imposible para que el filtro de
		// pertenencia retorne cero filas
		if len(ids) == 0 {
			ids = []int64{-1}
		}

		filas, err = s.consultaService.ListarPorPacientes(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("error consultando actividad: %w", err)
		}
	}

	resumenes := AgruparConsultas(filas)
	listado := CombinarConPacientes(pacientes, resumenes, time.Now())
	listado.Seq = seq

	return &listado, nil
}

// Expediente retorna el historial completo desnormalizado de un paciente:
// filiación, antecedentes y consultas en orden cronológico descendente.
// Antecedentes y consultas se consultan en paralelo.
func (s *HistorialService) Expediente(ctx context.Context, idPaciente int64) (*dto.HistorialCompleto, error) {
	var (
		detalle   *pacientesdto.PacienteDetalle
		consultas []dto.Consulta
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detalle, err = s.pacienteSearch.Detalle(gctx, idPaciente)
		return err
	})
	g.Go(func() error {
		var err error
		consultas, err = s.consultaService.ExpedienteDePaciente(gctx, idPaciente)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.HistorialCompleto{
		Paciente:    detalle.Paciente,
		Antecedente: detalle.Antecedente,
		Consultas:   consultas,
	}, nil
}
