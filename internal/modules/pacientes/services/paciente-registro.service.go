package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"historial-clinico-core/internal/infrastructure/database/postgres"
	"historial-clinico-core/internal/infrastructure/database/redis"
	"historial-clinico-core/internal/modules/pacientes/dto"
	"historial-clinico-core/internal/modules/pacientes/queries"
)

// Valores aceptados para el campo sexo
const (
	SexoMasculino = "Masculino"
	SexoFemenino  = "Femenino"
)

// PacienteRegistroService registra pacientes con sus antecedentes.
// El alta del paciente y la del antecedente se ejecutan en una sola
// transacción: o se persisten ambas filas o ninguna.
type PacienteRegistroService struct {
	db          *postgres.Client
	txManager   *postgres.TransactionManager
	redisClient *redis.Client
}

// NewPacienteRegistroService crea el servicio de registro
func NewPacienteRegistroService(db *postgres.Client, txManager *postgres.TransactionManager, redisClient *redis.Client) *PacienteRegistroService {
	return &PacienteRegistroService{
		db:          db,
		txManager:   txManager,
		redisClient: redisClient,
	}
}

// Registrar valida y persiste un paciente nuevo con sus antecedentes
func (s *PacienteRegistroService) Registrar(ctx context.Context, req *dto.RegistrarPacienteRequest) (*dto.RegistrarPacienteResult, error) {
	if err := validarRegistro(req); err != nil {
		return nil, err
	}

	fechaNacimiento, err := time.Parse("2006-01-02", req.FechaNacimiento)
	if err != nil {
		return nil, dto.NewValidationError("FECHA_INVALIDA",
			"fecha_nacimiento debe tener formato YYYY-MM-DD", "fecha_nacimiento")
	}

	// La edad se calcula siempre en el servidor
	edad := CalcularEdad(fechaNacimiento, time.Now())

	normalizarCamposGineco(req)

	var idPaciente int64

	err = s.txManager.WithTransaction(ctx, func(tx *postgres.Transaction) error {
		if err := tx.QueryRow(ctx, queries.PacienteQueries.InsertPaciente,
			strings.TrimSpace(req.Nombre), req.DNI, fechaNacimiento, edad, req.Sexo,
			req.Raza, req.Telefono, req.EstadoCivil, req.LugarNacimiento, req.GradoInstruccion,
			req.DomicilioActual, req.LugarProcedencia, req.TiempoProcedencia, req.TipoSeguro,
			req.PersonaResponsable, req.DNIResponsable, req.CelularResponsable,
			req.DireccionResponsable,
		).Scan(&idPaciente); err != nil {
			return fmt.Errorf("error insertando paciente: %w", err)
		}

		var idAntecedente int64
		if err := tx.QueryRow(ctx, queries.PacienteQueries.InsertAntecedente,
			idPaciente, req.Ocupacion, req.Religion, req.Tabaquismo, req.Alcoholismo, req.Drogas,
			req.Alimentacion, req.ActividadFisica, req.Inmunizaciones, req.DiagnosticoPrevio,
			req.EnfermedadesInfancia, req.CirugiasPrevias, req.Alergias, req.MedicamentosActuales,
			req.Menarca, req.RitmoMenstrual, req.UsoAnticonceptivos, req.NumeroEmbarazos,
		).Scan(&idAntecedente); err != nil {
			return fmt.Errorf("error insertando antecedentes: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	fmt.Printf("[PACIENTES] ✅ Paciente registrado: %s (DNI %s)\n", req.Nombre, req.DNI)

	// Warming del cache por DNI (best-effort, nunca bloquea el registro)
	go s.warmCache(req.DNI, idPaciente)

	return &dto.RegistrarPacienteResult{
		IDPaciente: idPaciente,
		Edad:       edad,
	}, nil
}

// validarRegistro aplica las validaciones de presencia y formato
func validarRegistro(req *dto.RegistrarPacienteRequest) error {
	if strings.TrimSpace(req.Nombre) == "" {
		return dto.NewValidationError("CAMPO_REQUERIDO", "nombre es requerido", "nombre")
	}
	if strings.TrimSpace(req.DNI) == "" {
		return dto.NewValidationError("CAMPO_REQUERIDO", "dni es requerido", "dni")
	}
	if len(req.DNI) != 8 {
		return dto.NewValidationError("DNI_INVALIDO", "dni debe tener exactamente 8 caracteres", "dni")
	}
	if strings.TrimSpace(req.FechaNacimiento) == "" {
		return dto.NewValidationError("CAMPO_REQUERIDO", "fecha_nacimiento es requerida", "fecha_nacimiento")
	}
	if req.Sexo != SexoMasculino && req.Sexo != SexoFemenino {
		return dto.NewValidationError("SEXO_INVALIDO",
			fmt.Sprintf("sexo debe ser '%s' o '%s'", SexoMasculino, SexoFemenino), "sexo")
	}
	return nil
}

// normalizarCamposGineco descarta los campos gineco-obstétricos cuando
// el sexo es Masculino; para Femenino se persisten tal como llegan
func normalizarCamposGineco(req *dto.RegistrarPacienteRequest) {
	if req.Sexo == SexoMasculino {
		req.Menarca = nil
		req.RitmoMenstrual = nil
		req.UsoAnticonceptivos = nil
		req.NumeroEmbarazos = nil
	}
}

// CalcularEdad calcula la edad en años cumplidos a una fecha dada
func CalcularEdad(fechaNacimiento, ahora time.Time) int {
	edad := ahora.Year() - fechaNacimiento.Year()
	if ahora.Month() < fechaNacimiento.Month() ||
		(ahora.Month() == fechaNacimiento.Month() && ahora.Day() < fechaNacimiento.Day()) {
		edad--
	}
	if edad < 0 {
		return 0
	}
	return edad
}

// warmCache precarga el paciente recién creado en el cache Redis
func (s *PacienteRegistroService) warmCache(dni string, idPaciente int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	payload, err := json.Marshal(map[string]interface{}{
		"id_paciente": idPaciente,
		"dni":         dni,
	})
	if err != nil {
		return
	}

	key := s.redisClient.Keys().PacienteCacheKey(dni)
	ttl := time.Duration(redis.RedisKeyPatterns["cache_paciente"].TTL) * time.Second
	if err := s.redisClient.Set(ctx, key, payload, ttl); err != nil {
		fmt.Printf("[PACIENTES] ⚠️ Cache warming fallido para DNI %s: %v\n", dni, err)
	}
}
