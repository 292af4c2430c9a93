package queries

// ConsultaQueries contiene todas las consultas SQL de consultas médicas
var ConsultaQueries = struct {
	InsertConsulta           string
	ListConsultasConPaciente string
	GetConsultasByPaciente   string
	GetConsultasByPacientes  string
	CountByPeriodo           string
	CountTotal               string
	ExistePaciente           string
}{
	// InsertConsulta - Registro append-only, fecha y hora del servidor
	InsertConsulta: `
		INSERT INTO consultas (
			id_paciente, fecha, hora, motivo_consulta, presion_arterial,
			pulso, temperatura, saturacion_o2, peso, talla,
			examen_fisico, diagnostico, medicamentos, indicaciones, created_at
		) VALUES (
			$1, CURRENT_DATE, CURRENT_TIME, $2, $3,
			$4, $5, $6, $7, $8,
			$9, $10, $11, $12, NOW()
		)
		RETURNING id_consulta, fecha, hora::text;
	`,

	// ListConsultasConPaciente - Todas las consultas unidas con el paciente,
	// orden cronológico descendente
	ListConsultasConPaciente: `
		SELECT c.id_consulta, c.id_paciente, p.nombre, p.dni,
		       c.fecha, c.hora::text, c.motivo_consulta, c.diagnostico
		FROM consultas c
		JOIN pacientes p ON p.id_paciente = c.id_paciente
		ORDER BY c.fecha DESC, c.hora DESC;
	`,

	// GetConsultasByPaciente - Expediente de un paciente, orden cronológico descendente
	GetConsultasByPaciente: `
		SELECT c.id_consulta, c.id_paciente, c.fecha, c.hora::text, c.motivo_consulta,
		       c.presion_arterial, c.pulso, c.temperatura, c.saturacion_o2,
		       c.peso, c.talla, c.examen_fisico, c.diagnostico,
		       c.medicamentos, c.indicaciones, c.created_at
		FROM consultas c
		WHERE c.id_paciente = $1
		ORDER BY c.fecha DESC, c.hora DESC;
	`,

	// GetConsultasByPacientes - Consultas restringidas a un conjunto de pacientes
	GetConsultasByPacientes: `
		SELECT c.id_consulta, c.id_paciente, p.nombre, p.dni,
		       c.fecha, c.hora::text, c.motivo_consulta, c.diagnostico
		FROM consultas c
		JOIN pacientes p ON p.id_paciente = c.id_paciente
		WHERE c.id_paciente = ANY($1)
		ORDER BY c.fecha DESC, c.hora DESC;
	`,

	// CountByPeriodo - Consultas desde una fecha dada (inclusive)
	CountByPeriodo: `
		SELECT COUNT(*) FROM consultas WHERE fecha >= $1;
	`,

	// CountTotal - Total histórico de consultas
	CountTotal: `
		SELECT COUNT(*) FROM consultas;
	`,

	// ExistePaciente - Verificación previa al registro de consulta
	ExistePaciente: `
		SELECT EXISTS(SELECT 1 FROM pacientes WHERE id_paciente = $1);
	`,
}
