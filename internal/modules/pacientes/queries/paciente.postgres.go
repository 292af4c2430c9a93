package queries

// Columnas del paciente en el orden de scan de los servicios
const pacienteColumns = `
		p.id_paciente, p.nombre, p.dni, p.fecha_nacimiento, p.edad, p.sexo,
		p.raza, p.telefono, p.estado_civil, p.lugar_nacimiento, p.grado_instruccion,
		p.domicilio_actual, p.lugar_procedencia, p.tiempo_procedencia, p.tipo_seguro,
		p.persona_responsable, p.dni_responsable, p.celular_responsable,
		p.direccion_responsable, p.estado, p.created_at`

// PacienteQueries contiene todas las consultas SQL de pacientes
var PacienteQueries = struct {
	ListPacientes          string
	SearchPacientes        string
	GetPacienteByID        string
	GetPacientesByIDs      string
	CountPacientes         string
	InsertPaciente         string
	InsertAntecedente      string
	GetAntecedentePaciente string
}{
	// ListPacientes - Listado completo ordenado por registro reciente
	ListPacientes: `
		SELECT` + pacienteColumns + `
		FROM pacientes p
		ORDER BY p.created_at DESC;
	`,

	// SearchPacientes - Búsqueda por substring en nombre o DNI (case-insensitive)
	SearchPacientes: `
		SELECT` + pacienteColumns + `
		FROM pacientes p
		WHERE p.nombre ILIKE '%' || $1 || '%'
		   OR p.dni ILIKE '%' || $1 || '%'
		ORDER BY p.created_at DESC;
	`,

	// GetPacienteByID - Detalle de un paciente
	GetPacienteByID: `
		SELECT` + pacienteColumns + `
		FROM pacientes p
		WHERE p.id_paciente = $1;
	`,

	// GetPacientesByIDs - Pacientes por conjunto de ids
	GetPacientesByIDs: `
		SELECT` + pacienteColumns + `
		FROM pacientes p
		WHERE p.id_paciente = ANY($1)
		ORDER BY p.created_at DESC;
	`,

	// CountPacientes - Total de pacientes registrados
	CountPacientes: `
		SELECT COUNT(*) FROM pacientes;
	`,

	// InsertPaciente - Alta de paciente (primera mitad de la transacción de registro)
	InsertPaciente: `
		INSERT INTO pacientes (
			nombre, dni, fecha_nacimiento, edad, sexo,
			raza, telefono, estado_civil, lugar_nacimiento, grado_instruccion,
			domicilio_actual, lugar_procedencia, tiempo_procedencia, tipo_seguro,
			persona_responsable, dni_responsable, celular_responsable,
			direccion_responsable, estado, created_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, $13, $14,
			$15, $16, $17,
			$18, 'Inactivo', NOW()
		)
		RETURNING id_paciente;
	`,

	// InsertAntecedente - Alta de antecedentes (segunda mitad de la transacción)
	InsertAntecedente: `
		INSERT INTO antecedentes (
			id_paciente, ocupacion, religion, tabaquismo, alcoholismo, drogas,
			alimentacion, actividad_fisica, inmunizaciones, diagnostico_previo,
			enfermedades_infancia, cirugias_previas, alergias, medicamentos_actuales,
			menarca, ritmo_menstrual, uso_anticonceptivos, numero_embarazos
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13, $14,
			$15, $16, $17, $18
		)
		RETURNING id_antecedente;
	`,

	// GetAntecedentePaciente - Antecedentes de un paciente
	GetAntecedentePaciente: `
		SELECT a.id_antecedente, a.id_paciente, a.ocupacion, a.religion, a.tabaquismo,
		       a.alcoholismo, a.drogas, a.alimentacion, a.actividad_fisica,
		       a.inmunizaciones, a.diagnostico_previo, a.enfermedades_infancia,
		       a.cirugias_previas, a.alergias, a.medicamentos_actuales,
		       a.menarca, a.ritmo_menstrual, a.uso_anticonceptivos, a.numero_embarazos
		FROM antecedentes a
		WHERE a.id_paciente = $1;
	`,
}
