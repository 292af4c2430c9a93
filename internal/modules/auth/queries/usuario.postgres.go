package queries

// UsuarioQueries contiene todas las consultas SQL de usuarios y sesiones
var UsuarioQueries = struct {
	GetUsuarioByEmail    string
	GetUsuarioByID       string
	CreateSession        string
	GetSessionByToken    string
	DeleteSession        string
	UpdateLastActivity   string
	CleanExpiredSessions string
}{
	// GetUsuarioByEmail - Búsqueda del usuario para login
	GetUsuarioByEmail: `
		SELECT u.id_usuario, u.email, u.nombre, u.password_hash
		FROM usuarios u
		WHERE LOWER(u.email) = LOWER($1);
	`,

	// GetUsuarioByID - Datos públicos del usuario autenticado
	GetUsuarioByID: `
		SELECT u.id_usuario, u.email, u.nombre
		FROM usuarios u
		WHERE u.id_usuario = $1;
	`,

	// CreateSession - Fallback PostgreSQL de la sesión Redis
	CreateSession: `
		INSERT INTO sesion_usuario (token, id_usuario, ip_address, user_agent, created_at, last_activity, expires_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW(), $5)
		ON CONFLICT (token) DO NOTHING;
	`,

	// GetSessionByToken - Recuperación de sesión desde PostgreSQL
	GetSessionByToken: `
		SELECT s.id_usuario, u.email, u.nombre, s.ip_address, s.user_agent,
		       s.created_at, s.last_activity, s.expires_at
		FROM sesion_usuario s
		JOIN usuarios u ON u.id_usuario = s.id_usuario
		WHERE s.token = $1
		  AND s.expires_at > NOW();
	`,

	// DeleteSession - Eliminación idempotente
	DeleteSession: `
		DELETE FROM sesion_usuario WHERE token = $1;
	`,

	// UpdateLastActivity - Actualización de última actividad
	UpdateLastActivity: `
		UPDATE sesion_usuario
		SET last_activity = NOW()
		WHERE token = $1;
	`,

	// CleanExpiredSessions - Limpieza de sesiones expiradas
	CleanExpiredSessions: `
		DELETE FROM sesion_usuario WHERE expires_at <= NOW();
	`,
}
