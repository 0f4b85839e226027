package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin      = "admin"
	RolSecretaria = "secretaria"
)

// Estados de un usuario.
const (
	UsuarioActivo   = "Activo"
	UsuarioInactivo = "Inactivo"
)

// Usuario representa un usuario del sistema.
// PasswordHash es bcrypt; se persiste en el blob pero nunca se expone en
// respuestas HTTP (las respuestas pasan por dto.UsuarioResponse).
type Usuario struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"` // único
	NombreCompleto string     `json:"nombre_completo"`
	Email          string     `json:"email"`
	Rol            string     `json:"rol"` // admin, secretaria
	Estado         string     `json:"estado"`
	Telefono       string     `json:"telefono"`
	Direccion      string     `json:"direccion"`
	Notas          string     `json:"notas"`
	PasswordHash   string     `json:"password_hash"`
	FechaCreacion  time.Time  `json:"fecha_creacion"`
	UltimoAcceso   *time.Time `json:"ultimo_acceso"`
}
