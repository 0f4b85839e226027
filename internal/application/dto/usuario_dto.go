package dto

import "time"

// CrearUsuarioRequest entrada para crear un usuario (solo admin).
type CrearUsuarioRequest struct {
	Username       string `json:"username"`
	NombreCompleto string `json:"nombre_completo"`
	Email          string `json:"email"`
	Rol            string `json:"rol"`
	Estado         string `json:"estado"`
	Telefono       string `json:"telefono"`
	Direccion      string `json:"direccion"`
	Notas          string `json:"notas"`
	Password       string `json:"password"`
}

// ActualizarUsuarioRequest entrada para actualizar un usuario; Password
// presente = rehash.
type ActualizarUsuarioRequest struct {
	NombreCompleto *string `json:"nombre_completo"`
	Email          *string `json:"email"`
	Rol            *string `json:"rol"`
	Estado         *string `json:"estado"`
	Telefono       *string `json:"telefono"`
	Direccion      *string `json:"direccion"`
	Notas          *string `json:"notas"`
	Password       *string `json:"password"`
}

// UsuarioResponse salida de un usuario (nunca incluye el hash de password).
type UsuarioResponse struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	NombreCompleto string     `json:"nombre_completo"`
	Email          string     `json:"email"`
	Rol            string     `json:"rol"`
	Estado         string     `json:"estado"`
	Telefono       string     `json:"telefono"`
	Direccion      string     `json:"direccion"`
	Notas          string     `json:"notas"`
	FechaCreacion  time.Time  `json:"fecha_creacion"`
	UltimoAcceso   *time.Time `json:"ultimo_acceso"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token emitido + usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
