package entity

import "time"

// Tipos de cliente.
const (
	ClienteNatural  = "Natural"
	ClienteJuridica = "Jurídica"
)

// Cliente representa un cliente del taller (persona natural o jurídica).
type Cliente struct {
	ID             int64     `json:"id"`
	TipoCliente    string    `json:"tipoCliente"`
	Nombre         string    `json:"nombre"`
	Identificacion string    `json:"identificacion"`
	Correo         string    `json:"correo"`
	Telefono       string    `json:"telefono"`
	Direccion      string    `json:"direccion"`
	Notas          string    `json:"notas"`
	FechaRegistro  time.Time `json:"fecha_registro"`
}
