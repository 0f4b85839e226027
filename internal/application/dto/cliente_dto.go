package dto

// CrearClienteRequest entrada para crear un cliente.
type CrearClienteRequest struct {
	TipoCliente    string `json:"tipoCliente"`
	Nombre         string `json:"nombre"`
	Identificacion string `json:"identificacion"`
	Correo         string `json:"correo"`
	Telefono       string `json:"telefono"`
	Direccion      string `json:"direccion"`
	Notas          string `json:"notas"`
}

// ActualizarClienteRequest entrada para actualizar un cliente (parcial).
type ActualizarClienteRequest struct {
	TipoCliente    *string `json:"tipoCliente"`
	Nombre         *string `json:"nombre"`
	Identificacion *string `json:"identificacion"`
	Correo         *string `json:"correo"`
	Telefono       *string `json:"telefono"`
	Direccion      *string `json:"direccion"`
	Notas          *string `json:"notas"`
}
