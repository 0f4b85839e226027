// Package usuarios implementa la gestión de usuarios del sistema.
package usuarios

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoseph/loomtrack-api/internal/application/dto"
	"github.com/jhoseph/loomtrack-api/internal/domain"
	"github.com/jhoseph/loomtrack-api/internal/domain/entity"
	"github.com/jhoseph/loomtrack-api/internal/domain/repository"
	"github.com/jhoseph/loomtrack-api/pkg/texto"
)

// UseCase casos de uso CRUD para usuarios.
type UseCase struct {
	store repository.UsuarioStore
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.UsuarioStore) *UseCase {
	return &UseCase{store: store}
}

// Listar devuelve los usuarios cuyo username, nombre o email contiene q.
// El hash de password nunca sale del caso de uso.
func (uc *UseCase) Listar(ctx context.Context, q string) ([]dto.UsuarioResponse, error) {
	list, err := uc.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		if texto.Contiene(u.Username, q) || texto.Contiene(u.NombreCompleto, q) || texto.Contiene(u.Email, q) {
			items = append(items, *aResponse(&u))
		}
	}
	return items, nil
}

// Obtener devuelve el usuario por ID.
func (uc *UseCase) Obtener(ctx context.Context, id int64) (*dto.UsuarioResponse, error) {
	list, err := uc.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return aResponse(&list[i]), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Crear crea un usuario: hashea el password con bcrypt y persiste.
// Username duplicado se rechaza.
func (uc *UseCase) Crear(ctx context.Context, in dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	var creado *dto.UsuarioResponse
	err = uc.store.Mutate(ctx, func(list []entity.Usuario) ([]entity.Usuario, error) {
		for _, u := range list {
			if u.Username == in.Username {
				return nil, domain.ErrDuplicate
			}
		}
		rol := in.Rol
		if rol == "" {
			rol = entity.RolSecretaria
		}
		estado := in.Estado
		if estado == "" {
			estado = entity.UsuarioActivo
		}
		u := entity.Usuario{
			ID:             proximoID(list),
			Username:       in.Username,
			NombreCompleto: in.NombreCompleto,
			Email:          in.Email,
			Rol:            rol,
			Estado:         estado,
			Telefono:       in.Telefono,
			Direccion:      in.Direccion,
			Notas:          in.Notas,
			PasswordHash:   string(hash),
			FechaCreacion:  time.Now(),
		}
		creado = aResponse(&u)
		return append(list, u), nil
	})
	if err != nil {
		return nil, err
	}
	return creado, nil
}

// Actualizar sobreescribe los campos presentes; Password presente se rehashea.
func (uc *UseCase) Actualizar(ctx context.Context, id int64, in dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	var nuevoHash string
	if in.Password != nil {
		h, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		nuevoHash = string(h)
	}
	var actualizado *dto.UsuarioResponse
	err := uc.store.Mutate(ctx, func(list []entity.Usuario) ([]entity.Usuario, error) {
		idx := indicePorID(list, id)
		if idx < 0 {
			return nil, domain.ErrUserNotFound
		}
		u := &list[idx]
		if in.NombreCompleto != nil {
			u.NombreCompleto = *in.NombreCompleto
		}
		if in.Email != nil {
			u.Email = *in.Email
		}
		if in.Rol != nil {
			u.Rol = *in.Rol
		}
		if in.Estado != nil {
			u.Estado = *in.Estado
		}
		if in.Telefono != nil {
			u.Telefono = *in.Telefono
		}
		if in.Direccion != nil {
			u.Direccion = *in.Direccion
		}
		if in.Notas != nil {
			u.Notas = *in.Notas
		}
		if nuevoHash != "" {
			u.PasswordHash = nuevoHash
		}
		actualizado = aResponse(u)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return actualizado, nil
}

// Eliminar borra el usuario de la colección.
func (uc *UseCase) Eliminar(ctx context.Context, id int64) error {
	return uc.store.Mutate(ctx, func(list []entity.Usuario) ([]entity.Usuario, error) {
		idx := indicePorID(list, id)
		if idx < 0 {
			return nil, domain.ErrUserNotFound
		}
		return append(list[:idx], list[idx+1:]...), nil
	})
}

func aResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:             u.ID,
		Username:       u.Username,
		NombreCompleto: u.NombreCompleto,
		Email:          u.Email,
		Rol:            u.Rol,
		Estado:         u.Estado,
		Telefono:       u.Telefono,
		Direccion:      u.Direccion,
		Notas:          u.Notas,
		FechaCreacion:  u.FechaCreacion,
		UltimoAcceso:   u.UltimoAcceso,
	}
}

func proximoID(list []entity.Usuario) int64 {
	var max int64
	for _, u := range list {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

func indicePorID(list []entity.Usuario, id int64) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
