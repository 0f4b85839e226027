// Package auth implementa el login contra la colección de usuarios.
package auth

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoseph/loomtrack-api/internal/application/dto"
	"github.com/jhoseph/loomtrack-api/internal/domain"
	"github.com/jhoseph/loomtrack-api/internal/domain/entity"
	"github.com/jhoseph/loomtrack-api/internal/domain/repository"
	"github.com/jhoseph/loomtrack-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase caso de uso de autenticación.
type UseCase struct {
	store  repository.UsuarioStore
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(store repository.UsuarioStore, jwtCfg JWTConfig) *UseCase {
	return &UseCase{store: store, jwtCfg: jwtCfg}
}

// Login verifica username/password contra el hash bcrypt, rechaza usuarios
// inactivos, genera el JWT y marca el último acceso.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	list, err := uc.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	var usuario *entity.Usuario
	for i := range list {
		if list[i].Username == in.Username {
			usuario = &list[i]
			break
		}
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if usuario.Estado != entity.UsuarioActivo {
		return nil, domain.ErrUsuarioInactivo
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.Username, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	// Último acceso: best effort, no bloquea el login.
	if err := uc.store.Mutate(ctx, func(l []entity.Usuario) ([]entity.Usuario, error) {
		for i := range l {
			if l[i].Username == usuario.Username {
				t := time.Now()
				l[i].UltimoAcceso = &t
			}
		}
		return l, nil
	}); err != nil {
		log.Warn().Err(err).Str("usuario", usuario.Username).Msg("no se pudo registrar el último acceso")
	}

	return &dto.LoginResponse{
		Token: token,
		Usuario: dto.UsuarioResponse{
			ID:             usuario.ID,
			Username:       usuario.Username,
			NombreCompleto: usuario.NombreCompleto,
			Email:          usuario.Email,
			Rol:            usuario.Rol,
			Estado:         usuario.Estado,
			Telefono:       usuario.Telefono,
			Direccion:      usuario.Direccion,
			Notas:          usuario.Notas,
			FechaCreacion:  usuario.FechaCreacion,
			UltimoAcceso:   usuario.UltimoAcceso,
		},
	}, nil
}
