package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Repuestos-api/internal/application/auth"
	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Repuestos-api/pkg/jwt"
)

// fakeUsuarioRepo repositorio de usuarios en memoria.
type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario // por ID
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[string]*entity.Usuario)}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	cp := *u
	r.usuarios[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsuarioRepo) FindByUsername(username string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error {
	cp := *u
	r.usuarios[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range r.usuarios {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func nuevoAuthUC(repo *fakeUsuarioRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "repuestos-api-test",
	})
}

// Caso 1: registro sin rol explícito queda como TECNICO, con el password hasheado.
func TestRegisterUser_RolPorDefectoTecnico(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := nuevoAuthUC(repo)

	user, err := uc.RegisterUser(dto.RegisterRequest{Username: "jgomez", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RolTecnico, user.Rol, "sin rol explícito debe quedar TECNICO")
	assert.True(t, user.Activo)

	guardado, _ := repo.FindByUsername("jgomez")
	require.NotNil(t, guardado)
	assert.NotEqual(t, "secreta123", guardado.PasswordHash, "el password nunca se guarda en claro")
}

// Caso 2: username duplicado y rol inválido se rechazan.
func TestRegisterUser_Invalidos(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := nuevoAuthUC(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "jgomez", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Username: "jgomez", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "username duplicado")

	_, err = uc.RegisterUser(dto.RegisterRequest{Username: "otro", Password: "x", Rol: "GERENTE"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol fuera del conjunto")

	_, err = uc.RegisterUser(dto.RegisterRequest{Username: "   ", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "username en blanco")
}

// Caso 3: login correcto devuelve un token cuyo claim de rol coincide con el usuario.
func TestLogin_TokenIncluyeRol(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := nuevoAuthUC(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Username: "mrios", Password: "secreta123", Rol: entity.RolEncargadoBodega,
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Username: "mrios", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RolEncargadoBodega, resp.User.Rol)

	userID, rol, err := pkgjwt.Parse("secret-de-test", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, entity.RolEncargadoBodega, rol)
}

// Caso 4: password incorrecto, usuario inexistente y usuario inactivo.
func TestLogin_Rechazos(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := nuevoAuthUC(repo)

	user, err := uc.RegisterUser(dto.RegisterRequest{Username: "mrios", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "mrios", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "password incorrecto")

	_, err = uc.Login(dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound, "usuario inexistente")

	guardado := repo.usuarios[user.ID]
	guardado.Activo = false
	_, err = uc.Login(dto.LoginRequest{Username: "mrios", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "usuario inactivo no inicia sesión")
}
