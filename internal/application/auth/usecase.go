package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/warehouse-manager/internal/application/dto"
	"github.com/jhoicas/warehouse-manager/internal/domain"
	"github.com/jhoicas/warehouse-manager/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Operator credenciales configuradas del operador de la bodega.
type Operator struct {
	User         string
	PasswordHash string // bcrypt
}

// AuthUseCase login del operador: verifica bcrypt y emite JWT.
type AuthUseCase struct {
	operator Operator
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(operator Operator, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{operator: operator, jwtCfg: jwtCfg}
}

// Login verifica usuario/password y retorna el token con rol operator.
// Sin hash configurado el login queda deshabilitado (ErrUnauthorized).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.operator.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(in.User), []byte(uc.operator.User)) != 1 {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.operator.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.operator.User, jwt.RoleOperator, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		User:      uc.operator.User,
		Role:      jwt.RoleOperator,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
	}, nil
}

// HashPassword genera el hash bcrypt para OPERATOR_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
