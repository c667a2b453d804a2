package usecase

import (
	"courtside/internal/domain/user"
	"courtside/internal/pkg/errs"
	"courtside/internal/pkg/jwt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

var ErrTokenRejected = errs.Mark(errs.New("invalid or expired token"), errs.ErrAuthRejected)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

// TokenIssuer mints bearer tokens for operators; identity itself lives outside this service.
type TokenIssuer interface {
	IssueToken(userID uuid.UUID, role user.Role) (string, error)
}

type tokenServiceImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenServiceImpl{
		jwtService: jwtService,
	}
}

func NewTokenIssuer(jwtService *jwt.Service) TokenIssuer {
	return &tokenServiceImpl{
		jwtService: jwtService,
	}
}

func (t *tokenServiceImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.Parse(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenRejected)
	}
	if !claims.Role.IsValid() {
		return uuid.Nil, "", errs.Mark(user.ErrInvalidRole, ErrTokenRejected)
	}

	return claims.UserID, claims.Role, nil
}

func (t *tokenServiceImpl) IssueToken(userID uuid.UUID, role user.Role) (string, error) {
	if !role.IsValid() {
		return "", errs.Mark(user.ErrInvalidRole, errs.ErrValidation)
	}
	return t.jwtService.Sign(userID, role)
}
