// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const TokenTTL = time.Hour // expiração absoluta; não há refresh

// Erros distinguidos para diagnóstico — na borda HTTP todos viram 401.
var (
	ErrTokenExpired      = errors.New("token expirado")
	ErrTokenMalformed    = errors.New("token malformado")
	ErrTokenBadSignature = errors.New("assinatura do token inválida")
)

// TokenClaims é o que um token verificado carrega.
type TokenClaims struct {
	Username string
	Role     string
	AlunoID  *uuid.UUID // presente só para responsável
}

// IssueToken emite um JWT HS256 com expiração de 1h. Função pura de
// (secret, role, aluno) — nada é persistido.
func IssueToken(secret, username, role string, alunoID *uuid.UUID) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  username,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(TokenTTL).Unix(),
	}
	if alunoID != nil {
		claims["aluno_id"] = alunoID.String()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyToken valida assinatura e expiração e extrai os claims.
// Função pura de (token, secret, relógio).
func VerifyToken(secret, raw string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenBadSignature
		}
		return []byte(secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenBadSignature
		default:
			return nil, ErrTokenMalformed
		}
	}

	out := &TokenClaims{}
	out.Username, _ = claims["sub"].(string)
	out.Role, _ = claims["role"].(string)
	if out.Role == "" {
		return nil, ErrTokenMalformed
	}
	if rawID, ok := claims["aluno_id"].(string); ok && rawID != "" {
		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, ErrTokenMalformed
		}
		out.AlunoID = &id
	}
	return out, nil
}
