package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos que emite el backend.
// Se añade Role para poder restaurar el rol localmente sin consultar al servidor.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"` // "ADMIN" | "CLIENTE"
}

// Generate genera un token JWT firmado con HS256. El cliente no firma tokens en
// producción (los emite el backend); esto existe para fixtures y tests.
func Generate(secret, userID, email, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// DecodeUnverified extrae los claims del token SIN validar la firma.
// El cliente es optimista: nunca valida el token contra el servidor; la
// autorización real se aplica de nuevo en el backend. Esto solo sirve para
// recuperar rol/email de un token persistido cuyo registro de sesión quedó
// incompleto.
func DecodeUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("token ilegible: %w", err)
	}
	return claims, nil
}
