package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")

// TokenInfo describes the operator a token is issued for. Expiration is in hours.
type TokenInfo struct {
	UserName   string
	Subject    string
	Expiration time.Duration
}

type JWTService struct {
	secret []byte
	issuer string
}

func NewJWTService(jwtSecret []byte, issuer string) *JWTService {
	return &JWTService{
		secret: jwtSecret,
		issuer: issuer,
	}
}

func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	issued := TimeNow()
	claims := jwt.MapClaims{
		"sub":      data.Subject,
		"iss":      gen.issuer,
		"iat":      issued.Unix(),
		"exp":      issued.Add(data.Expiration * time.Hour).Unix(),
		"username": data.UserName,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	tokenStr, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

// Validate checks the signature, issuer and expiry of token and returns its claims.
func (gen *JWTService) Validate(token string) (jwt.MapClaims, error) {
	parser := jwt.Parser{SkipClaimsValidation: true}
	jwtToken, err := parser.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return nil, ErrTokenNotValid
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("jwt claims type assertion failed")
	}

	if !claims.VerifyIssuer(gen.issuer, true) {
		return nil, fmt.Errorf("unexpected issuer %v: %w", claims["iss"], ErrTokenNotValid)
	}

	expVal, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("missing exp claim: %w", ErrTokenNotValid)
	}
	if int64(expVal) < TimeNow().Unix() {
		return nil, fmt.Errorf("token expired at %v: %w", time.Unix(int64(expVal), 0).UTC(), ErrTokenExpired)
	}

	return claims, nil
}
