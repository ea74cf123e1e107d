package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/failure"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/repository"
	tokenIssuer "github.com/Bezhaltur/Auto-DCA-bot/pkg/jwt"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrInvalidUsername error = errors.New("username must not be empty")

const tokenLifetimeHours = 24

// Authenticator issues and checks the tokens operators use to reach the API.
type Authenticator struct {
	logs      *zap.SugaredLogger
	users     UserStore
	jwtIssuer JWTIssuer
}

func NewAuthenticator(logger *zap.SugaredLogger, users UserStore, jwt JWTIssuer) *Authenticator {
	return &Authenticator{
		logs:      logger,
		users:     users,
		jwtIssuer: jwt,
	}
}

// Authenticate checks the credentials and returns a signed token for the user.
func (a *Authenticator) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := a.users.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: tokenLifetimeHours,
	}
	token := a.jwtIssuer.Generate(tokenInfo)
	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	a.logs.Infow("user authenticated", "owner", user.ID)
	return signed, nil
}

// Owner validates token and returns the user id it was issued for.
func (a *Authenticator) Owner(token string) (string, error) {
	claims, err := a.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w", err)
	}

	owner, ok := claims["sub"].(string)
	if !ok || owner == "" {
		return "", tokenIssuer.ErrTokenNotValid
	}
	return owner, nil
}

// AddUser creates an operator account. chatID may be nil when the user has
// no Telegram chat yet.
func (a *Authenticator) AddUser(ctx context.Context, username, password string, chatID *int64) (repository.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return repository.User{}, failure.Validation(ErrInvalidUsername)
	}
	if password == "" {
		return repository.User{}, failure.Validationf("password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return repository.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		ID:             uuid.NewString(),
		Username:       username,
		PasswordHash:   string(hash),
		TelegramChatID: chatID,
	}
	if err := a.users.CreateUser(ctx, &user); err != nil {
		return repository.User{}, err
	}

	a.logs.Infow("user created", "owner", user.ID, "username", user.Username)
	return user, nil
}
