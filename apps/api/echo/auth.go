package echoapi

import (
	"context"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/school"
	"github.com/edumanage/backend/core/session"
)

var (
	// appJWTConfig is the default JWT auth middleware config; initAuth
	// fills in the signing key from config.
	appJWTConfig = middleware.JWTConfig{
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    "userToken",
		Claims:        new(Claims),
	}

	jwtConf *core.Config
)

func initAuth(conf *core.Config) {
	appJWTConfig.SigningKey = []byte(conf.SecretKey)
	jwtConf = conf
}

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

func GetUserClaims(conf *core.Config, usr session.User) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			Issuer:    conf.AppName,
			Subject:   usr.ID,
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Name:  usr.Name,
		Email: usr.Email,
		Role:  string(usr.Role),
	}
}

// authenticate resolves the requested role/email to a stored identity.
// Passwords are accepted but never checked.
func authenticate(ctx context.Context, email string, role session.Role, svc *session.Service) (session.User, error) {
	usr, err := svc.Login(ctx, email, role)
	if err != nil {
		return session.User{}, errors.Wrap(err, "resolving login identity")
	}
	return usr, nil
}

// GenerateToken generates a signed JWT token string representing the user Claims.
func GenerateToken(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(appJWTConfig.SigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString(appJWTConfig.SigningKey.([]byte))
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(appJWTConfig.ContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

// getContextViewer derives the role-scoping viewer from the JWT claims.
func getContextViewer(ctx echo.Context) (school.Viewer, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return school.Viewer{}, err
	}
	return school.Viewer{
		Role:  session.Role(claims.Role),
		Name:  claims.Name,
		Email: claims.Email,
	}, nil
}

// commitLatency is the form-session latency strategy: a real wait in the
// running app, nil (no-op) when the configured latency is zero.
func commitLatency(conf *core.Config) func(context.Context) {
	if conf.CommitLatency <= 0 {
		return nil
	}
	delay := conf.CommitLatency
	return func(ctx context.Context) {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
		}
	}
}
