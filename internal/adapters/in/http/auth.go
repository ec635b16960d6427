package http

import (
	"crypto/subtle"

	"bakery/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"
)

const callerKey = "caller"

// Credentials of the staff account. PasswordHash is a bcrypt hash.
type Credentials struct {
	Username     string
	PasswordHash []byte
}

// basicAuth authenticates staff with HTTP basic auth. Requests without an Authorization
// header go through anonymously; the use cases decide whether that is enough.
func basicAuth(credentials Credentials) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().Header.Get(echo.HeaderAuthorization) == ""
		},
		Validator: func(username, password string, c echo.Context) (bool, error) {
			if credentials.Username == "" || len(credentials.PasswordHash) == 0 {
				return false, nil
			}
			if subtle.ConstantTimeCompare([]byte(username), []byte(credentials.Username)) != 1 {
				return false, nil
			}
			if err := bcrypt.CompareHashAndPassword(credentials.PasswordHash, []byte(password)); err != nil {
				return false, nil
			}

			c.Set(callerKey, user.NewAdmin(username))
			return true, nil
		},
		Realm: "bakery",
	})
}

// callerFrom returns the authenticated user, or nil for an anonymous request.
func callerFrom(ctx echo.Context) *user.User {
	caller, _ := ctx.Get(callerKey).(*user.User)
	return caller
}
