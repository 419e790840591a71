package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// UserHandler serves endpoints about the authenticated caller.
type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me returns the caller's own projection.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.PublicUser
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := CurrentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user.Public())
}
