package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	userDTO "github.com/johnquangdev/reunicheck/internal/adapter/dto/user"
	"github.com/johnquangdev/reunicheck/internal/adapter/presenter"
	userUsecase "github.com/johnquangdev/reunicheck/internal/usecase/user"
)

// User handles participant directory requests
type User struct {
	userService userUsecase.Service
	logger      *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService userUsecase.Service, logger *zap.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

// CreateUser handles POST /users
// @Summary      Register a participant
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request  body      user.CreateUserRequest  true  "Participant"
// @Success      201      {object}  user.CreateUserResponse
// @Failure      400      {object}  common.ErrorResponse
// @Failure      409      {object}  common.ErrorResponse  "Email already registered"
// @Router       /users [post]
func (h *User) CreateUser(c echo.Context) error {
	var req userDTO.CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	u, err := h.userService.CreateUser(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, refs{email: req.Email}))
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, &userDTO.CreateUserResponse{
		User: presenter.ToUserResponse(u),
	})
}

// ListUsers handles GET /users
// @Summary      List participants
// @Tags         Users
// @Produce      json
// @Success      200  {object}  user.ListUsersResponse
// @Failure      500  {object}  common.ErrorResponse
// @Router       /users [get]
func (h *User) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, refs{}))
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToUserListResponse(users))
}
