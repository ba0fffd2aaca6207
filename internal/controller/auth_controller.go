package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lhgiang/eduquest/internal/dto"
	"github.com/lhgiang/eduquest/internal/repository"
	"github.com/lhgiang/eduquest/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Create a new account
// @Description Registers a username/password pair. The password is stored only as a bcrypt hash.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.RegisterRequest true "Username and password"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ErrorResponse "Missing username or password"
// @Failure 409 {object} dto.ErrorResponse "Username already taken"
// @Failure 500 {object} dto.ErrorResponse
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing username or password"})
		return
	}

	if err := c.authService.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Username already taken"})
			return
		}
		log.Error().Err(err).Str("username", req.Username).Msg("Register: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create account"})
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterResponse{Success: true, Message: "Account created!"})
}

// Login godoc
// @Summary Authenticate a user
// @Description Verifies credentials. Unknown usernames and wrong passwords produce the same response.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Username and password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Missing username or password"
// @Failure 401 {object} dto.ErrorResponse "Invalid username or password"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing username or password"})
		return
	}

	username, err := c.authService.Login(req.Username, req.Password)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid username or password"})
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{Success: true, Username: username})
}
