package service

import (
	"errors"

	"github.com/lhgiang/eduquest/internal/model"
	"github.com/lhgiang/eduquest/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password so login failures carry no signal about account existence.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService interface {
	Register(username, password string) error
	Login(username, password string) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Register: failed to hash password")
		return err
	}

	user := model.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	return s.userRepo.Create(&user)
}

func (s *authService) Login(username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return user.Username, nil
}
