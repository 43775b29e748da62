package services

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/app/models"
	"github.com/kaanyld/tutorhub/internal/app/models/dto"
	"github.com/kaanyld/tutorhub/internal/app/repositories"
	"github.com/kaanyld/tutorhub/internal/pkg/auth"
)

// AuthService defines the interface for registration and login
type AuthService interface {
	RegisterParent(req dto.RegisterParentRequest) (*dto.AuthResponse, error)
	RegisterTutor(req dto.RegisterTutorRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	accountRepo *repositories.AccountRepository
	jwtService  *auth.JWTService
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	accountRepo *repositories.AccountRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		accountRepo: accountRepo,
		jwtService:  jwtService,
		validate:    newValidator(),
		logger:      logger,
	}
}

// RegisterParent creates a parent account and signs it in
func (s *authServiceImpl) RegisterParent(req dto.RegisterParentRequest) (*dto.AuthResponse, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return nil, err
	}

	account := &models.Account{
		Email:     req.Email,
		Password:  req.Password,
		Role:      models.RoleParent,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	created, err := s.accountRepo.Create(account)
	if err != nil {
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to register parent")
		return nil, err
	}

	s.logger.Info().Str("accountId", created.ID).Msg("Parent account registered")
	return s.issueToken(created)
}

// RegisterTutor creates a tutor account and signs it in
func (s *authServiceImpl) RegisterTutor(req dto.RegisterTutorRequest) (*dto.AuthResponse, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return nil, err
	}

	account := &models.Account{
		Email:      req.Email,
		Password:   req.Password,
		Role:       models.RoleTutor,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Subjects:   req.Subjects,
		HourlyRate: req.HourlyRate,
		Bio:        req.Bio,
	}
	created, err := s.accountRepo.Create(account)
	if err != nil {
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to register tutor")
		return nil, err
	}

	s.logger.Info().Str("accountId", created.ID).Msg("Tutor account registered")
	return s.issueToken(created)
}

// Login verifies credentials and issues a token
func (s *authServiceImpl) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.Authenticate(req.Email, req.Password)
	if err != nil {
		s.logger.Debug().Str("email", req.Email).Msg("Login rejected")
		return nil, err
	}

	return s.issueToken(account)
}

func (s *authServiceImpl) issueToken(account *models.Account) (*dto.AuthResponse, error) {
	accessToken, expiresIn, err := s.jwtService.GenerateToken(account)
	if err != nil {
		s.logger.Error().Err(err).Str("accountId", account.ID).Msg("Failed to issue token")
		return nil, err
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: accessToken,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		Account: dto.ToAccountResponse(account),
	}, nil
}
