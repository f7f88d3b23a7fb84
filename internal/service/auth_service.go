package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"ai-chatapp-be/internal/config"
	"ai-chatapp-be/internal/dto"
	"ai-chatapp-be/internal/entity"
	"ai-chatapp-be/internal/pkg/mailer"
	"ai-chatapp-be/internal/pkg/serverutils"
	"ai-chatapp-be/internal/repository/specification"
	"ai-chatapp-be/internal/repository/unitofwork"

	"ai-chatapp-be/pkg/events"
	pktNats "ai-chatapp-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserDTO, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	authConfig     config.AuthConfig
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, authConfig config.AuthConfig, emailService mailer.IEmailService, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		authConfig:     authConfig,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func hashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func (s *authService) signAccessToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    user.Role,
		"exp":     time.Now().Add(time.Duration(s.authConfig.AccessTokenTTLMin) * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.authConfig.JWTSecret))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, serverutils.ErrInvalidInput("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: &hashStr,
		Role:         entity.UserRoleUser,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.NewUserRegistered(user.Id.String(), user.Email, user.Name)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish user_registered event: %v\n", err)
		}
	}

	// Mail delivery must not hold the registration response.
	go func() {
		if emailErr := s.emailService.SendWelcome(user.Email, user.Name); emailErr != nil {
			fmt.Printf("Error sending welcome email: %v\n", emailErr)
		}
	}()

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email, Name: user.Name}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		return nil, &serverutils.ApiError{Status: fiber.StatusUnauthorized, Message: "Invalid credentials"}
	}

	// OAuth-only accounts have no password to compare.
	if user.PasswordHash == nil {
		return nil, &serverutils.ApiError{Status: fiber.StatusUnauthorized, Message: "Invalid credentials"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, &serverutils.ApiError{Status: fiber.StatusUnauthorized, Message: "Invalid credentials"}
	}

	signedToken, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	rawRefreshToken := uuid.New().String()
	refreshTokenEntity := &entity.UserRefreshToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		TokenHash: hashRefreshToken(rawRefreshToken),
		ExpiresAt: time.Now().Add(time.Duration(s.authConfig.RefreshTokenTTLDay) * 24 * time.Hour),
		Revoked:   false,
		CreatedAt: time.Now(),
		IpAddress: ipAddress,
		UserAgent: userAgent,
	}

	if err := uow.UserRepository().CreateRefreshToken(ctx, refreshTokenEntity); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken:  signedToken,
		RefreshToken: rawRefreshToken,
		User: dto.UserDTO{
			Id:        user.Id,
			Email:     user.Email,
			Name:      user.Name,
			Role:      string(user.Role),
			AvatarURL: user.AvatarURL,
		},
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	if refreshToken == "" {
		return nil, serverutils.ErrUnauthenticated()
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tokenRow, err := uow.UserRepository().FindRefreshToken(ctx, specification.ByTokenHash{Hash: hashRefreshToken(refreshToken)})
	if err != nil || tokenRow == nil {
		return nil, serverutils.ErrUnauthenticated()
	}
	if tokenRow.Revoked || time.Now().After(tokenRow.ExpiresAt) {
		return nil, serverutils.ErrUnauthenticated()
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: tokenRow.UserId})
	if err != nil || user == nil {
		return nil, serverutils.ErrUnauthenticated()
	}

	signedToken, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{AccessToken: signedToken}, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tokenRow, err := uow.UserRepository().FindRefreshToken(ctx, specification.ByTokenHash{Hash: hashRefreshToken(refreshToken)})
	if err != nil || tokenRow == nil {
		return nil
	}

	return uow.UserRepository().RevokeRefreshToken(ctx, tokenRow.Id)
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.ErrUnauthenticated()
	}

	return &dto.UserDTO{
		Id:        user.Id,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		AvatarURL: user.AvatarURL,
	}, nil
}
