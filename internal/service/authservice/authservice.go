package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/adesinaj/kobovest/internal/domain"
	"github.com/adesinaj/kobovest/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// WalletCreator provisions the user's wallet at registration time.
type WalletCreator interface {
	CreateWallet(ctx context.Context, user *domain.User) (*domain.Wallet, error)
}

type Service struct {
	userRepo      Repo
	walletService WalletCreator
	hashService   auth.HashServiceInterface
	jwtService    auth.JWTServiceInterface
}

func New(repo Repo, walletService WalletCreator, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:      repo,
		walletService: walletService,
		hashService:   hashService,
		jwtService:    jwtService,
	}
}

func (s *Service) Register(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, email: ", zap.String("email", email))
		return nil, errors.New("email already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	_, err = s.walletService.CreateWallet(ctx, newUser)
	if err != nil {
		zap.L().Error("can't create wallet: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}

	// First-login safety net: a user whose wallet provisioning failed at
	// registration gets one here.
	if _, err := s.walletService.CreateWallet(ctx, user); err != nil {
		zap.L().Error("can't ensure wallet: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
