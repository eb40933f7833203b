package provider

import (
	"context"
	"fmt"
	"time"

	providerRepo "hoofline/database/repository/provider"
	"hoofline/models"
	"hoofline/services/notification"
	"hoofline/utils"

	"golang.org/x/crypto/bcrypt"
)

const authTokenTTL = 72 * time.Hour

// ProviderService manages provider accounts and authentication.
type ProviderService interface {
	Register(ctx context.Context, reg models.ProviderRegistration) (*models.Provider, string, error)
	SignIn(ctx context.Context, creds models.Credentials) (*models.Provider, string, error)
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	SetFCMToken(ctx context.Context, id, token string) error
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}

func (s *DefaultProviderService) Register(ctx context.Context, reg models.ProviderRegistration) (*models.Provider, string, error) {
	switch reg.ServiceType {
	case models.ServiceFarrier, models.ServiceVet, models.ServiceMassage:
	default:
		return nil, "", fmt.Errorf("unknown service type %q", reg.ServiceType)
	}

	existing, err := s.Repo.GetByEmail(ctx, reg.Email)
	if err != nil {
		return nil, "", fmt.Errorf("check existing provider: %w", err)
	}
	if existing != nil {
		return nil, "", fmt.Errorf("email %s already registered", reg.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	var base *models.Location
	if reg.Latitude != nil && reg.Longitude != nil {
		loc, err := models.NewLocation(*reg.Latitude, *reg.Longitude)
		if err != nil {
			return nil, "", err
		}
		base = &loc
	}

	duration := reg.ServiceDurationMin
	if duration <= 0 {
		duration = models.DefaultServiceDurationMin
	}

	p := models.Provider{
		Name:               reg.Name,
		Email:              reg.Email,
		PhoneNumber:        reg.PhoneNumber,
		ServiceType:        reg.ServiceType,
		Mobile:             reg.Mobile,
		BaseLocation:       base,
		ServiceDurationMin: duration,
		PasswordHash:       string(hash),
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, "", fmt.Errorf("create provider: %w", err)
	}

	created, err := s.Repo.GetByEmail(ctx, reg.Email)
	if err != nil || created == nil {
		return nil, "", fmt.Errorf("load created provider: %w", err)
	}
	token, err := s.issueToken(ctx, created)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

func (s *DefaultProviderService) SignIn(ctx context.Context, creds models.Credentials) (*models.Provider, string, error) {
	p, err := s.Repo.GetByEmail(ctx, creds.Email)
	if err != nil {
		return nil, "", fmt.Errorf("fetch provider: %w", err)
	}
	if p == nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}
	token, err := s.issueToken(ctx, p)
	if err != nil {
		return nil, "", err
	}
	return p, token, nil
}

func (s *DefaultProviderService) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultProviderService) SetFCMToken(ctx context.Context, id, token string) error {
	if err := s.Repo.SetFCMToken(ctx, id, token); err != nil {
		return err
	}
	utils.GetCacheClient().Del(ctx, notification.FCMTokenCacheKey("provider", id))
	return nil
}

func (s *DefaultProviderService) issueToken(ctx context.Context, p *models.Provider) (string, error) {
	token, err := utils.GenerateToken(p.ID, p.Email, authTokenTTL)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	if err := s.Repo.SetTokenHash(ctx, p.ID, utils.HashToken(token)); err != nil {
		return "", fmt.Errorf("store token hash: %w", err)
	}
	return token, nil
}
