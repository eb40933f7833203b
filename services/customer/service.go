package customer

import (
	"context"
	"fmt"
	"time"

	customerRepo "hoofline/database/repository/customer"
	"hoofline/models"
	"hoofline/services/notification"
	"hoofline/utils"

	"golang.org/x/crypto/bcrypt"
)

const authTokenTTL = 72 * time.Hour

// CustomerService manages customer accounts and authentication.
type CustomerService interface {
	Register(ctx context.Context, reg models.CustomerRegistration) (*models.Customer, string, error)
	SignIn(ctx context.Context, creds models.Credentials) (*models.Customer, string, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	SetFCMToken(ctx context.Context, id, token string) error
}

// DefaultCustomerService is the production implementation.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}

func (s *DefaultCustomerService) Register(ctx context.Context, reg models.CustomerRegistration) (*models.Customer, string, error) {
	existing, err := s.Repo.GetByEmail(ctx, reg.Email)
	if err != nil {
		return nil, "", fmt.Errorf("check existing customer: %w", err)
	}
	if existing != nil {
		return nil, "", fmt.Errorf("email %s already registered", reg.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	var yard *models.Location
	if reg.Latitude != nil && reg.Longitude != nil {
		loc, err := models.NewLocation(*reg.Latitude, *reg.Longitude)
		if err != nil {
			return nil, "", err
		}
		yard = &loc
	}

	c := models.Customer{
		Name:         reg.Name,
		Email:        reg.Email,
		PhoneNumber:  reg.PhoneNumber,
		YardLocation: yard,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, "", fmt.Errorf("create customer: %w", err)
	}

	created, err := s.Repo.GetByEmail(ctx, reg.Email)
	if err != nil || created == nil {
		return nil, "", fmt.Errorf("load created customer: %w", err)
	}
	token, err := s.issueToken(ctx, created)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

func (s *DefaultCustomerService) SignIn(ctx context.Context, creds models.Credentials) (*models.Customer, string, error) {
	c, err := s.Repo.GetByEmail(ctx, creds.Email)
	if err != nil {
		return nil, "", fmt.Errorf("fetch customer: %w", err)
	}
	if c == nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}
	token, err := s.issueToken(ctx, c)
	if err != nil {
		return nil, "", err
	}
	return c, token, nil
}

func (s *DefaultCustomerService) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCustomerService) SetFCMToken(ctx context.Context, id, token string) error {
	if err := s.Repo.SetFCMToken(ctx, id, token); err != nil {
		return err
	}
	utils.GetCacheClient().Del(ctx, notification.FCMTokenCacheKey("customer", id))
	return nil
}

func (s *DefaultCustomerService) issueToken(ctx context.Context, c *models.Customer) (string, error) {
	token, err := utils.GenerateToken(c.ID, c.Email, authTokenTTL)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	if err := s.Repo.SetTokenHash(ctx, c.ID, utils.HashToken(token)); err != nil {
		return "", fmt.Errorf("store token hash: %w", err)
	}
	return token, nil
}
