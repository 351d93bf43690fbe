package provider

import (
	"context"
	"time"

	providerRepo "servana/database/repository/provider"
	"servana/models"
	"servana/services/email"
	"servana/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultProviderService is the production implementation of ProviderService.
type DefaultProviderService struct {
	Repo     providerRepo.ProviderRepository
	Tokens   *utils.TokenIssuer
	Notifier *email.Notifier
}

// Register creates a provider pending verification. The account cannot
// operate until an admin approves it.
func (s *DefaultProviderService) Register(ctx context.Context, req RegisterProviderRequest) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing provider", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, utils.ConflictError("a provider with this email already exists", map[string]string{
			"email": "already registered",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, err
	}

	prov := &models.Provider{
		ID:           uuid.New().String(),
		BusinessName: req.BusinessName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hashedPassword),
		Description:  req.Description,
		Address:      req.Address,
		Status:       models.StatusPending,
		Verification: models.Verification{
			Status:    models.VerificationPending,
			Documents: req.Documents,
		},
	}
	if err := s.Repo.Create(prov); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.Welcome(ctx, prov.Email, prov.BusinessName)
	}

	return &AuthResponse{
		ID:           prov.ID,
		BusinessName: prov.BusinessName,
		Email:        prov.Email,
		Verification: prov.Verification.Status,
	}, nil
}

// Authenticate verifies credentials. Tokens are only issued to providers
// that are active and verified; everyone else cannot act as a provider
// principal yet.
func (s *DefaultProviderService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	prov, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch provider", zap.Error(err))
		return nil, err
	}
	if prov == nil {
		return nil, utils.AuthError("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(prov.PasswordHash), []byte(password)); err != nil {
		return nil, utils.AuthError("invalid email or password")
	}
	if !prov.CanOperate() {
		return nil, utils.ForbiddenError("provider account is pending verification")
	}

	token, err := s.Tokens.Issue(prov.ID, false)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to issue token", zap.Error(err))
		return nil, err
	}
	return &AuthResponse{
		ID:           prov.ID,
		Token:        token,
		BusinessName: prov.BusinessName,
		Email:        prov.Email,
		Verification: prov.Verification.Status,
	}, nil
}

func (s *DefaultProviderService) GetProviderByID(id string) (*models.Provider, error) {
	prov, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prov == nil {
		return nil, utils.NotFoundError("provider")
	}
	return prov, nil
}

// UpdateProfile applies the mutable profile fields.
func (s *DefaultProviderService) UpdateProfile(id string, req UpdateProviderRequest) (*models.Provider, error) {
	if _, err := s.GetProviderByID(id); err != nil {
		return nil, err
	}

	update := bson.M{}
	if req.BusinessName != "" {
		update["businessName"] = req.BusinessName
	}
	if req.PhoneNumber != "" {
		update["phoneNumber"] = req.PhoneNumber
	}
	if req.Description != "" {
		update["description"] = req.Description
	}
	if req.Address != "" {
		update["address"] = req.Address
	}
	if len(update) > 0 {
		if err := s.Repo.UpdateSet(id, update); err != nil {
			return nil, err
		}
	}
	return s.GetProviderByID(id)
}

// Verify records the admin decision. Approval activates the account;
// rejection leaves it unable to operate.
func (s *DefaultProviderService) Verify(adminID, providerID string, approve bool, notes string) (*models.Provider, error) {
	prov, err := s.GetProviderByID(providerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	verification := prov.Verification
	verification.ReviewedBy = adminID
	verification.ReviewedAt = &now
	verification.Notes = notes

	update := bson.M{}
	if approve {
		verification.Status = models.VerificationVerified
		update["status"] = models.StatusActive
	} else {
		verification.Status = models.VerificationRejected
	}
	update["verification"] = verification

	if err := s.Repo.UpdateSet(providerID, update); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("provider verification updated",
		zap.String("providerId", providerID),
		zap.String("status", string(verification.Status)),
		zap.String("reviewedBy", adminID),
	)
	return s.GetProviderByID(providerID)
}

// Deactivate soft-deletes the account; the document is kept.
func (s *DefaultProviderService) Deactivate(id string) error {
	if _, err := s.GetProviderByID(id); err != nil {
		return err
	}
	return s.Repo.UpdateSet(id, bson.M{"status": models.StatusInactive})
}

func (s *DefaultProviderService) ListProviders(filter bson.M, skip, limit int64) ([]models.Provider, int64, error) {
	return s.Repo.List(filter, skip, limit)
}
