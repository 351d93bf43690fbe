package user

import (
	"context"

	"servana/models"
	"servana/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register validates basic data, rejects duplicate emails, hashes the
// password and persists the user as active.
func (s *DefaultUserService) Register(ctx context.Context, req RegisterUserRequest) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, utils.ConflictError("a user with this email already exists", map[string]string{
			"email": "already registered",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, err
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hashedPassword),
		Address:      req.Address,
		Status:       models.StatusActive,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, err
	}

	token, err := s.Tokens.Issue(usr.ID, false)
	if err != nil {
		utils.GetLogger().Error("Register: failed to issue token", zap.Error(err))
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.Welcome(ctx, usr.Email, usr.Name)
	}

	return &AuthResponse{ID: usr.ID, Token: token, Name: usr.Name, Email: usr.Email}, nil
}

// Authenticate verifies credentials and issues a token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, err
	}
	if usr == nil {
		return nil, utils.AuthError("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, utils.AuthError("invalid email or password")
	}
	if !usr.IsActive() {
		return nil, utils.AuthError("account is not active")
	}

	token, err := s.Tokens.Issue(usr.ID, false)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to issue token", zap.Error(err))
		return nil, err
	}
	return &AuthResponse{ID: usr.ID, Token: token, Name: usr.Name, Email: usr.Email}, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *DefaultUserService) ChangePassword(id, currentPassword, newPassword string) error {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if usr == nil {
		return utils.NotFoundError("user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(currentPassword)); err != nil {
		return utils.AuthError("current password is incorrect")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Repo.UpdateSet(id, bson.M{"passwordHash": string(hashed)})
}
