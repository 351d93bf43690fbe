package admin

import (
	"context"
	"time"

	adminRepo "servana/database/repository/admin"
	"servana/models"
	"servana/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultAdminService is the production implementation of AdminService.
type DefaultAdminService struct {
	Repo   adminRepo.AdminRepository
	Tokens *utils.TokenIssuer
}

// Authenticate verifies admin credentials with lockout handling: five
// consecutive failed matches lock the account for 30 minutes, and attempts
// while locked are rejected regardless of the password.
func (s *DefaultAdminService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	adm, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch admin", zap.Error(err))
		return nil, err
	}
	if adm == nil {
		return nil, utils.AuthError("invalid email or password")
	}

	now := time.Now()
	if adm.IsLocked(now) {
		return nil, utils.AuthError("account is locked, try again later")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adm.PasswordHash), []byte(password)); err != nil {
		adm.RegisterFailedLogin(now)
		if updErr := s.Repo.UpdateSet(adm.ID, bson.M{
			"loginAttempts": adm.LoginAttempts,
			"lockUntil":     adm.LockUntil,
		}); updErr != nil {
			utils.GetLogger().Error("Authenticate: failed to persist lockout state",
				zap.String("adminId", adm.ID), zap.Error(updErr))
		}
		return nil, utils.AuthError("invalid email or password")
	}

	if !adm.IsActive() {
		return nil, utils.AuthError("account is not active")
	}

	if adm.LoginAttempts > 0 || adm.LockUntil != nil {
		adm.ResetLoginAttempts()
		if err := s.Repo.UpdateSet(adm.ID, bson.M{"loginAttempts": 0, "lockUntil": nil}); err != nil {
			utils.GetLogger().Error("Authenticate: failed to reset lockout state",
				zap.String("adminId", adm.ID), zap.Error(err))
		}
	}

	token, err := s.Tokens.Issue(adm.ID, true)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to issue token", zap.Error(err))
		return nil, err
	}
	return &AuthResponse{ID: adm.ID, Token: token, Name: adm.Name, Email: adm.Email, Role: adm.Role}, nil
}

// CreateAdmin creates an admin account. The actor needs write permission on
// the admins module and a strictly higher role than the new account.
func (s *DefaultAdminService) CreateAdmin(actor *models.Admin, req CreateAdminRequest) (*models.Admin, error) {
	if !actor.HasPermission("admins", "write") {
		return nil, utils.ForbiddenError("you may not create admin accounts")
	}
	target := &models.Admin{Role: req.Role}
	if !actor.CanManage(target) {
		return nil, utils.ForbiddenError("you may not create an admin with this role")
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ConflictError("an admin with this email already exists", map[string]string{
			"email": "already registered",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	adm := &models.Admin{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Status:       models.StatusActive,
	}
	adm.SetRole(req.Role)

	if err := s.Repo.Create(adm); err != nil {
		return nil, err
	}
	return adm, nil
}

func (s *DefaultAdminService) GetAdminByID(id string) (*models.Admin, error) {
	adm, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if adm == nil {
		return nil, utils.NotFoundError("admin")
	}
	return adm, nil
}

// UpdateRole reassigns a role. The whole permission grid is rewritten from
// the new role, never patched.
func (s *DefaultAdminService) UpdateRole(actor *models.Admin, targetID string, role models.AdminRole) (*models.Admin, error) {
	target, err := s.GetAdminByID(targetID)
	if err != nil {
		return nil, err
	}
	if !actor.HasPermission("admins", "write") || !actor.CanManage(target) {
		return nil, utils.ForbiddenError("you may not change this admin's role")
	}

	target.SetRole(role)
	if err := s.Repo.UpdateSet(targetID, bson.M{
		"role":        target.Role,
		"permissions": target.Permissions,
	}); err != nil {
		return nil, err
	}
	return target, nil
}

// Deactivate soft-deletes an admin account, gated by the hierarchy.
func (s *DefaultAdminService) Deactivate(actor *models.Admin, targetID string) error {
	target, err := s.GetAdminByID(targetID)
	if err != nil {
		return err
	}
	if !actor.HasPermission("admins", "delete") || !actor.CanManage(target) {
		return utils.ForbiddenError("you may not deactivate this admin")
	}
	return s.Repo.UpdateSet(targetID, bson.M{"status": models.StatusInactive})
}

func (s *DefaultAdminService) ListAdmins(filter bson.M, skip, limit int64) ([]models.Admin, int64, error) {
	return s.Repo.List(filter, skip, limit)
}
