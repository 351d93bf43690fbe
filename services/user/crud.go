package user

import (
	userRepo "servana/database/repository/user"
	"servana/models"
	"servana/services/email"
	"servana/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Tokens   *utils.TokenIssuer
	Notifier *email.Notifier
}

func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, utils.NotFoundError("user")
	}
	return usr, nil
}

// UpdateProfile applies the mutable profile fields.
func (s *DefaultUserService) UpdateProfile(id string, req UpdateUserRequest) (*models.User, error) {
	usr, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.PhoneNumber != "" {
		update["phoneNumber"] = req.PhoneNumber
	}
	if req.Address != "" {
		update["address"] = req.Address
	}
	if len(update) == 0 {
		return usr, nil
	}
	if err := s.Repo.UpdateSet(id, update); err != nil {
		return nil, err
	}
	return s.GetUserByID(id)
}

// Deactivate soft-deletes the account; the document is kept.
func (s *DefaultUserService) Deactivate(id string) error {
	if _, err := s.GetUserByID(id); err != nil {
		return err
	}
	return s.Repo.UpdateSet(id, bson.M{"status": models.StatusInactive})
}

func (s *DefaultUserService) ListUsers(filter bson.M, skip, limit int64) ([]models.User, int64, error) {
	return s.Repo.List(filter, skip, limit)
}
