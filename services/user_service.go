package services

import (
	"context"
	"time"

	"github.com/Nazmul-4/FoodChef-server/models"
	"github.com/Nazmul-4/FoodChef-server/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserService struct {
	users repository.UserRepo
}

func NewUserService(users repository.UserRepo) *UserService {
	return &UserService{users: users}
}

// Register creates the user document on first registration. A repeat call for
// the same email is a no-op and returns created=false with a nil id, so the
// endpoint can answer with the null-insert marker.
func (s *UserService) Register(ctx context.Context, user *models.User) (primitive.ObjectID, bool, error) {
	existing, err := s.users.FindByEmail(ctx, user.Email)
	if err != nil {
		return primitive.NilObjectID, false, err
	}
	if existing != nil {
		return primitive.NilObjectID, false, nil
	}

	user.CreatedAt = time.Now().UTC()
	id, err := s.users.Create(ctx, user)
	if err != nil {
		return primitive.NilObjectID, false, err
	}
	return id, true, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) SetRole(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error) {
	return s.users.SetRole(ctx, id, role)
}

// HasRole reports whether the user with the given email carries the role.
// An unknown email simply yields false.
func (s *UserService) HasRole(ctx context.Context, email, role string) (bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == role, nil
}
