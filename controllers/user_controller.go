package controllers

import (
	"context"
	"net/http"

	"github.com/Nazmul-4/FoodChef-server/middleware"
	"github.com/Nazmul-4/FoodChef-server/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// UserAPI is the slice of UserService used by the handlers.
type UserAPI interface {
	Register(ctx context.Context, user *models.User) (primitive.ObjectID, bool, error)
	List(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error)
	HasRole(ctx context.Context, email, role string) (bool, error)
}

type UserController struct {
	users UserAPI
}

func NewUserController(users UserAPI) *UserController {
	return &UserController{users: users}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	PhotoURL string `json:"photoURL"`
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// Register saves the user on first registration. Registering an email twice
// is a no-op that answers with a null insertedId marker.
func (uc *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	}
	id, created, err := uc.users.Register(c.Request.Context(), &user)
	if err != nil {
		zap.L().Error("Failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to register user"})
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id.Hex()})
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.users.List(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) SetRole(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := uc.users.SetRole(c.Request.Context(), id, req.Role)
	if err != nil {
		zap.L().Error("Failed to set user role", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}

// CheckAdmin is a self-lookup: only the authenticated user may ask about
// their own email.
func (uc *UserController) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if !requireSelf(c, email) {
		return
	}

	isAdmin, err := uc.users.HasRole(c.Request.Context(), email, models.RoleAdmin)
	if err != nil {
		zap.L().Error("Failed to check admin role", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

func (uc *UserController) CheckChef(c *gin.Context) {
	email := c.Param("email")
	if !requireSelf(c, email) {
		return
	}

	isChef, err := uc.users.HasRole(c.Request.Context(), email, models.RoleChef)
	if err != nil {
		zap.L().Error("Failed to check chef role", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chef": isChef})
}

// requireSelf enforces the identity-match rule on self-only routes: the
// verified token email must equal the requested one, otherwise 403.
func requireSelf(c *gin.Context, email string) bool {
	user, ok := middleware.CurrentUser(c)
	if !ok || user.Email != email {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
		return false
	}
	return true
}
