package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Nishat-Ahmad/CRITiQUE/internal/models"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users     *repository.UserRepository
	jwtSecret []byte
	adminCode string
}

type RegisterUserData struct {
	Email    string
	Name     string
	Password string

	University    string
	PreferredTags []string

	// AdminCode correcto => rol admin; cualquier otra cosa => student
	AdminCode string
}

type UpdateUserData struct {
	Email    *string
	Name     *string
	Password *string

	University    *string
	PreferredTags *[]string
}

func NewAuthService(users *repository.UserRepository, secret, adminCode string) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: []byte(secret),
		adminCode: adminCode,
	}
}

// ================== REGISTER & LOGIN ==================

// Register crea un usuario nuevo. El rol default es student; con el
// admin code configurado se crea como admin.
func (s *AuthService) Register(ctx context.Context, data RegisterUserData) (*models.UserDoc, error) {
	if data.Email == "" || data.Name == "" {
		return nil, fmt.Errorf("email and name required")
	}

	existing, err := s.users.FindByEmail(ctx, data.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	password := data.Password
	if password == "" {
		return nil, fmt.Errorf("password required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := "student"
	if data.AdminCode != "" && s.adminCode != "" && data.AdminCode == s.adminCode {
		role = "admin"
	}

	now := time.Now().UTC().Format(time.RFC3339)

	u := &models.UserDoc{
		ID:            uuid.NewString(),
		Email:         data.Email,
		Name:          data.Name,
		PasswordHash:  string(hash),
		Role:          role,
		University:    data.University,
		PreferredTags: data.PreferredTags,
		TotalReviews:  0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDoc, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.ID,
		"role": u.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	sToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return sToken, u, nil
}

// ================== UPDATE USER ==================

// UpdateUser actualiza campos opcionales de un usuario.
func (s *AuthService) UpdateUser(ctx context.Context, userID string, data UpdateUserData) error {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("user not found")
	}

	update := map[string]any{}

	if data.Email != nil {
		if *data.Email == "" {
			return fmt.Errorf("email cannot be empty")
		}
		existing, err := s.users.FindByEmail(ctx, *data.Email)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != userID {
			return fmt.Errorf("email already in use")
		}
		update["email"] = *data.Email
	}

	if data.Name != nil {
		if *data.Name == "" {
			return fmt.Errorf("name cannot be empty")
		}
		update["name"] = *data.Name
	}

	if data.Password != nil {
		if *data.Password == "" {
			return fmt.Errorf("password cannot be empty")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*data.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		update["passwordHash"] = string(hash)
	}

	if data.University != nil {
		update["university"] = *data.University
	}
	if data.PreferredTags != nil {
		update["preferredTags"] = *data.PreferredTags
	}

	if len(update) == 0 {
		return fmt.Errorf("no fields to update")
	}

	update["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	return s.users.UpdateByID(ctx, userID, update)
}

func (s *AuthService) ListUsers(ctx context.Context, role, q string, limit, offset int) ([]models.UserDoc, error) {
	return s.users.Search(ctx, role, q, limit, offset)
}

func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*models.UserDoc, error) {
	return s.users.FindByID(ctx, userID)
}
