package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kscst/vocational-training-backend/internal/config"
	"github.com/kscst/vocational-training-backend/internal/model"
	"github.com/kscst/vocational-training-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Principal is the authenticated actor attached to a request.
type Principal struct {
	ID       string
	Username string
	Role     model.Role
}

// Claims extends JWT standard claims with the principal's role and username.
type Claims struct {
	jwt.RegisteredClaims
	Role     model.Role `json:"role"`
	Username string     `json:"username"`
}

// AuthService handles registration, credential verification, and tokens.
// Credential resolution follows a fixed precedence across the three principal
// kinds: trainee first, then trainer, then admin. Usernames are unique only
// within a kind, so the order is observable when kinds share a username.
type AuthService struct {
	cfg      *config.Config
	trainees TraineeStore
	trainers TrainerStore
	admins   AdminStore
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, trainees TraineeStore, trainers TrainerStore, admins AdminStore) *AuthService {
	return &AuthService{cfg: cfg, trainees: trainees, trainers: trainers, admins: admins}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// RegisterTrainee creates a trainee account in PENDING status.
func (s *AuthService) RegisterTrainee(ctx context.Context, req *model.RegisterTraineeRequest) (*model.Trainee, error) {
	if _, err := s.trainees.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	trainee := &model.Trainee{
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Skill:        req.Skill,
		Location:     req.Location,
		Status:       model.StatusPending,
	}
	if err := s.trainees.Create(ctx, trainee); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return trainee, nil
}

// RegisterTrainer creates a trainer account in PENDING status.
func (s *AuthService) RegisterTrainer(ctx context.Context, req *model.RegisterTrainerRequest) (*model.Trainer, error) {
	if _, err := s.trainers.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	trainer := &model.Trainer{
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Expertise:    req.Expertise,
		Status:       model.StatusPending,
	}
	if err := s.trainers.Create(ctx, trainer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return trainer, nil
}

// Login verifies credentials against the three principal kinds in precedence
// order and returns the first password match. Trainees and trainers must be
// APPROVED; admins have no status gate.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	trainee, err := s.trainees.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if trainee != nil && s.CheckPassword(trainee.PasswordHash, password) {
		if trainee.Status != model.StatusApproved {
			return nil, ErrNotApproved
		}
		return s.loginResponse(Principal{ID: trainee.ID, Username: trainee.Username, Role: model.RoleTrainee})
	}

	trainer, err := s.trainers.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if trainer != nil && s.CheckPassword(trainer.PasswordHash, password) {
		if trainer.Status != model.StatusApproved {
			return nil, ErrNotApproved
		}
		return s.loginResponse(Principal{ID: trainer.ID, Username: trainer.Username, Role: model.RoleTrainer})
	}

	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if admin != nil && s.CheckPassword(admin.PasswordHash, password) {
		return s.loginResponse(Principal{ID: admin.ID, Username: admin.Username, Role: model.RoleAdmin})
	}

	return nil, ErrInvalidCredentials
}

func (s *AuthService) loginResponse(p Principal) (*model.LoginResponse, error) {
	token, err := s.GenerateToken(p)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &model.LoginResponse{ID: p.ID, Username: p.Username, Role: p.Role, Token: token}, nil
}

// Authenticate resolves per-request Basic credentials. The first kind holding
// the username wins; the password is then verified against that principal
// only, and trainees/trainers must be APPROVED.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*Principal, error) {
	trainee, err := s.trainees.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if trainee != nil {
		if !s.CheckPassword(trainee.PasswordHash, password) {
			return nil, ErrInvalidCredentials
		}
		if trainee.Status != model.StatusApproved {
			return nil, ErrNotApproved
		}
		return &Principal{ID: trainee.ID, Username: trainee.Username, Role: model.RoleTrainee}, nil
	}

	trainer, err := s.trainers.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if trainer != nil {
		if !s.CheckPassword(trainer.PasswordHash, password) {
			return nil, ErrInvalidCredentials
		}
		if trainer.Status != model.StatusApproved {
			return nil, ErrNotApproved
		}
		return &Principal{ID: trainer.ID, Username: trainer.Username, Role: model.RoleTrainer}, nil
	}

	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if admin != nil {
		if !s.CheckPassword(admin.PasswordHash, password) {
			return nil, ErrInvalidCredentials
		}
		return &Principal{ID: admin.ID, Username: admin.Username, Role: model.RoleAdmin}, nil
	}

	return nil, ErrInvalidCredentials
}

// GenerateToken creates a JWT carrying the principal's identity and role.
func (s *AuthService) GenerateToken(p Principal) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		Role:     p.Role,
		Username: p.Username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken parses and validates a JWT, returning the principal it names.
func (s *AuthService) ValidateToken(tokenStr string) (*Principal, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return &Principal{ID: claims.Subject, Username: claims.Username, Role: claims.Role}, nil
}
