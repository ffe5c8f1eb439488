package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/alumify/backend/internal/models"
	pgrepo "github.com/alumify/backend/internal/repositories/postgres"
	"github.com/alumify/backend/internal/utils"
)

type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// GoogleSignIn verifies a Google ID token and provisions an account on
	// first sign-in. Google accounts have no local password.
	GoogleSignIn(ctx context.Context, rawIDToken string) (*AuthResult, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	AcceptPrivacy(ctx context.Context, userID string) error
	PrivacyStatus(ctx context.Context, userID string) (*models.User, error)
}

type authService struct {
	store    *pgrepo.Store
	verifier GoogleTokenVerifier // nil when Google sign-in is not configured
}

func NewAuthService(store *pgrepo.Store, verifier GoogleTokenVerifier) AuthService {
	return &authService{store: store, verifier: verifier}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	const op = "AuthService.Register"

	if name == "" || email == "" || password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name, email and password are required", nil)
	}

	exists, err := s.store.Users.EmailExists(ctx, email)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check email", err)
	}
	if exists {
		return nil, utils.E(utils.CodeConflict, op, "user already exists", nil)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  hash,
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.store.Transaction(ctx, func(tx *pgrepo.Store) error {
		if err := tx.Users.Create(ctx, user); err != nil {
			return err
		}
		return tx.Activities.Append(ctx, &models.ActivityLog{
			UserID:       user.ID,
			ActivityType: models.ActivityRegistration,
			Description:  "User registered successfully",
		})
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}

	return s.result(op, user)
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	const op = "AuthService.Login"

	if email == "" || password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	user, err := s.store.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}
	if err := utils.CheckPassword(user.Password, password); err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}

	if err := s.store.Activities.Append(ctx, &models.ActivityLog{
		UserID:       user.ID,
		ActivityType: models.ActivityLogin,
		Description:  "User logged in",
	}); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to record login", err)
	}

	return s.result(op, user)
}

func (s *authService) GoogleSignIn(ctx context.Context, rawIDToken string) (*AuthResult, error) {
	const op = "AuthService.GoogleSignIn"

	if rawIDToken == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id_token is required", nil)
	}
	if s.verifier == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "google sign-in is not configured", nil)
	}

	ident, err := s.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid google token", err)
	}

	user, err := s.store.Users.GetByEmail(ctx, ident.Email)
	if errors.Is(err, utils.ErrNotFound) {
		now := time.Now().UTC()
		user = &models.User{
			ID:        uuid.NewString(),
			Name:      ident.Name,
			Email:     ident.Email,
			Role:      models.RoleUser,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err = s.store.Transaction(ctx, func(tx *pgrepo.Store) error {
			if err := tx.Users.Create(ctx, user); err != nil {
				return err
			}
			return tx.Activities.Append(ctx, &models.ActivityLog{
				UserID:       user.ID,
				ActivityType: models.ActivityRegistration,
				Description:  "User registered via Google",
			})
		})
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to provision user", err)
		}
	} else if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	} else {
		if err := s.store.Activities.Append(ctx, &models.ActivityLog{
			UserID:       user.ID,
			ActivityType: models.ActivityLogin,
			Description:  "User logged in via Google",
		}); err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to record login", err)
		}
	}

	return s.result(op, user)
}

func (s *authService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	const op = "AuthService.ChangePassword"

	if userID == "" || currentPassword == "" || newPassword == "" {
		return utils.E(utils.CodeInvalidArgument, op, "current and new passwords are required", nil)
	}

	user, err := s.store.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load user", err)
	}
	if err := utils.CheckPassword(user.Password, currentPassword); err != nil {
		return utils.E(utils.CodeInvalidArgument, op, "current password is incorrect", nil)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	err = s.store.Transaction(ctx, func(tx *pgrepo.Store) error {
		if err := tx.Users.UpdatePassword(ctx, userID, hash); err != nil {
			return err
		}
		return tx.Activities.Append(ctx, &models.ActivityLog{
			UserID:       userID,
			ActivityType: models.ActivityPasswordChanged,
			Description:  "User changed password",
		})
	})
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to change password", err)
	}
	return nil
}

func (s *authService) AcceptPrivacy(ctx context.Context, userID string) error {
	const op = "AuthService.AcceptPrivacy"

	if userID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if _, err := s.store.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load user", err)
	}

	err := s.store.Transaction(ctx, func(tx *pgrepo.Store) error {
		if err := tx.Users.AcceptPrivacy(ctx, userID, time.Now().UTC()); err != nil {
			return err
		}
		return tx.Activities.Append(ctx, &models.ActivityLog{
			UserID:       userID,
			ActivityType: models.ActivityProfileUpdated,
			Description:  "User accepted privacy agreement",
		})
	})
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to accept privacy agreement", err)
	}
	return nil
}

func (s *authService) PrivacyStatus(ctx context.Context, userID string) (*models.User, error) {
	const op = "AuthService.PrivacyStatus"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	user, err := s.store.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}
	return user, nil
}

func (s *authService) result(op string, user *models.User) (*AuthResult, error) {
	token, err := utils.IssueToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}
	out := *user
	out.Password = ""
	return &AuthResult{Token: token, User: out}, nil
}
