package auth

import (
	"crypto/rand"
	"encoding/base32"
	"log/slog"
	"strings"
	"time"

	"github.com/danisworo/workdesk/internal"
	"golang.org/x/crypto/bcrypt"
)

// Service is the session issuer: it authenticates credentials, signs session
// tokens and owns every password mutation.
type Service struct {
	repo       RepositoryAPI
	tokens     TokenGeneratorAPI
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, tokens TokenGeneratorAPI, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *Service) SessionTTL() time.Duration {
	if g, ok := s.tokens.(*JWTTokenGenerator); ok {
		return g.SessionTTL
	}
	return 7 * 24 * time.Hour
}

// Login checks, in order: account existence, claimed role, active flag,
// password. The order is load-bearing: a deactivated employee with a wrong
// password must still see the deactivation message, and a role mismatch must
// never be reported as bad credentials.
func (s *Service) Login(dto LoginDTO) (string, *Profile, error) {
	if err := dto.Validate(); err != nil {
		return "", nil, err
	}

	account, err := s.repo.GetByEmail(NormalizedEmail(dto.Email))
	if err != nil {
		s.logger.Warn("login failed: account lookup", "email", NormalizedEmail(dto.Email), "error", err)
		return "", nil, ErrInvalidCredentials
	}

	if account.Role != dto.Role {
		s.logger.Warn("login failed: role mismatch", "account_id", account.ID, "claimed_role", dto.Role)
		return "", nil, RoleMismatchError(dto.Role)
	}

	if account.Role == internal.RoleEmployee && !account.IsActive {
		s.logger.Warn("login failed: account deactivated", "account_id", account.ID)
		return "", nil, ErrDeactivated
	}

	if err := VerifyPassword(account.PasswordHash, dto.Password); err != nil {
		s.logger.Warn("login failed: bad password", "account_id", account.ID)
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateSessionToken(account.ID, account.Email)
	if err != nil {
		return "", nil, internal.NewInternalError("failed to sign session token", err)
	}

	profile := account.ToProfile()
	s.logger.Info("login successful", "account_id", account.ID, "role", account.Role)

	return token, &profile, nil
}

// Register creates a self-service account, typically a business admin.
func (s *Service) Register(dto RegisterDTO) (*Account, error) {
	hash, err := HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	account := &Account{
		Name:         dto.Name,
		Email:        NormalizedEmail(dto.Email),
		PasswordHash: hash,
		Role:         dto.Role,
		JobTitle:     dto.JobTitle,
		IsActive:     true,
	}

	if err := s.repo.Create(account); err != nil {
		return nil, err
	}

	s.logger.Info("account registered", "account_id", account.ID, "role", account.Role)
	return account, nil
}

// ChangePassword verifies the current password before re-hashing. It also
// clears the temporary flag so a first-login employee leaves the forced
// password-change state.
func (s *Service) ChangePassword(accountID int64, dto ChangePasswordDTO) (*Profile, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	account, err := s.repo.GetByID(accountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	if err := VerifyPassword(account.PasswordHash, dto.CurrentPassword); err != nil {
		return nil, internal.NewUnauthenticatedError("Current password is incorrect", internal.ErrCodeInvalidCredentials)
	}

	hash, err := HashPassword(dto.NewPassword, s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	if err := s.repo.UpdatePassword(accountID, hash, false); err != nil {
		return nil, internal.NewInternalError("failed to update password", err)
	}

	account.PasswordHash = hash
	account.IsPasswordTemporary = false
	profile := account.ToProfile()

	s.logger.Info("password changed", "account_id", accountID)
	return &profile, nil
}

// Authorize validates the session token, then re-reads the account from the
// store. The token being cryptographically valid is not enough: if the
// account is gone or a deactivation landed after the token was issued, the
// request is rejected now, not at token expiry.
func (s *Service) Authorize(token string) (*internal.AccountContext, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.GetByID(claims.AccountID)
	if err != nil {
		s.logger.Warn("authorize failed: account gone", "account_id", claims.AccountID)
		return nil, ErrAccountGone
	}

	if account.Role == internal.RoleEmployee && !account.IsActive {
		s.logger.Warn("authorize failed: account deactivated mid-session", "account_id", account.ID)
		return nil, ErrDeactivated
	}

	return account.ToContext(), nil
}

// ProvisionEmployeeAccount creates a login for an admin-added employee with a
// generated temporary password. The plaintext password is returned exactly
// once so the admin can hand it over; only the hash is stored.
func (s *Service) ProvisionEmployeeAccount(name, email, jobTitle string, employeeRole string) (*Account, string, error) {
	tempPassword, err := GenerateTempPassword()
	if err != nil {
		return nil, "", internal.NewInternalError("failed to generate temporary password", err)
	}

	hash, err := HashPassword(tempPassword, s.bcryptCost)
	if err != nil {
		return nil, "", internal.NewInternalError("failed to hash password", err)
	}

	account := &Account{
		Name:                name,
		Email:               NormalizedEmail(email),
		PasswordHash:        hash,
		Role:                internal.RoleEmployee,
		JobTitle:            jobTitle,
		IsActive:            true,
		IsPasswordTemporary: true,
	}
	if employeeRole != "" {
		account.EmployeeRole = &employeeRole
	}

	if err := s.repo.Create(account); err != nil {
		return nil, "", err
	}

	s.logger.Info("employee account provisioned", "account_id", account.ID, "email", account.Email)
	return account, tempPassword, nil
}

// SetAccountActive flips the soft-delete flag. The guard picks the change up
// on the account's next request.
func (s *Service) SetAccountActive(accountID int64, active bool) error {
	if err := s.repo.SetActive(accountID, active); err != nil {
		return err
	}
	s.logger.Info("account active flag updated", "account_id", accountID, "is_active", active)
	return nil
}

const tempPasswordLength = 8

// GenerateTempPassword returns a short random password in the shape the
// original issued (8 lowercase alphanumerics), from a CSPRNG.
func GenerateTempPassword() (string, error) {
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	encoded := strings.ToLower(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf))
	return encoded[:tempPasswordLength], nil
}
