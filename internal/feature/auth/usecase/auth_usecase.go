package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"youthcup_backend/internal/domain/entity"
	jwtmw "youthcup_backend/internal/platform/jwt"
	"youthcup_backend/internal/platform/mail"
	"youthcup_backend/internal/shared/apperror"
	"youthcup_backend/internal/shared/besteffort"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// generatedPasswordLength is the length of passwords issued by ResetPassword.
	generatedPasswordLength = 12

	passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// dummyHash is compared against when the user does not exist so that login
// takes the same time for unknown emails.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create persists a new user, returning ErrEmailAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns ErrUserNotFound when no user matches.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uint, hash string) error
}

// TokenIssuer signs and verifies one type of token.
type TokenIssuer interface {
	GenerateToken(userID uint, role string) (string, error)
	ParseToken(token string) (*jwtmw.Claims, error)
}

// Mailer delivers email.
type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

// Result is returned by Signup and Login.
type Result struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// TokenPair is returned by Refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users      UserRepository
	access     TokenIssuer
	refresh    TokenIssuer
	store      RefreshTokenStore
	mailer     Mailer
	refreshTTL time.Duration

	// generatePassword is replaced in tests.
	generatePassword func() (string, error)
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, access, refresh TokenIssuer, store RefreshTokenStore, mailer Mailer, refreshTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:            users,
		access:           access,
		refresh:          refresh,
		store:            store,
		mailer:           mailer,
		refreshTTL:       refreshTTL,
		generatePassword: randomPassword,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return apperror.Validation(fmt.Sprintf("password must be at least %d characters long", minPasswordLength))
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Signup registers a user and signs them in.
func (u *authUsecase) Signup(ctx context.Context, name, email, password string) (*Result, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{Name: name, Email: email, Password: hashed, Role: entity.RoleCustomer}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return u.issue(ctx, user)
}

// Login はユーザーを認証し、成功時にトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*Result, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}
	return u.issue(ctx, user)
}

// Refresh rotates a refresh token. The presented token must be the one
// currently stored for its user.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := u.verifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	stored, err := u.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrRefreshTokenNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to load refresh token: %w", err)
	}
	if stored != refreshToken {
		return nil, ErrInvalidRefreshToken
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	res, err := u.issue(ctx, user)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: res.AccessToken, RefreshToken: res.RefreshToken}, nil
}

// Logout revokes the user's stored refresh token. An empty token is a no-op.
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	userID, err := u.verifyRefresh(refreshToken)
	if err != nil {
		return err
	}
	if err := u.store.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

// ResetPassword replaces the user's password with a random one and emails
// it. Delivery failures do not fail the reset.
func (u *authUsecase) ResetPassword(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	newPassword, err := u.generatePassword()
	if err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}
	hashed, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := u.users.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return fmt.Errorf("failed to save password: %w", err)
	}

	besteffort.Do(ctx, "send_password_reset_email", func(ctx context.Context) error {
		return u.mailer.Send(ctx, mail.PasswordReset(user.Email, user.Name, newPassword))
	})
	return nil
}

// ChangePassword verifies oldPassword and stores newPassword.
func (u *authUsecase) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hashed, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return u.users.UpdatePassword(ctx, user.ID, hashed)
}

// Me returns the authenticated user.
func (u *authUsecase) Me(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

func (u *authUsecase) verifyRefresh(token string) (uint, error) {
	claims, err := u.refresh.ParseToken(token)
	if err != nil {
		return 0, ErrInvalidRefreshToken
	}
	userID, err := claims.UserID()
	if err != nil {
		return 0, ErrInvalidRefreshToken
	}
	return userID, nil
}

// issue creates a token pair and records the refresh token as current.
func (u *authUsecase) issue(ctx context.Context, user *entity.User) (*Result, error) {
	access, err := u.access.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	refresh, err := u.refresh.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := u.store.Save(ctx, user.ID, refresh, u.refreshTTL); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return &Result{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

func randomPassword() (string, error) {
	max := big.NewInt(int64(len(passwordAlphabet)))
	b := make([]byte, generatedPasswordLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = passwordAlphabet[n.Int64()]
	}
	return string(b), nil
}
