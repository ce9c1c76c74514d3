package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/repository/repoargs"
	"github.com/fsdevblog/usdt-yield/internal/service/tokens"
	"github.com/fsdevblog/usdt-yield/pkg/uow"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const JWTTokenExpire = 1 * time.Hour

const referralCodePrefix = "YIELD-"

type UserService struct {
	uow            uow.UOW
	accountRepo    AccountRepository
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte) (*UserService, error) {
	accountRepo, accountRepoErr := uow.GetRepositoryAs[AccountRepository](
		u, uow.RepositoryName(repoargs.AccountRepoName))
	if accountRepoErr != nil {
		return nil, accountRepoErr
	}
	return &UserService{
		uow:            u,
		accountRepo:    accountRepo,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Username     string
	Password     string
	ReferralCode string // код пригласившего, опционален
}

// Register создает счет с нулевыми балансами и собственным реферальным кодом.
// Если передан код пригласившего - новый счет привязывается к нему как к
// аплайнеру; несуществующий код регистрацию не ломает, связь просто не
// устанавливается. После успешного создания генерирует jwt token. Возвращает
// 3 значения: созданный счет, токен и ошибку.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.Account, string, error) {
	password, hashErr := s.hashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering account: %s", hashErr.Error())
	}

	var account *domain.Account
	var token string
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, accountRepoErr := uow.GetAs[AccountRepository](
			tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}

		var uplinerID *int64
		if code := strings.TrimSpace(args.ReferralCode); code != "" {
			upliner, uplinerErr := accountRepo.FindByReferralCode(c, code)
			if uplinerErr == nil {
				uplinerID = &upliner.ID
			} else if !errors.Is(uplinerErr, domain.ErrRecordNotFound) {
				return uplinerErr //nolint:wrapcheck
			}
		}

		var accountErr error
		account, accountErr = accountRepo.Create(c, repoargs.CreateAccount{
			Username:     args.Username,
			Password:     password,
			Role:         domain.RoleUser,
			ReferralCode: newReferralCode(),
			UplinerID:    uplinerID,
		})
		if accountErr != nil {
			return accountErr //nolint:wrapcheck
		}

		var tokenErr error
		token, tokenErr = tokens.GenerateUserJWT(account.ID, account.Role, JWTTokenExpire, s.jwtTokenSecret)
		return tokenErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, "", fmt.Errorf("registering account: %w", txErr)
	}
	return account, token, nil
}

type LoginUserArgs struct {
	Username string
	Password string
}

// Login проверяет пару логин/пароль и возвращает счет с токеном. При неверном
// пароле возвращается domain.ErrPasswordMissMatch, неотличимая снаружи от
// отсутствия юзера решается на уровне хендлера.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.Account, string, error) {
	account, findErr := s.accountRepo.FindByUsername(ctx, args.Username)
	if findErr != nil {
		return nil, "", findErr //nolint:wrapcheck
	}
	if !s.comparePasswords(account.Password, args.Password) {
		return nil, "", domain.ErrPasswordMissMatch
	}
	token, tokenErr := tokens.GenerateUserJWT(account.ID, account.Role, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in: %s", tokenErr.Error())
	}
	return account, token, nil
}

func (s *UserService) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return account, nil
}

// EnsureAdmin создает админский счет, если его еще нет. Вызывается на старте
// приложения, повторный запуск ничего не меняет.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) (*domain.Account, error) {
	existing, findErr := s.accountRepo.FindByUsername(ctx, username)
	if findErr == nil {
		return existing, nil
	}
	if !errors.Is(findErr, domain.ErrRecordNotFound) {
		return nil, findErr //nolint:wrapcheck
	}

	hashed, hashErr := s.hashPassword(password)
	if hashErr != nil {
		return nil, fmt.Errorf("ensuring admin: %s", hashErr.Error())
	}

	var account *domain.Account
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, accountRepoErr := uow.GetAs[AccountRepository](
			tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}
		var createErr error
		account, createErr = accountRepo.Create(c, repoargs.CreateAccount{
			Username:     username,
			Password:     hashed,
			Role:         domain.RoleAdmin,
			ReferralCode: newReferralCode(),
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("ensuring admin: %w", txErr)
	}
	return account, nil
}

func newReferralCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return referralCodePrefix + strings.ToUpper(raw[:8])
}

func (s *UserService) hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}

func (s *UserService) comparePasswords(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
