package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/db"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound   error = errors.New("user not found")
	ErrUserExists     error = errors.New("user already exists")
	ErrWalletNotFound error = errors.New("wallet not found")
	ErrNoChat         error = errors.New("user has no telegram chat")
)

type UserRepository struct {
	db *db.Database
}

func NewUserRepository(database *db.Database) *UserRepository {
	return &UserRepository{
		db: database,
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *User) error {
	err := r.db.Create(ctx, user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}
	return user, nil
}

func (r *UserRepository) GetUser(ctx context.Context, id string) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// ChatID returns the Telegram chat notifications for owner go to.
func (r *UserRepository) ChatID(ctx context.Context, owner string) (int64, error) {
	user, err := r.GetUser(ctx, owner)
	if err != nil {
		return 0, err
	}
	if user.TelegramChatID == nil {
		return 0, ErrNoChat
	}
	return *user.TelegramChatID, nil
}

// SaveWallet stores or replaces the owner's wallet address.
func (r *UserRepository) SaveWallet(ctx context.Context, wallet Wallet) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner"}},
			DoUpdates: clause.AssignmentColumns([]string{"address"}),
		}).
		Create(&wallet).Error
	if err != nil {
		return fmt.Errorf("save wallet: %w", err)
	}
	return nil
}

func (r *UserRepository) GetWallet(ctx context.Context, owner string) (Wallet, error) {
	var wallet Wallet
	err := r.db.GetOneBy(ctx, "owner", owner, &wallet)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Wallet{}, ErrWalletNotFound
		}
		return Wallet{}, fmt.Errorf("get wallet: %w", err)
	}
	return wallet, nil
}

func (r *UserRepository) DeleteWallet(ctx context.Context, owner string) error {
	res := r.db.WithContext(ctx).Where("owner = ?", owner).Delete(&Wallet{})
	if res.Error != nil {
		return fmt.Errorf("delete wallet: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

// WalletOwners lists the owners that have a wallet on record.
func (r *UserRepository) WalletOwners(ctx context.Context) ([]string, error) {
	var owners []string
	err := r.db.WithContext(ctx).Model(&Wallet{}).Order("owner").Pluck("owner", &owners).Error
	if err != nil {
		return nil, fmt.Errorf("list wallet owners: %w", err)
	}
	return owners, nil
}
