package store

import (
	"errors"

	"gorm.io/gorm"

	"inventario/internal/models"
)

// CredentialStore persists user accounts and checks login attempts.
type CredentialStore struct {
	db *gorm.DB
}

func NewCredentialStore(db *gorm.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

// FindByUsername does an exact-match lookup.
func (s *CredentialStore) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Verify checks a login attempt. It returns the matched user and true on
// success, and (nil, false) for an unknown username or a wrong password.
// The plaintext is never stored or logged.
func (s *CredentialStore) Verify(username, password string) (*models.User, bool) {
	user, err := s.FindByUsername(username)
	if err != nil {
		return nil, false
	}
	if !models.CheckPassword(user.PasswordHash, password) {
		return nil, false
	}
	return user, true
}

// EnsureSeedUser creates the account if it does not exist yet. Calling it
// again is a no-op, so every boot can run it unconditionally.
func (s *CredentialStore) EnsureSeedUser(username, password string) error {
	_, err := s.FindByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return err
	}
	hash, err := models.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.db.Create(&models.User{Username: username, PasswordHash: hash}).Error; err != nil {
		// Another instance seeded between the lookup and the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}
