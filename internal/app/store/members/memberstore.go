package memberstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jcollier/memberportal/internal/app/system/normalize"
	"github.com/jcollier/memberportal/internal/domain/models"
	"gorm.io/gorm"
)

// Store persists members in the members table. All mutation goes through
// Insert; uniqueness of mobile and email is enforced by the table's unique
// indexes in the same statement as the write, so two concurrent submissions
// with the same mobile or email cannot both succeed.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

var (
	// ErrDuplicateMobile is returned when the mobile number is already registered.
	ErrDuplicateMobile = errors.New("mobile number is already registered")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email is already registered")
)

// Insert persists a member after normalizing mobile and email, assigning the
// registration timestamp at insert time. The returned member carries the
// assigned identifier. There is no duplicate pre-check: the unique indexes
// reject duplicates atomically and the violation is mapped to
// ErrDuplicateMobile or ErrDuplicateEmail.
func (s *Store) Insert(ctx context.Context, m models.Member) (models.Member, error) {
	m.ID = 0
	m.Name = normalize.Name(m.Name)
	m.Surname = normalize.Name(m.Surname)
	m.Mobile = normalize.Mobile(m.Mobile)
	m.Email = normalize.Email(m.Email)
	m.RegistrationDate = time.Now().UTC()

	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		if dup, derr := duplicateErr(err); dup {
			return models.Member{}, derr
		}
		return models.Member{}, fmt.Errorf("insert member: %w", err)
	}
	return m, nil
}

// ListAll returns every member ordered by ascending identifier, which for an
// auto-increment key is insertion order.
func (s *Store) ListAll(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

// Each streams members one row at a time in ascending identifier order,
// calling fn for each. Iteration stops at the first error from fn. Calling
// Each again restarts from the beginning.
func (s *Store) Each(ctx context.Context, fn func(models.Member) error) error {
	rows, err := s.db.WithContext(ctx).Model(&models.Member{}).Order("id ASC").Rows()
	if err != nil {
		return fmt.Errorf("iterate members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Member
		if err := s.db.ScanRows(rows, &m); err != nil {
			return fmt.Errorf("scan member: %w", err)
		}
		if err := fn(m); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Count returns the number of registered members.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Member{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	return n, nil
}

// duplicateErr maps a unique-index violation to the matching sentinel. The
// driver names the violated column ("UNIQUE constraint failed:
// members.email"), which is the only way to tell the two indexes apart.
func duplicateErr(err error) (bool, error) {
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "unique") && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	switch {
	case strings.Contains(msg, "mobile"):
		return true, ErrDuplicateMobile
	case strings.Contains(msg, "email"):
		return true, ErrDuplicateEmail
	}
	return false, nil
}
