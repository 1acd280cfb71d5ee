package testutil

import (
	"context"
	"testing"

	memberstore "github.com/jcollier/memberportal/internal/app/store/members"
	"github.com/jcollier/memberportal/internal/domain/models"
	"gorm.io/gorm"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *gorm.DB
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *gorm.DB) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *gorm.DB {
	return f.db
}

// CreateMember inserts a member through the store and returns the stored row.
func (f *Fixtures) CreateMember(ctx context.Context, name, surname, mobile, email string) models.Member {
	f.t.Helper()

	m, err := memberstore.New(f.db).Insert(ctx, models.Member{
		Name:    name,
		Surname: surname,
		Mobile:  mobile,
		Email:   email,
	})
	if err != nil {
		f.t.Fatalf("failed to create test member: %v", err)
	}
	return m
}
