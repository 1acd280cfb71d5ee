package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jcollier/memberportal/internal/domain/models"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AppConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  AppConfig{DatabasePath: "members.db", SessionName: "memberportal-session"},
		},
		{
			name:    "empty_database_path",
			cfg:     AppConfig{DatabasePath: "", SessionName: "memberportal-session"},
			wantErr: true,
		},
		{
			name:    "whitespace_database_path",
			cfg:     AppConfig{DatabasePath: "   ", SessionName: "memberportal-session"},
			wantErr: true,
		},
		{
			name:    "empty_session_name",
			cfg:     AppConfig{DatabasePath: "members.db", SessionName: ""},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateConfig(nil, tc.cfg, testLogger())
			if tc.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestConnectDB_CreatesFileAndMigrates(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	appCfg := AppConfig{
		DatabasePath: filepath.Join(t.TempDir(), "members.db"),
	}

	deps, err := ConnectDB(ctx, nil, appCfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB failed: %v", err)
	}
	defer func() {
		if sqlDB, err := deps.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := EnsureSchema(ctx, nil, appCfg, deps, testLogger()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	// Schema must be usable and the unique indexes in place.
	if err := deps.DB.WithContext(ctx).Create(&models.Member{
		Name: "John", Surname: "Doe", Mobile: "12345678", Email: "john@example.com",
		RegistrationDate: time.Now().UTC(),
	}).Error; err != nil {
		t.Fatalf("insert after migration failed: %v", err)
	}

	dup := deps.DB.WithContext(ctx).Create(&models.Member{
		Name: "Jane", Surname: "Roe", Mobile: "12345678", Email: "jane@example.com",
		RegistrationDate: time.Now().UTC(),
	}).Error
	if dup == nil {
		t.Error("expected unique index violation on duplicate mobile, got nil")
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	appCfg := AppConfig{
		DatabasePath: filepath.Join(t.TempDir(), "members.db"),
	}

	deps, err := ConnectDB(ctx, nil, appCfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB failed: %v", err)
	}
	defer func() {
		if sqlDB, err := deps.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	for i := 0; i < 2; i++ {
		if err := EnsureSchema(ctx, nil, appCfg, deps, testLogger()); err != nil {
			t.Fatalf("EnsureSchema run %d failed: %v", i+1, err)
		}
	}
}
