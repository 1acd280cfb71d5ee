package flash_test

import (
	"net/http/httptest"
	"testing"

	"github.com/jcollier/memberportal/internal/app/system/flash"
	"go.uber.org/zap"
)

func newManager(t *testing.T) *flash.Manager {
	t.Helper()
	m, err := flash.NewManager("test-key-0123456789", "portal-session", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return m
}

func TestSetAndTake(t *testing.T) {
	m := newManager(t)

	// First request sets the flash.
	setReq := httptest.NewRequest("POST", "/register", nil)
	setRec := httptest.NewRecorder()
	m.Set(setRec, setReq, "Welcome John Doe! Registration successful.")

	cookies := setRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie to be set")
	}

	// Next request carries the cookie and consumes the flash.
	getReq := httptest.NewRequest("GET", "/register", nil)
	for _, c := range cookies {
		getReq.AddCookie(c)
	}
	getRec := httptest.NewRecorder()

	msg, ok := m.Take(getRec, getReq)
	if !ok {
		t.Fatal("expected a flash message")
	}
	if msg != "Welcome John Doe! Registration successful." {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestTake_Empty(t *testing.T) {
	m := newManager(t)

	req := httptest.NewRequest("GET", "/register", nil)
	rec := httptest.NewRecorder()

	if msg, ok := m.Take(rec, req); ok {
		t.Errorf("expected no flash, got %q", msg)
	}
}

func TestNewManager_EmptyName(t *testing.T) {
	if _, err := flash.NewManager("key", "", false, zap.NewNop()); err == nil {
		t.Error("expected error for empty session name")
	}
}

func TestNewManager_GeneratedKey(t *testing.T) {
	m, err := flash.NewManager("", "portal-session", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager with empty key failed: %v", err)
	}

	req := httptest.NewRequest("POST", "/register", nil)
	rec := httptest.NewRecorder()
	m.Set(rec, req, "hello")
	if len(rec.Result().Cookies()) == 0 {
		t.Error("expected a cookie even with a generated key")
	}
}
