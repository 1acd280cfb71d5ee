package memberstore_test

import (
	"errors"
	"testing"

	memberstore "github.com/jcollier/memberportal/internal/app/store/members"
	"github.com/jcollier/memberportal/internal/domain/models"
	"github.com/jcollier/memberportal/internal/testutil"
)

func TestInsert_AssignsIDAndTimestamp(t *testing.T) {
	store := memberstore.New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Insert(ctx, models.Member{
		Name:    "John",
		Surname: "Doe",
		Mobile:  "12345678",
		Email:   "john@example.com",
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if created.ID == 0 {
		t.Error("expected ID to be assigned")
	}
	if created.RegistrationDate.IsZero() {
		t.Error("expected RegistrationDate to be set")
	}
}

func TestInsert_NormalizesBeforeStorage(t *testing.T) {
	store := memberstore.New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Insert(ctx, models.Member{
		Name:    "  John ",
		Surname: "Doe",
		Mobile:  "1234-5678",
		Email:   "Foo@Bar.COM",
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if created.Mobile != "12345678" {
		t.Errorf("Mobile = %q, want %q", created.Mobile, "12345678")
	}
	if created.Email != "foo@bar.com" {
		t.Errorf("Email = %q, want %q", created.Email, "foo@bar.com")
	}
	if created.Name != "John" {
		t.Errorf("Name = %q, want %q", created.Name, "John")
	}
}

func TestInsert_DuplicateMobile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateMember(ctx, "John", "Doe", "1234-5678", "john@example.com")

	// Same mobile once normalized, different formatting and email.
	_, err := store.Insert(ctx, models.Member{
		Name:    "Jane",
		Surname: "Roe",
		Mobile:  "1234 5678",
		Email:   "jane@example.com",
	})
	if !errors.Is(err, memberstore.ErrDuplicateMobile) {
		t.Fatalf("expected ErrDuplicateMobile, got %v", err)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 member after rejected insert, got %d", n)
	}
}

func TestInsert_DuplicateEmailCaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateMember(ctx, "John", "Doe", "12345678", "john@example.com")

	// Same email differing only in case, different mobile.
	_, err := store.Insert(ctx, models.Member{
		Name:    "Jane",
		Surname: "Roe",
		Mobile:  "87654321",
		Email:   "John@Example.COM",
	})
	if !errors.Is(err, memberstore.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestListAll_OrderedByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateMember(ctx, "Alice", "Adams", "11111111", "alice@example.com")
	fixtures.CreateMember(ctx, "Bob", "Brown", "22222222", "bob@example.com")
	fixtures.CreateMember(ctx, "Cara", "Clark", "33333333", "cara@example.com")

	members, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}

	if len(members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(members))
	}
	for i := 1; i < len(members); i++ {
		if members[i].ID <= members[i-1].ID {
			t.Errorf("expected ascending ids, got %d then %d", members[i-1].ID, members[i].ID)
		}
	}
	for _, m := range members {
		if m.RegistrationDate.IsZero() {
			t.Errorf("member %d has zero registration date", m.ID)
		}
	}
}

func TestListAll_Empty(t *testing.T) {
	store := memberstore.New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	members, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("expected no members, got %d", len(members))
	}
}

func TestEach_StreamsInOrderAndRestarts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateMember(ctx, "Alice", "Adams", "11111111", "alice@example.com")
	fixtures.CreateMember(ctx, "Bob", "Brown", "22222222", "bob@example.com")

	collect := func() []uint {
		var ids []uint
		if err := store.Each(ctx, func(m models.Member) error {
			ids = append(ids, m.ID)
			return nil
		}); err != nil {
			t.Fatalf("Each failed: %v", err)
		}
		return ids
	}

	first := collect()
	second := collect()

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected 2 members per pass, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("restarted iteration differs at %d: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestEach_StopsOnCallbackError(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateMember(ctx, "Alice", "Adams", "11111111", "alice@example.com")
	fixtures.CreateMember(ctx, "Bob", "Brown", "22222222", "bob@example.com")

	sentinel := errors.New("stop")
	seen := 0
	err := store.Each(ctx, func(models.Member) error {
		seen++
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
	if seen != 1 {
		t.Errorf("expected iteration to stop after 1 member, saw %d", seen)
	}
}
