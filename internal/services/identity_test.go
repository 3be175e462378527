package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/journalquiz/internal/common"
	"github.com/dmitrijs2005/journalquiz/internal/logging"
	"github.com/dmitrijs2005/journalquiz/internal/models"
	"github.com/dmitrijs2005/journalquiz/internal/repositories/kv"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := kv.Open(context.Background(), kv.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newIdentity(t *testing.T) (IdentityService, *sqlx.DB) {
	t.Helper()
	db := setupDB(t)
	return NewIdentityService(db, logging.Discard()), db
}

func storedUsers(t *testing.T, db *sqlx.DB) []models.User {
	t.Helper()
	raw, err := kv.NewRepository(db).Get(context.Background(), usersKey)
	require.NoError(t, err)
	if raw == nil {
		return nil
	}
	var users []models.User
	require.NoError(t, json.Unmarshal(raw, &users))
	return users
}

func register(t *testing.T, s IdentityService, email, phone string) *models.User {
	t.Helper()
	u, err := s.Register(context.Background(), "Amina", email, []byte("pw"), phone)
	require.NoError(t, err)
	return u
}

// ---- TESTS ----

func TestRegister_CreatesRecordAndSession(t *testing.T) {
	s, db := newIdentity(t)
	ctx := context.Background()

	u := register(t, s, "amina@example.ma", "0600000001")
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, 0, u.Progress)
	assert.Equal(t, "Amina", u.Name)

	users := storedUsers(t, db)
	require.Len(t, users, 1)
	assert.Equal(t, u.ID, users[0].ID)
	assert.NotEmpty(t, users[0].Credential.Verifier)
	assert.NotContains(t, string(mustJSON(t, users[0])), `"pw"`)

	cur, err := s.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, u.ID, cur.ID)
}

func TestRegister_DuplicateEmailOrPhone(t *testing.T) {
	tests := []struct {
		name  string
		email string
		phone string
	}{
		{name: "same email", email: "a@x.ma", phone: "0600000009"},
		{name: "same phone", email: "other@x.ma", phone: "0600000001"},
		{name: "both", email: "a@x.ma", phone: "0600000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, db := newIdentity(t)
			register(t, s, "a@x.ma", "0600000001")

			_, err := s.Register(context.Background(), "B", tt.email, []byte("pw2"), tt.phone)
			require.ErrorIs(t, err, ErrDuplicateIdentity)
			assert.Len(t, storedUsers(t, db), 1, "no new record must be created")
		})
	}
}

func TestRegister_MissingFields(t *testing.T) {
	s, db := newIdentity(t)

	ctx := context.Background()

	_, err := s.Register(ctx, "A", " ", []byte("pw"), "0600")
	require.ErrorIs(t, err, common.ErrorMissingField)
	_, err = s.Register(ctx, "A", "a@x.ma", []byte("pw"), "  ")
	require.ErrorIs(t, err, common.ErrorMissingField)
	_, err = s.Register(ctx, "A", "a@x.ma", nil, "0600")
	require.ErrorIs(t, err, common.ErrorMissingField)
	assert.Empty(t, storedUsers(t, db))

	u, err := s.Register(ctx, "", "a@x.ma", []byte("pw"), "0600")
	require.NoError(t, err)
	assert.Empty(t, u.Name)
}

func TestLogin_ByEmailOrPhone(t *testing.T) {
	s, _ := newIdentity(t)
	ctx := context.Background()
	u := register(t, s, "a@x.ma", "0600000001")
	require.NoError(t, s.Logout(ctx))

	for _, id := range []string{"a@x.ma", "0600000001", "  a@x.ma  "} {
		got, err := s.Login(ctx, id, []byte("pw"))
		require.NoError(t, err, id)
		assert.Equal(t, u.ID, got.ID)

		cur, err := s.CurrentSession(ctx)
		require.NoError(t, err)
		require.NotNil(t, cur)
		assert.Equal(t, u.ID, cur.ID)
		require.NoError(t, s.Logout(ctx))
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s, _ := newIdentity(t)
	ctx := context.Background()
	register(t, s, "a@x.ma", "0600000001")
	require.NoError(t, s.Logout(ctx))

	_, err := s.Login(ctx, "a@x.ma", []byte("wrong"))
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(ctx, "nobody@x.ma", []byte("pw"))
	require.ErrorIs(t, err, ErrInvalidCredentials)

	cur, err := s.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur, "failed login must not create a session")
}

func TestLogout_Idempotent(t *testing.T) {
	s, _ := newIdentity(t)
	ctx := context.Background()
	register(t, s, "a@x.ma", "0600000001")

	for i := 0; i < 2; i++ {
		require.NoError(t, s.Logout(ctx))
		cur, err := s.CurrentSession(ctx)
		require.NoError(t, err)
		assert.Nil(t, cur)
	}
}

func TestSaveProgress_RoundTrip(t *testing.T) {
	s, db := newIdentity(t)
	ctx := context.Background()
	u := register(t, s, "a@x.ma", "0600000001")
	register(t, s, "b@x.ma", "0600000002")
	_, err := s.Login(ctx, "a@x.ma", []byte("pw"))
	require.NoError(t, err)

	for _, k := range []int{0, 1, 4, 5} {
		require.NoError(t, s.SaveProgress(ctx, k))

		cur, err := s.CurrentSession(ctx)
		require.NoError(t, err)
		assert.Equal(t, k, cur.Progress)

		for _, rec := range storedUsers(t, db) {
			if rec.ID == u.ID {
				assert.Equal(t, k, rec.Progress, "record and session must agree")
			} else {
				assert.Equal(t, 0, rec.Progress, "other records untouched")
			}
		}
	}
}

func TestSaveProgress_SurvivesRelogin(t *testing.T) {
	s, _ := newIdentity(t)
	ctx := context.Background()
	register(t, s, "a@x.ma", "0600000001")
	require.NoError(t, s.SaveProgress(ctx, 3))
	require.NoError(t, s.Logout(ctx))

	u, err := s.Login(ctx, "0600000001", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, 3, u.Progress)
}

func TestSaveProgress_NoSessionIsIgnored(t *testing.T) {
	s, db := newIdentity(t)
	ctx := context.Background()
	register(t, s, "a@x.ma", "0600000001")
	require.NoError(t, s.Logout(ctx))

	require.NoError(t, s.SaveProgress(ctx, 2))
	assert.Equal(t, 0, storedUsers(t, db)[0].Progress)
}

func TestSaveProgress_Negative(t *testing.T) {
	s, _ := newIdentity(t)
	require.ErrorIs(t, s.SaveProgress(context.Background(), -1), ErrInvalidProgress)
}

func TestResetProgress(t *testing.T) {
	s, _ := newIdentity(t)
	ctx := context.Background()
	register(t, s, "a@x.ma", "0600000001")
	require.NoError(t, s.SaveProgress(ctx, 4))

	require.NoError(t, s.ResetProgress(ctx))

	cur, err := s.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, cur.Progress)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
