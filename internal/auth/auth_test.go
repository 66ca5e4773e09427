package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/bulkmail/internal/domain"
)

const testSecret = "test-secret-test-secret"

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

var testUser = &domain.User{ID: "user-1", Email: "owner@example.com"}

func TestIssueAndVerify(t *testing.T) {
	iss := NewIssuer(testSecret, time.Hour, NewMemoryRevocations())

	token, issued, err := iss.Issue(testUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := iss.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)
	assert.Equal(t, "owner@example.com", id.Email)
	assert.Equal(t, issued.TokenID, id.TokenID)
	assert.WithinDuration(t, issued.Expires, id.Expires, time.Second)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	token, _, err := NewIssuer("another-secret-another", time.Hour, nil).Issue(testUser)
	require.NoError(t, err)

	_, err = NewIssuer(testSecret, time.Hour, nil).Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	iss := NewIssuer(testSecret, time.Minute, nil)
	base := time.Now()
	iss.now = func() time.Time { return base }
	token, _, err := iss.Issue(testUser)
	require.NoError(t, err)

	iss.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = iss.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewIssuer(testSecret, time.Hour, nil).Verify(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRevokeWithMemoryStore(t *testing.T) {
	iss := NewIssuer(testSecret, time.Hour, NewMemoryRevocations())
	token, id, err := iss.Issue(testUser)
	require.NoError(t, err)

	require.NoError(t, iss.Revoke(context.Background(), id))
	_, err = iss.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestRevokeWithRedisStore(t *testing.T) {
	mr, client := setupTestRedis(t)
	iss := NewIssuer(testSecret, time.Hour, NewRevocationStore(client))
	token, id, err := iss.Issue(testUser)
	require.NoError(t, err)

	require.NoError(t, iss.Revoke(context.Background(), id))
	assert.True(t, mr.Exists("bulkmail:revoked:"+id.TokenID))
	ttl := mr.TTL("bulkmail:revoked:" + id.TokenID)
	assert.True(t, ttl > 59*time.Minute && ttl <= time.Hour, "ttl = %s", ttl)

	_, err = iss.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	mr.FastForward(time.Hour + time.Second)
	revoked, err := NewRedisRevocations(client).IsRevoked(context.Background(), id.TokenID)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevocationsUnavailable(t *testing.T) {
	mr, client := setupTestRedis(t)
	mr.Close()

	_, err := NewRedisRevocations(client).IsRevoked(context.Background(), "jti")
	assert.Error(t, err)
}

func TestMemoryRevocationsExpire(t *testing.T) {
	m := NewMemoryRevocations()
	base := time.Now()
	m.now = func() time.Time { return base }

	require.NoError(t, m.Revoke(context.Background(), "a", time.Minute))
	revoked, _ := m.IsRevoked(context.Background(), "a")
	assert.True(t, revoked)

	m.now = func() time.Time { return base.Add(time.Minute) }
	revoked, _ = m.IsRevoked(context.Background(), "a")
	assert.False(t, revoked)

	require.NoError(t, m.Revoke(context.Background(), "b", time.Minute))
	assert.NotContains(t, m.revoked, "a")
}

func TestNewRevocationStoreFallback(t *testing.T) {
	assert.IsType(t, &MemoryRevocations{}, NewRevocationStore(nil))
}

func TestTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", TokenFromRequest(r, "token"))

	r.AddCookie(&http.Cookie{Name: "token", Value: "from-cookie"})
	assert.Equal(t, "from-cookie", TokenFromRequest(r, "token"))

	r.Header.Set("Authorization", "Bearer from-header")
	assert.Equal(t, "from-header", TokenFromRequest(r, "token"))
}

func TestRequireUser(t *testing.T) {
	iss := NewIssuer(testSecret, time.Hour, NewMemoryRevocations())
	mw := NewMiddleware(iss, "token")
	token, id, err := iss.Issue(testUser)
	require.NoError(t, err)

	var seen *domain.Identity
	h := mw.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not logged in")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "user-1", seen.UserID)

	require.NoError(t, iss.Revoke(context.Background(), id))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenCookies(t *testing.T) {
	mw := NewMiddleware(NewIssuer(testSecret, time.Hour, nil), "token")

	rec := httptest.NewRecorder()
	mw.SetTokenCookie(rec, "abc", time.Now().Add(time.Hour))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "abc", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	rec = httptest.NewRecorder()
	mw.ClearTokenCookie(rec)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}
