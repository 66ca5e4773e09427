package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, "done", Payload{"groups": []int{1, 2}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"message":"done","groups":[1,2]}`, rec.Body.String())
}

func TestCreatedPayloadCannotOverrideEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, "made", Payload{"success": false, "token": "abc"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "made", env.Message)
	assert.JSONEq(t, `{"success":true,"message":"made","token":"abc"}`, body)
}

func TestErrorOmitsPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "Group not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Group not found"}`, rec.Body.String())
}

func TestInternalErrorHidesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	InternalError(rec, "Internal Server Error", errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

type loginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantOK  bool
		wantMsg string
	}{
		{name: "valid", body: `{"email":"a@example.com","password":"pw"}`, wantOK: true},
		{name: "malformed", body: `{"email":`, wantMsg: "invalid JSON"},
		{name: "missing password", body: `{"email":"a@example.com"}`, wantMsg: "password is required"},
		{name: "bad email", body: `{"email":"nope","password":"pw"}`, wantMsg: "email is not a valid email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dst loginBody
			ok := Decode(rec, req, &dst)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "a@example.com", dst.Email)
				return
			}
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeEnvelope(t, rec).Message, tt.wantMsg)
		})
	}
}
