package httpadapter

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"testing"
	"time"

	"chatagotchi/internal/app/auth"
	"chatagotchi/internal/app/game"
	"chatagotchi/internal/app/ports"
	"chatagotchi/internal/domain/pet"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func TestRequireAuthenticatedUser_FromHeaders(t *testing.T) {
	salt := []byte("salt")
	key := "k1"
	h := Handler{
		AuthUC: auth.VerifyUseCase{Credentials: fakeCredentialStore{
			cred: ports.PlayerCredentialRecord{
				UserID:  "usr-1",
				KeySalt: salt,
				KeyHash: hashForTest(salt, key),
				Status:  auth.CredentialStatusActive,
			},
		}},
	}
	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(userIDHeader, "usr-1")
	ctx.Request.Header.Set(userKeyHeader, key)

	userID, err := h.requireAuthenticatedUser(context.Background(), ctx)
	if err != nil {
		t.Fatalf("requireAuthenticatedUser error: %v", err)
	}
	if userID != "usr-1" {
		t.Fatalf("unexpected user id: %q", userID)
	}
}

func TestRequireAuthenticatedUser_MissingHeader(t *testing.T) {
	h := Handler{}
	ctx := &app.RequestContext{}

	_, err := h.requireAuthenticatedUser(context.Background(), ctx)
	if err != ErrMissingUserCredentials {
		t.Fatalf("expected ErrMissingUserCredentials, got %v", err)
	}
}

func TestRequireAuthenticatedUser_MissingKeyHeader(t *testing.T) {
	h := Handler{}
	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(userIDHeader, "usr-1")

	_, err := h.requireAuthenticatedUser(context.Background(), ctx)
	if err != ErrMissingUserKeyHeader {
		t.Fatalf("expected ErrMissingUserKeyHeader, got %v", err)
	}
}

func TestRequireAuthenticatedUser_InvalidCredentials(t *testing.T) {
	h := Handler{
		AuthUC: auth.VerifyUseCase{Credentials: fakeCredentialStore{}},
	}
	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(userIDHeader, "usr-1")
	ctx.Request.Header.Set(userKeyHeader, "wrong")

	_, err := h.requireAuthenticatedUser(context.Background(), ctx)
	if err != auth.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestWriteError_UnknownToken(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, pet.ErrUnknownToken)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "unknown_token"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_Conflict(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, ports.ErrConflict)

	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "conflict"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_InvalidCredentials(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, auth.ErrInvalidCredentials)

	if got, want := ctx.Response.StatusCode(), consts.StatusUnauthorized; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "invalid_user_credentials"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestFeed_WithoutPetReturnsStartPrompt(t *testing.T) {
	salt := []byte("salt")
	key := "k1"
	h := Handler{
		AuthUC: auth.VerifyUseCase{Credentials: fakeCredentialStore{
			cred: ports.PlayerCredentialRecord{
				UserID:  "usr-1",
				KeySalt: salt,
				KeyHash: hashForTest(salt, key),
				Status:  auth.CredentialStatusActive,
			},
		}},
		GameUC: game.UseCase{
			TxManager: fakeTxManager{},
			Records:   &fakeRecordStore{},
			Events:    &fakeEventStore{},
		},
	}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"food":"🍎"}`))
	ctx.Request.Header.Set(userIDHeader, "usr-1")
	ctx.Request.Header.Set(userKeyHeader, key)

	h.feed(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["petState"] != nil {
		t.Fatalf("expected null petState, got %v", body["petState"])
	}
	if got, want := body["message"], game.NoPetMessage; got != want {
		t.Fatalf("message mismatch: got=%q want=%q", got, want)
	}
}

func TestNewGame_OK(t *testing.T) {
	salt := []byte("salt")
	key := "k1"
	h := Handler{
		AuthUC: auth.VerifyUseCase{Credentials: fakeCredentialStore{
			cred: ports.PlayerCredentialRecord{
				UserID:  "usr-1",
				KeySalt: salt,
				KeyHash: hashForTest(salt, key),
				Status:  auth.CredentialStatusActive,
			},
		}},
		GameUC: game.UseCase{
			TxManager:   fakeTxManager{},
			Records:     &fakeRecordStore{},
			Events:      &fakeEventStore{},
			PickSpecies: func() pet.Species { return pet.SpeciesCat },
		},
	}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"name":"Mochi"}`))
	ctx.Request.Header.Set(userIDHeader, "usr-1")
	ctx.Request.Header.Set(userKeyHeader, key)

	h.newGame(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["message"], "Say hello to Mochi"; got != want {
		t.Fatalf("message mismatch: got=%q want=%q", got, want)
	}
	petState, _ := body["petState"].(map[string]any)
	if got, want := petState["species"], string(pet.SpeciesCat); got != want {
		t.Fatalf("species mismatch: got=%v want=%v", got, want)
	}
}

func TestRegister_OK(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	h := Handler{
		RegisterUC: auth.RegisterUseCase{
			Credentials: &fakeCredentialStore{},
			Records:     &fakeRecordStore{},
			TxManager:   fakeTxManager{},
			Now:         func() time.Time { return now },
		},
	}
	ctx := &app.RequestContext{}

	h.register(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusCreated; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if _, ok := body["user_id"]; !ok {
		t.Fatalf("expected user_id in response")
	}
	if _, ok := body["user_key"]; !ok {
		t.Fatalf("expected user_key in response")
	}
}

type fakeCredentialStore struct {
	cred ports.PlayerCredentialRecord
}

func (s fakeCredentialStore) Create(_ context.Context, _ ports.PlayerCredentialRecord) error {
	return nil
}

func (s fakeCredentialStore) GetByUserID(_ context.Context, _ string) (ports.PlayerCredentialRecord, error) {
	if s.cred.UserID == "" {
		return ports.PlayerCredentialRecord{}, ports.ErrNotFound
	}
	return s.cred, nil
}

type fakeRecordStore struct {
	record *ports.GameRecord
}

func (s *fakeRecordStore) GetByUserID(_ context.Context, _ string) (ports.GameRecord, error) {
	if s.record == nil {
		return ports.GameRecord{}, ports.ErrNotFound
	}
	return *s.record, nil
}

func (s *fakeRecordStore) SaveWithVersion(_ context.Context, record ports.GameRecord, _ int64) error {
	s.record = &record
	return nil
}

type fakeEventStore struct {
	events []ports.GameEvent
}

func (s *fakeEventStore) Append(_ context.Context, _ string, events []ports.GameEvent) error {
	s.events = append(s.events, events...)
	return nil
}

func (s *fakeEventStore) ListByUserID(_ context.Context, _ string, _ int) ([]ports.GameEvent, error) {
	return s.events, nil
}

type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func hashForTest(salt []byte, key string) []byte {
	b := make([]byte, 0, len(salt)+len(key))
	b = append(b, salt...)
	b = append(b, key...)
	sum := sha256.Sum256(b)
	out := make([]byte, len(sum))
	copy(out, sum[:])
	return out
}
