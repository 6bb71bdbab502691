package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"chatagotchi/internal/app/ports"
)

type fakeCredentialRepo struct {
	creds     map[string]ports.PlayerCredentialRecord
	createErr error
}

func newFakeCredentialRepo() *fakeCredentialRepo {
	return &fakeCredentialRepo{creds: map[string]ports.PlayerCredentialRecord{}}
}

func (r *fakeCredentialRepo) Create(_ context.Context, credential ports.PlayerCredentialRecord) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.creds[credential.UserID]; ok {
		return ports.ErrConflict
	}
	r.creds[credential.UserID] = credential
	return nil
}

func (r *fakeCredentialRepo) GetByUserID(_ context.Context, userID string) (ports.PlayerCredentialRecord, error) {
	cred, ok := r.creds[userID]
	if !ok {
		return ports.PlayerCredentialRecord{}, ports.ErrNotFound
	}
	return cred, nil
}

type fakeRecordRepo struct {
	records map[string]ports.GameRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: map[string]ports.GameRecord{}}
}

func (r *fakeRecordRepo) GetByUserID(_ context.Context, userID string) (ports.GameRecord, error) {
	record, ok := r.records[userID]
	if !ok {
		return ports.GameRecord{}, ports.ErrNotFound
	}
	return record, nil
}

func (r *fakeRecordRepo) SaveWithVersion(_ context.Context, record ports.GameRecord, expectedVersion int64) error {
	if _, ok := r.records[record.UserID]; ok && expectedVersion == 0 {
		return ports.ErrConflict
	}
	r.records[record.UserID] = record
	return nil
}

type passTx struct{}

func (passTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestRegister_MintsCredentialAndSeedsRecord(t *testing.T) {
	creds := newFakeCredentialRepo()
	records := newFakeRecordRepo()
	uc := RegisterUseCase{
		Credentials: creds,
		Records:     records,
		TxManager:   passTx{},
		Now:         func() time.Time { return time.Unix(1700000000, 0) },
	}

	resp, err := uc.Execute(context.Background(), RegisterRequest{})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !strings.HasPrefix(resp.UserID, "usr_") {
		t.Fatalf("unexpected user id %q", resp.UserID)
	}
	if resp.UserKey == "" {
		t.Fatal("expected a user key")
	}
	if _, ok := creds.creds[resp.UserID]; !ok {
		t.Fatal("credential not stored")
	}
	record, ok := records.records[resp.UserID]
	if !ok {
		t.Fatal("game record not seeded")
	}
	if record.Pet != nil || record.Achievements != nil || record.Version != 1 {
		t.Fatalf("seed record must be empty at version 1: %+v", record)
	}
}

func TestRegister_RejectsMissingCollaborators(t *testing.T) {
	uc := RegisterUseCase{}
	if _, err := uc.Execute(context.Background(), RegisterRequest{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestVerify_AcceptsOnlyTheIssuedKey(t *testing.T) {
	creds := newFakeCredentialRepo()
	records := newFakeRecordRepo()
	register := RegisterUseCase{Credentials: creds, Records: records, TxManager: passTx{}}
	resp, err := register.Execute(context.Background(), RegisterRequest{})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}

	verify := VerifyUseCase{Credentials: creds}
	if err := verify.Execute(context.Background(), VerifyRequest{UserID: resp.UserID, UserKey: resp.UserKey}); err != nil {
		t.Fatalf("expected issued key to verify, got %v", err)
	}
	if err := verify.Execute(context.Background(), VerifyRequest{UserID: resp.UserID, UserKey: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := verify.Execute(context.Background(), VerifyRequest{UserID: "usr_unknown", UserKey: "x"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
	if err := verify.Execute(context.Background(), VerifyRequest{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
