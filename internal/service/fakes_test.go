package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/akarpov87/passvault/internal/errs"
	"github.com/akarpov87/passvault/internal/limiter"
	"github.com/akarpov87/passvault/internal/model"
	"github.com/akarpov87/passvault/internal/repository"
)

type fakeAccounts struct {
	byLogin map[string]*model.Account

	createErr error
	getErr    error
	deleteErr error
}

var _ repository.AccountRepository = (*fakeAccounts)(nil)

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byLogin: map[string]*model.Account{}}
}

func (f *fakeAccounts) Create(_ context.Context, a *model.Account) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byLogin[a.Login]; exists {
		return errs.ErrDuplicateLogin
	}
	cpy := *a
	f.byLogin[a.Login] = &cpy
	return nil
}

func (f *fakeAccounts) GetByID(_ context.Context, id uuid.UUID) (*model.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, a := range f.byLogin {
		if a.ID == id {
			c := *a
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeAccounts) GetByLogin(_ context.Context, login string) (*model.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	a, ok := f.byLogin[login]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *a
	return &c, nil
}

func (f *fakeAccounts) Delete(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for login, a := range f.byLogin {
		if a.ID == id {
			delete(f.byLogin, login)
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakeCreds struct {
	byID map[uuid.UUID]*model.CredentialRecord

	insertErr error
	listErr   error
	deleteErr error
}

var _ repository.CredentialRepository = (*fakeCreds)(nil)

func newFakeCreds() *fakeCreds {
	return &fakeCreds{byID: map[uuid.UUID]*model.CredentialRecord{}}
}

func (f *fakeCreds) Insert(_ context.Context, rec *model.CredentialRecord) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	cpy := *rec
	cpy.Ciphertext = append(model.EncryptedBlob(nil), rec.Ciphertext...)
	f.byID[rec.ID] = &cpy
	return nil
}

func (f *fakeCreds) GetByID(_ context.Context, id uuid.UUID) (*model.CredentialRecord, error) {
	rec, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *rec
	return &c, nil
}

func (f *fakeCreds) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]model.CredentialRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.CredentialRecord
	for _, rec := range f.byID {
		if rec.OwnerID == ownerID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeCreds) DeleteByID(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeLimiter struct {
	allowOK  bool
	allowErr error

	failBlocked bool
	failErr     error

	successErr error

	allowCalls   int
	failureCalls int
	successCalls int
}

var _ limiter.Limiter = (*fakeLimiter)(nil)

func (l *fakeLimiter) Allow(context.Context, string, []byte) (bool, time.Duration, error) {
	l.allowCalls++
	return l.allowOK, 0, l.allowErr
}

func (l *fakeLimiter) Success(context.Context, string, []byte) error {
	l.successCalls++
	return l.successErr
}

func (l *fakeLimiter) Failure(context.Context, string, []byte) (bool, time.Duration, error) {
	l.failureCalls++
	return l.failBlocked, 0, l.failErr
}
