package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-god/internal/crypto"
	"github.com/MKhiriev/go-pass-god/internal/store"
	"github.com/MKhiriev/go-pass-god/models"
)

// prefixCipher seals by prefixing; tokens listed in broken fail to open.
type prefixCipher struct {
	broken map[string]bool
}

func (c prefixCipher) Encrypt(plaintext []byte) (string, error) {
	return "enc:" + string(plaintext), nil
}

func (c prefixCipher) Decrypt(token string) ([]byte, error) {
	if c.broken[token] || !strings.HasPrefix(token, "enc:") {
		return nil, crypto.ErrDecryption
	}
	return []byte(strings.TrimPrefix(token, "enc:")), nil
}

func (c prefixCipher) EncryptString(plaintext string) (string, error) {
	return c.Encrypt([]byte(plaintext))
}

func (c prefixCipher) DecryptString(token string) (string, error) {
	b, err := c.Decrypt(token)
	return string(b), err
}

type fakeNotifications struct {
	mu      sync.Mutex
	created []models.Notification
	err     error
}

func (f *fakeNotifications) CreateNotification(_ context.Context, n models.Notification) (models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.Notification{}, f.err
	}
	n.NotificationID = int64(len(f.created) + 1)
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeNotifications) ListNotifications(_ context.Context, filter models.NotificationFilter) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Notification
	for _, n := range f.created {
		if n.UserID == filter.UserID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotifications) MarkNotificationRead(_ context.Context, userID, notificationID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.created {
		if f.created[i].NotificationID == notificationID && f.created[i].UserID == userID {
			f.created[i].IsRead = true
			return nil
		}
	}
	return store.ErrNotFound
}

type fakePasswords struct {
	items   []models.Password
	listErr error
	updates []models.PasswordUpdate
}

func (f *fakePasswords) CreatePassword(_ context.Context, p models.Password) (models.Password, error) {
	p.PasswordID = int64(len(f.items) + 1)
	p.CreatedAt = time.Now()
	f.items = append(f.items, p)
	return p, nil
}

func (f *fakePasswords) ListPasswords(_ context.Context, userID int64, page models.Page) ([]models.Password, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Password{}
	for _, p := range f.items {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return paginate(out, page), nil
}

func (f *fakePasswords) GetPassword(_ context.Context, userID, passwordID int64) (models.Password, error) {
	for _, p := range f.items {
		if p.UserID == userID && p.PasswordID == passwordID {
			return p, nil
		}
	}
	return models.Password{}, store.ErrNotFound
}

func (f *fakePasswords) UpdatePassword(ctx context.Context, userID, passwordID int64, update models.PasswordUpdate) (models.Password, error) {
	f.updates = append(f.updates, update)
	p, err := f.GetPassword(ctx, userID, passwordID)
	if err != nil {
		return models.Password{}, err
	}
	if update.Title != nil {
		p.Title = *update.Title
	}
	if update.EncryptedPassword != nil {
		p.EncryptedPassword = *update.EncryptedPassword
	}
	f.items[passwordID-1] = p
	return p, nil
}

func (f *fakePasswords) DeletePassword(ctx context.Context, userID, passwordID int64) error {
	_, err := f.GetPassword(ctx, userID, passwordID)
	return err
}

type fakeSocialAccounts struct {
	items []models.SocialAccount
}

func (f *fakeSocialAccounts) CreateSocialAccount(_ context.Context, a models.SocialAccount) (models.SocialAccount, error) {
	a.SocialAccountID = int64(len(f.items) + 1)
	f.items = append(f.items, a)
	return a, nil
}

func (f *fakeSocialAccounts) ListSocialAccounts(_ context.Context, userID int64, page models.Page) ([]models.SocialAccount, error) {
	out := []models.SocialAccount{}
	for _, a := range f.items {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return paginate(out, page), nil
}

func (f *fakeSocialAccounts) GetSocialAccount(_ context.Context, userID, accountID int64) (models.SocialAccount, error) {
	for _, a := range f.items {
		if a.UserID == userID && a.SocialAccountID == accountID {
			return a, nil
		}
	}
	return models.SocialAccount{}, store.ErrNotFound
}

func (f *fakeSocialAccounts) UpdateSocialAccount(ctx context.Context, userID, accountID int64, update models.SocialAccountUpdate) (models.SocialAccount, error) {
	a, err := f.GetSocialAccount(ctx, userID, accountID)
	if err != nil {
		return models.SocialAccount{}, err
	}
	if update.Platform != nil {
		a.Platform = *update.Platform
	}
	if update.EncryptedPassword != nil {
		a.EncryptedPassword = *update.EncryptedPassword
	}
	f.items[accountID-1] = a
	return a, nil
}

func (f *fakeSocialAccounts) DeleteSocialAccount(ctx context.Context, userID, accountID int64) error {
	_, err := f.GetSocialAccount(ctx, userID, accountID)
	return err
}

type fakeNotes struct {
	items []models.SecureNote
}

func (f *fakeNotes) CreateNote(_ context.Context, n models.SecureNote) (models.SecureNote, error) {
	n.NoteID = int64(len(f.items) + 1)
	f.items = append(f.items, n)
	return n, nil
}

func (f *fakeNotes) ListNotes(_ context.Context, userID int64, page models.Page) ([]models.SecureNote, error) {
	out := []models.SecureNote{}
	for _, n := range f.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return paginate(out, page), nil
}

func (f *fakeNotes) GetNote(_ context.Context, userID, noteID int64) (models.SecureNote, error) {
	for _, n := range f.items {
		if n.UserID == userID && n.NoteID == noteID {
			return n, nil
		}
	}
	return models.SecureNote{}, store.ErrNotFound
}

func (f *fakeNotes) UpdateNote(ctx context.Context, userID, noteID int64, title, encryptedContent *string) (models.SecureNote, error) {
	n, err := f.GetNote(ctx, userID, noteID)
	if err != nil {
		return models.SecureNote{}, err
	}
	if title != nil {
		n.Title = *title
	}
	if encryptedContent != nil {
		n.EncryptedContent = *encryptedContent
	}
	f.items[noteID-1] = n
	return n, nil
}

func (f *fakeNotes) DeleteNote(ctx context.Context, userID, noteID int64) error {
	_, err := f.GetNote(ctx, userID, noteID)
	return err
}

type fakeAlerts struct {
	items []models.BreachAlert
	err   error
}

func (f *fakeAlerts) CreateBreachAlert(_ context.Context, a models.BreachAlert) (models.BreachAlert, error) {
	if f.err != nil {
		return models.BreachAlert{}, f.err
	}
	a.AlertID = int64(len(f.items) + 1)
	f.items = append(f.items, a)
	return a, nil
}

func (f *fakeAlerts) ListBreachAlerts(_ context.Context, filter models.AlertFilter) ([]models.BreachAlert, error) {
	out := []models.BreachAlert{}
	for _, a := range f.items {
		if a.UserID == filter.UserID && (filter.Resolved == nil || *filter.Resolved == a.IsResolved) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAlerts) ListAllBreachAlerts(_ context.Context, page models.Page) ([]models.BreachAlert, error) {
	return paginate(f.items, page), nil
}

func (f *fakeAlerts) ResolveBreachAlert(_ context.Context, userID, alertID int64) (models.BreachAlert, error) {
	for i := range f.items {
		if f.items[i].AlertID == alertID && f.items[i].UserID == userID {
			f.items[i].IsResolved = true
			return f.items[i], nil
		}
	}
	return models.BreachAlert{}, store.ErrNotFound
}

type fakePrivateStorage struct {
	storage *models.PrivateStorage
	items   []models.PrivateItem
}

func (f *fakePrivateStorage) GetPrivateStorage(_ context.Context, userID int64) (models.PrivateStorage, error) {
	if f.storage == nil || f.storage.UserID != userID {
		return models.PrivateStorage{}, store.ErrNotFound
	}
	return *f.storage, nil
}

func (f *fakePrivateStorage) CreatePrivateStorage(_ context.Context, s models.PrivateStorage) (models.PrivateStorage, error) {
	if f.storage != nil {
		return models.PrivateStorage{}, store.ErrAlreadyExists
	}
	s.StorageID = 1
	f.storage = &s
	return s, nil
}

func (f *fakePrivateStorage) SetPrivateStorageLocked(_ context.Context, userID int64, locked bool, at time.Time) error {
	if f.storage == nil || f.storage.UserID != userID {
		return store.ErrNotFound
	}
	f.storage.IsLocked = locked
	f.storage.LastAccessed = at
	return nil
}

func (f *fakePrivateStorage) CreatePrivateItem(_ context.Context, item models.PrivateItem) (models.PrivateItem, error) {
	item.ItemID = int64(len(f.items) + 1)
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakePrivateStorage) ListPrivateItems(_ context.Context, storageID int64, itemType *string) ([]models.PrivateItem, error) {
	out := []models.PrivateItem{}
	for _, item := range f.items {
		if item.StorageID == storageID && (itemType == nil || *itemType == item.ItemType) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakePrivateStorage) DeletePrivateItem(_ context.Context, storageID, itemID int64) error {
	for _, item := range f.items {
		if item.StorageID == storageID && item.ItemID == itemID {
			return nil
		}
	}
	return store.ErrNotFound
}

// fakeSharedSecrets keeps rows keyed by token hash and consumes them under
// one lock, like the conditional update in Postgres.
type fakeSharedSecrets struct {
	mu      sync.Mutex
	rows    map[string]*models.SharedSecret
	deleted []int64
}

func newFakeSharedSecrets() *fakeSharedSecrets {
	return &fakeSharedSecrets{rows: map[string]*models.SharedSecret{}}
}

func (f *fakeSharedSecrets) CreateSharedSecret(_ context.Context, s models.SharedSecret) (models.SharedSecret, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.SharedSecretID = int64(len(f.rows) + 1)
	f.rows[s.TokenHash] = &s
	return s, nil
}

func (f *fakeSharedSecrets) ConsumeSharedSecret(_ context.Context, tokenHash string, now time.Time) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[tokenHash]
	if !ok || row.Used || !row.ExpiresAt.After(now) {
		return "", false, nil
	}
	row.Used = true
	row.UsedAt = &now
	return row.EncryptedData, true, nil
}

func (f *fakeSharedSecrets) ListSharedSecrets(_ context.Context, creatorID int64, _ models.Page) ([]models.SharedSecret, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.SharedSecret{}
	for _, row := range f.rows {
		if row.CreatedBy == creatorID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *fakeSharedSecrets) DeleteSharedSecret(_ context.Context, creatorID, secretID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for hash, row := range f.rows {
		if row.SharedSecretID == secretID && row.CreatedBy == creatorID {
			delete(f.rows, hash)
			f.deleted = append(f.deleted, secretID)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeSharedSecrets) DeleteExpiredSharedSecrets(context.Context, time.Time, time.Time) (int64, error) {
	return 0, nil
}

func paginate[T any](items []T, page models.Page) []T {
	page = page.Normalize()
	if page.Skip >= uint64(len(items)) {
		return []T{}
	}
	end := page.Skip + page.Limit
	if end > uint64(len(items)) {
		end = uint64(len(items))
	}
	return items[page.Skip:end]
}

func ptr[T any](v T) *T {
	return &v
}
