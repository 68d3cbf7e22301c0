// Package credentials persists the bearer credential in the two places the
// application reads it from: a metadata row in the local database (survives
// restarts) and a cookie file mirrored onto outbound requests. The two must
// stay consistent; Save and Clear always touch both.
package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/umuhoratech/wallet-cli/internal/client/repositories/metadata"
	"github.com/umuhoratech/wallet-cli/internal/common"
	"github.com/umuhoratech/wallet-cli/internal/dbx"
)

const (
	tokenKey        = "auth_token"
	tokenSavedAtKey = "auth_token_saved_at"
)

// Store is the dual-location credential store. Clear is idempotent and safe
// to call concurrently from either state container.
type Store struct {
	db         *sql.DB
	cookiePath string

	mu sync.Mutex // serializes cookie file writes
}

func NewStore(db *sql.DB, cookiePath string) *Store {
	return &Store{db: db, cookiePath: cookiePath}
}

// cookieFile is the on-disk form of the mirrored credential cookie.
type cookieFile struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path"`
	MaxAge  int       `json:"max_age"`
	Expires time.Time `json:"expires"`
}

func (s *Store) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Save stores a freshly issued credential in both locations. The metadata
// row and its issue timestamp are written in one transaction.
func (s *Store) Save(ctx context.Context, token string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, tokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, tokenSavedAtKey, []byte(strconv.FormatInt(time.Now().Unix(), 10)))
	})
	if err != nil {
		return err
	}

	return s.writeCookie(cookieFile{
		Name:    common.AuthCookieName,
		Value:   token,
		Path:    "/",
		MaxAge:  common.AuthCookieMaxAge,
		Expires: time.Now().Add(common.AuthCookieMaxAge * time.Second),
	})
}

// Token returns the persisted credential, or "" when none is stored.
func (s *Store) Token(ctx context.Context) (string, error) {
	value, err := s.repo(s.db).Get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// Cookie returns the mirrored credential cookie, or nil when no valid
// cookie exists (missing file, cleared or expired value).
func (s *Store) Cookie(ctx context.Context) (*http.Cookie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.cookiePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var cf cookieFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	if cf.Value == "" || time.Now().After(cf.Expires) {
		return nil, nil
	}

	return &http.Cookie{
		Name:     cf.Name,
		Value:    cf.Value,
		Path:     cf.Path,
		MaxAge:   cf.MaxAge,
		Expires:  cf.Expires,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Clear invalidates the credential in both locations: the metadata rows are
// deleted and the cookie is rewritten as an empty, immediately expired
// value. Clearing an already-cleared store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	repo := s.repo(s.db)
	err := repo.Delete(ctx, tokenKey)
	if derr := repo.Delete(ctx, tokenSavedAtKey); err == nil {
		err = derr
	}

	cerr := s.writeCookie(cookieFile{
		Name:    common.AuthCookieName,
		Value:   "",
		Path:    "/",
		MaxAge:  -1,
		Expires: time.Unix(0, 0),
	})
	if err == nil {
		err = cerr
	}
	return err
}

func (s *Store) writeCookie(cf cookieFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(cf)
	if err != nil {
		return err
	}
	return os.WriteFile(s.cookiePath, data, 0600)
}
