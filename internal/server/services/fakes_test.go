package services

import (
	"context"
	"database/sql"

	"github.com/basharkhan/brainly/internal/common"
	"github.com/basharkhan/brainly/internal/dbx"
	"github.com/basharkhan/brainly/internal/server/models"
	contentsrepo "github.com/basharkhan/brainly/internal/server/repositories/contents"
	sharelinksrepo "github.com/basharkhan/brainly/internal/server/repositories/sharelinks"
	usersrepo "github.com/basharkhan/brainly/internal/server/repositories/users"
)

// In-memory fakes standing in for the PostgreSQL repositories. Err fields,
// when set, are returned instead of touching state.

type fakeUsersRepo struct {
	byUsername map[string]*models.User

	createErr error
	getErr    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byUsername: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byUsername[u.Username]; ok {
		return nil, common.ErrDuplicateUser
	}
	f.byUsername[u.Username] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byUsername[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

type fakeContentsRepo struct {
	byID map[string]*models.Content

	createErr error
	listErr   error
}

func newFakeContentsRepo() *fakeContentsRepo {
	return &fakeContentsRepo{byID: map[string]*models.Content{}}
}

func (f *fakeContentsRepo) Create(ctx context.Context, c *models.Content) (*models.Content, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.byID[c.ID] = c
	return c, nil
}

func (f *fakeContentsRepo) ListByUser(ctx context.Context, userID string) ([]*models.Content, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var result []*models.Content
	for _, c := range f.byID {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeContentsRepo) Update(ctx context.Context, c *models.Content) error {
	existing, ok := f.byID[c.ID]
	if !ok || existing.UserID != c.UserID {
		return common.ErrNotFound
	}
	f.byID[c.ID] = c
	return nil
}

func (f *fakeContentsRepo) Delete(ctx context.Context, userID, contentID string) error {
	existing, ok := f.byID[contentID]
	if !ok || existing.UserID != userID {
		return common.ErrNotFound
	}
	delete(f.byID, contentID)
	return nil
}

type fakeShareLinksRepo struct {
	byUser map[string]*models.ShareLink

	createErr error
	getErr    error

	// getMisses forces that many GetByUser calls to report ErrNotFound
	// before the map is consulted, to exercise insert-race fallbacks.
	getMisses int
}

func newFakeShareLinksRepo() *fakeShareLinksRepo {
	return &fakeShareLinksRepo{byUser: map[string]*models.ShareLink{}}
}

func (f *fakeShareLinksRepo) Create(ctx context.Context, link *models.ShareLink) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byUser[link.UserID]; ok {
		return common.ErrAlreadyExists
	}
	f.byUser[link.UserID] = link
	return nil
}

func (f *fakeShareLinksRepo) GetByUser(ctx context.Context, userID string) (*models.ShareLink, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getMisses > 0 {
		f.getMisses--
		return nil, common.ErrNotFound
	}
	link, ok := f.byUser[userID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return link, nil
}

func (f *fakeShareLinksRepo) GetByToken(ctx context.Context, token string) (*models.ShareLink, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, link := range f.byUser {
		if link.Token == token {
			return link, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeShareLinksRepo) DeleteByUser(ctx context.Context, userID string) error {
	delete(f.byUser, userID)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	c *fakeContentsRepo
	s *fakeShareLinksRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		u: newFakeUsersRepo(),
		c: newFakeContentsRepo(),
		s: newFakeShareLinksRepo(),
	}
}

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository             { return m.u }
func (m *fakeRepoManager) Contents(db dbx.DBTX) contentsrepo.Repository      { return m.c }
func (m *fakeRepoManager) ShareLinks(db dbx.DBTX) sharelinksrepo.Repository  { return m.s }
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error      { return nil }
