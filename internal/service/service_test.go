package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/thrivelog/thrivelog/internal/db/dbtest"
	"github.com/thrivelog/thrivelog/internal/markdown"
	"github.com/thrivelog/thrivelog/internal/model"
	"github.com/thrivelog/thrivelog/internal/repository"
	"github.com/thrivelog/thrivelog/internal/service/ai"
)

// fakeProvider answers every call with the same text or error.
type fakeProvider struct {
	mu      sync.Mutex
	name    string
	text    string
	err     error
	prompts []string
}

func (p *fakeProvider) GenerateText(ctx context.Context, prompt string, opts ai.Options) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompts = append(p.prompts, prompt)
	if p.err != nil {
		return "", p.err
	}
	return p.text, nil
}

func (p *fakeProvider) GenerateJSON(ctx context.Context, prompt string, out any) error {
	text, err := p.GenerateText(ctx, prompt, ai.JSONOptions)
	if err != nil {
		return err
	}
	return ai.DecodeJSON(text, out)
}

func (p *fakeProvider) Name() string {
	if p.name == "" {
		return "fake"
	}
	return p.name
}

func (p *fakeProvider) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.prompts)
}

// memCache is an in-process cache.Cache.
type memCache struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{values: map[string][]byte{}}
}

func (c *memCache) Get(ctx context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = b
	return nil
}

func (c *memCache) Close() error { return nil }

type testEnv struct {
	db             *sqlx.DB
	users          repository.UserRepository
	habits         repository.HabitRepository
	mbtiProfiles   repository.MBTIRepository
	journal        repository.JournalRepository
	provider       *fakeProvider
	cache          *memCache
	habitService   *HabitService
	mbtiService    *MBTIService
	journalService *JournalService
	recService     *RecommendationService
	userService    *UserService
	authService    *AuthService
}

func newTestEnv(t *testing.T, provider *fakeProvider) *testEnv {
	t.Helper()

	conn := dbtest.New(t)
	env := &testEnv{
		db:           conn,
		users:        repository.NewUserRepository(conn),
		habits:       repository.NewHabitRepository(conn),
		mbtiProfiles: repository.NewMBTIRepository(conn),
		journal:      repository.NewJournalRepository(conn),
		provider:     provider,
		cache:        newMemCache(),
	}

	env.habitService = NewHabitService(env.habits)
	env.mbtiService = NewMBTIService(env.mbtiProfiles)
	env.journalService = NewJournalService(env.journal, provider, markdown.NewParser())
	env.recService = NewRecommendationService(env.mbtiProfiles, env.habits, env.journal, provider, env.cache, time.Hour)
	env.userService = NewUserService(env.users, env.mbtiProfiles, env.habitService, env.journalService)
	env.authService = NewAuthService(env.users, "test-secret", false, time.Hour)

	return env
}

func (env *testEnv) newUser(t *testing.T, subject string) *model.User {
	t.Helper()
	user, err := env.users.Upsert(&model.User{Subject: subject, Email: subject + "@example.com"})
	require.NoError(t, err)
	return user
}

var errUnavailable = errors.New("upstream connect error 503")
