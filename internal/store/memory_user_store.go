package store

import (
	"context"
	"strings"
	"sync"

	"github.com/fjod/go_shop/internal/domain"
)

// userEntry holds one account plus its cart. Each entry carries its own
// mutex so cart operations on different users never contend.
type userEntry struct {
	mu   sync.Mutex
	user domain.User
	cart []domain.CartLine
}

// MemoryUserStore implements UserStore with in-memory storage.
type MemoryUserStore struct {
	mu      sync.RWMutex
	byID    map[string]*userEntry
	byEmail map[string]*userEntry
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byID:    make(map[string]*userEntry),
		byEmail: make(map[string]*userEntry),
	}
}

func (s *MemoryUserStore) CreateUser(_ context.Context, user *domain.User) error {
	email := normalizeEmail(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return ErrEmailTaken
	}

	entry := &userEntry{user: *user}
	s.byID[user.ID] = entry
	s.byEmail[email] = entry
	return nil
}

func (s *MemoryUserStore) GetUser(_ context.Context, userID string) (*domain.User, error) {
	entry, err := s.entry(userID)
	if err != nil {
		return nil, err
	}

	u := entry.user
	return &u, nil
}

func (s *MemoryUserStore) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	entry, exists := s.byEmail[normalizeEmail(email)]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrUserNotFound
	}

	u := entry.user
	return &u, nil
}

func (s *MemoryUserStore) AppendToCart(_ context.Context, userID string, line domain.CartLine) error {
	entry, err := s.entry(userID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.cart = append(entry.cart, line)
	return nil
}

func (s *MemoryUserStore) GetCart(_ context.Context, userID string) ([]domain.CartLine, error) {
	entry, err := s.entry(userID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return copyLines(entry.cart), nil
}

func (s *MemoryUserStore) DrainCart(_ context.Context, userID string) ([]domain.CartLine, error) {
	entry, err := s.entry(userID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	drained := entry.cart
	entry.cart = nil
	return drained, nil
}

func (s *MemoryUserStore) RestoreCart(_ context.Context, userID string, lines []domain.CartLine) error {
	entry, err := s.entry(userID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	// Restored lines go back in front of anything added since the drain,
	// preserving the pre-checkout ordering.
	entry.cart = append(copyLines(lines), entry.cart...)
	return nil
}

// entry looks up a user's entry. Entries are never removed, so the returned
// pointer stays valid after the map lock is released.
func (s *MemoryUserStore) entry(userID string) (*userEntry, error) {
	s.mu.RLock()
	entry, exists := s.byID[userID]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrUserNotFound
	}
	return entry, nil
}

func copyLines(lines []domain.CartLine) []domain.CartLine {
	if lines == nil {
		return nil
	}
	cp := make([]domain.CartLine, len(lines))
	copy(cp, lines)
	return cp
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
