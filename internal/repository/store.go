package repository

import (
	"strings"
	"sync"
	"time"

	"fsanano/hello-api/internal/model"
)

// Store owns the in-memory collections. Each collection has its own lock;
// id allocation and insertion happen under the same write lock.
type Store struct {
	itemsMu sync.RWMutex
	items   []model.Item

	usersMu sync.RWMutex
	users   []model.User

	contactsMu sync.RWMutex
	contacts   []model.ContactSubmission
}

func NewStore() *Store {
	return &Store{}
}

// Seed loads the records the service ships with.
func (s *Store) Seed() {
	s.itemsMu.Lock()
	s.items = []model.Item{
		{ID: 1, Name: model.StringPtr("Item 1"), Description: model.StringPtr("First item")},
		{ID: 2, Name: model.StringPtr("Item 2"), Description: model.StringPtr("Second item")},
	}
	s.itemsMu.Unlock()

	s.usersMu.Lock()
	s.users = []model.User{
		{ID: 1, Username: model.StringPtr("alice"), Email: model.StringPtr("alice@example.com")},
		{ID: 2, Username: model.StringPtr("bob"), Email: model.StringPtr("bob@example.com")},
	}
	s.usersMu.Unlock()
}

// nextID returns max(existing ids) + 1, or 1 for an empty collection.
func nextID[T any](records []T, id func(T) int) int {
	maxID := 0
	for _, r := range records {
		if v := id(r); v > maxID {
			maxID = v
		}
	}
	return maxID + 1
}

// ---- Items ----

func (s *Store) ListItems() []model.Item {
	s.itemsMu.RLock()
	defer s.itemsMu.RUnlock()
	return append([]model.Item{}, s.items...)
}

func (s *Store) GetItem(id int) (model.Item, error) {
	s.itemsMu.RLock()
	defer s.itemsMu.RUnlock()
	i := s.itemIndex(id)
	if i < 0 {
		return model.Item{}, model.ErrNotFound
	}
	return s.items[i], nil
}

// CreateItem appends a new item with the next sequential id.
func (s *Store) CreateItem(dto model.ItemCreateDto) model.Item {
	s.itemsMu.Lock()
	defer s.itemsMu.Unlock()
	item := model.Item{
		ID:          nextID(s.items, func(i model.Item) int { return i.ID }),
		Name:        dto.Name,
		Description: dto.Description,
	}
	s.items = append(s.items, item)
	return item
}

// UpdateItem replaces name and description in place.
func (s *Store) UpdateItem(id int, dto model.ItemCreateDto) error {
	s.itemsMu.Lock()
	defer s.itemsMu.Unlock()
	i := s.itemIndex(id)
	if i < 0 {
		return model.ErrNotFound
	}
	s.items[i].Name = dto.Name
	s.items[i].Description = dto.Description
	return nil
}

func (s *Store) DeleteItem(id int) error {
	s.itemsMu.Lock()
	defer s.itemsMu.Unlock()
	i := s.itemIndex(id)
	if i < 0 {
		return model.ErrNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// itemIndex must be called with itemsMu held.
func (s *Store) itemIndex(id int) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// ---- Users ----

func (s *Store) ListUsers() []model.User {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	return append([]model.User{}, s.users...)
}

func (s *Store) GetUser(id int) (model.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	i := s.userIndex(id)
	if i < 0 {
		return model.User{}, model.ErrNotFound
	}
	return s.users[i], nil
}

// SearchUsers returns users whose username contains fragment, ignoring case.
func (s *Store) SearchUsers(fragment string) []model.User {
	needle := strings.ToLower(fragment)

	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	matches := []model.User{}
	for _, u := range s.users {
		if u.Username != nil && strings.Contains(strings.ToLower(*u.Username), needle) {
			matches = append(matches, u)
		}
	}
	return matches
}

// FindUserByUsername returns the first user whose username equals name, ignoring case.
func (s *Store) FindUserByUsername(name string) (model.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	for _, u := range s.users {
		if u.Username != nil && strings.EqualFold(*u.Username, name) {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

// CreateUser appends a new user unless the username is already taken.
func (s *Store) CreateUser(dto model.UserCreateDto) (model.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	if s.usernameTaken(dto.Username, 0) {
		return model.User{}, model.Conflict("Username already exists")
	}
	user := model.User{
		ID:       nextID(s.users, func(u model.User) int { return u.ID }),
		Username: dto.Username,
		Email:    dto.Email,
	}
	s.users = append(s.users, user)
	return user, nil
}

// UpdateUser replaces username and email. The username may not belong to
// any other user.
func (s *Store) UpdateUser(id int, dto model.UserCreateDto) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	i := s.userIndex(id)
	if i < 0 {
		return model.ErrNotFound
	}
	if s.usernameTaken(dto.Username, id) {
		return model.Conflict("Username already exists")
	}
	s.users[i].Username = dto.Username
	s.users[i].Email = dto.Email
	return nil
}

func (s *Store) DeleteUser(id int) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	i := s.userIndex(id)
	if i < 0 {
		return model.ErrNotFound
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	return nil
}

// usernameTaken reports whether a user other than exceptID holds name.
// A nil name never clashes. Must be called with usersMu held.
func (s *Store) usernameTaken(name *string, exceptID int) bool {
	if name == nil {
		return false
	}
	for _, u := range s.users {
		if u.ID != exceptID && u.Username != nil && strings.EqualFold(*u.Username, *name) {
			return true
		}
	}
	return false
}

// userIndex must be called with usersMu held.
func (s *Store) userIndex(id int) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

// ---- Contacts ----

func (s *Store) ListContacts() []model.ContactSubmission {
	s.contactsMu.RLock()
	defer s.contactsMu.RUnlock()
	return append([]model.ContactSubmission{}, s.contacts...)
}

func (s *Store) GetContact(id int) (model.ContactSubmission, error) {
	s.contactsMu.RLock()
	defer s.contactsMu.RUnlock()
	for _, c := range s.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return model.ContactSubmission{}, model.ErrNotFound
}

// CreateContact appends a submission. Contacts are never updated or removed.
func (s *Store) CreateContact(dto model.ContactCreateDto, receivedAt time.Time) model.ContactSubmission {
	s.contactsMu.Lock()
	defer s.contactsMu.Unlock()
	c := model.ContactSubmission{
		ID:         nextID(s.contacts, func(c model.ContactSubmission) int { return c.ID }),
		Name:       dto.Name,
		Email:      dto.Email,
		Message:    dto.Message,
		ReceivedAt: receivedAt.UTC(),
	}
	s.contacts = append(s.contacts, c)
	return c
}
