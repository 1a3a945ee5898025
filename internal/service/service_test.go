package service

import (
	"testing"
	"time"

	"fsanano/hello-api/internal/model"
	"fsanano/hello-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededStore() *repository.Store {
	s := repository.NewStore()
	s.Seed()
	return s
}

func TestUserService_Create(t *testing.T) {
	svc := NewUserService(newSeededStore())

	_, err := svc.Create(model.UserCreateDto{Username: model.StringPtr("  ")})
	require.ErrorIs(t, err, model.ErrBadRequest)
	assert.Equal(t, "Username is required", err.(*model.Error).Message)

	_, err = svc.Create(model.UserCreateDto{Username: model.StringPtr("Alice")})
	require.ErrorIs(t, err, model.ErrConflict)
	assert.Equal(t, "Username already exists", err.(*model.Error).Message)

	u, err := svc.Create(model.UserCreateDto{Username: model.StringPtr("carol")})
	require.NoError(t, err)
	assert.Equal(t, 3, u.ID)
}

func TestUserService_UpdateOrderOfChecks(t *testing.T) {
	svc := NewUserService(newSeededStore())

	// Unknown id wins over a blank username.
	err := svc.Update(77, model.UserCreateDto{})
	assert.ErrorIs(t, err, model.ErrNotFound)

	err = svc.Update(1, model.UserCreateDto{})
	assert.ErrorIs(t, err, model.ErrBadRequest)

	err = svc.Update(1, model.UserCreateDto{Username: model.StringPtr("bob")})
	assert.ErrorIs(t, err, model.ErrConflict)

	err = svc.Update(1, model.UserCreateDto{Username: model.StringPtr("alicia"), Email: model.StringPtr("a@x.com")})
	require.NoError(t, err)
	u, err := svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "alicia", *u.Username)
}

func TestUserService_Search(t *testing.T) {
	svc := NewUserService(newSeededStore())

	_, err := svc.Search(" ")
	require.ErrorIs(t, err, model.ErrBadRequest)
	assert.Equal(t, "username query is required", err.(*model.Error).Message)

	users, err := svc.Search("al")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", *users[0].Username)
}

func TestContactService_Submit(t *testing.T) {
	svc := NewContactService(repository.NewStore())
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	c := svc.Submit(model.ContactCreateDto{Name: model.StringPtr("Jo"), Message: model.StringPtr("hi")})
	assert.Equal(t, 1, c.ID)
	assert.Equal(t, fixed, c.ReceivedAt)
	assert.Len(t, svc.List(), 1)

	got, err := svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "hi", *got.Message)
}

func TestItemService_CRUD(t *testing.T) {
	svc := NewItemService(newSeededStore())

	item := svc.Create(model.ItemCreateDto{Name: model.StringPtr("Item 3")})
	assert.Equal(t, 3, item.ID)

	require.NoError(t, svc.Update(3, model.ItemCreateDto{Description: model.StringPtr("third")}))
	got, err := svc.Get(3)
	require.NoError(t, err)
	assert.Nil(t, got.Name)
	assert.Equal(t, "third", *got.Description)

	require.NoError(t, svc.Delete(3))
	assert.Len(t, svc.List(), 2)
}

func TestLoginService_IgnoresPassword(t *testing.T) {
	svc := NewLoginService(newSeededStore())

	u, err := svc.Login("ALICE", "definitely-wrong")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", *u.Email)

	_, err = svc.Login("mallory", "")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = svc.Login("", "")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Hello from GreetingService!", Greeting(""))
	assert.Equal(t, "Hello from GreetingService!", Greeting("   "))
	assert.Equal(t, "Hello, Jo!", Greeting("Jo"))
}

func TestNewRuntimeInfo(t *testing.T) {
	a := NewRuntimeInfo()
	b := NewRuntimeInfo()

	assert.NotEmpty(t, a.Framework)
	assert.NotEmpty(t, a.OS)
	assert.NotEmpty(t, a.ProcessArchitecture)
	assert.Positive(t, a.ProcessID)
	assert.Positive(t, a.NumCPU)
	assert.Len(t, a.InstanceID, 36)
	assert.NotEqual(t, a.InstanceID, b.InstanceID)
}
