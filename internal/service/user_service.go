package service

import (
	"strings"

	"fsanano/hello-api/internal/model"
	"fsanano/hello-api/internal/repository"
)

const (
	msgUsernameRequired      = "Username is required"
	msgUsernameQueryRequired = "username query is required"
)

type UserService struct {
	store *repository.Store
}

func NewUserService(store *repository.Store) *UserService {
	return &UserService{store: store}
}

func (s *UserService) List() []model.User {
	return s.store.ListUsers()
}

func (s *UserService) Get(id int) (model.User, error) {
	return s.store.GetUser(id)
}

// Search does a case-insensitive substring match over usernames.
func (s *UserService) Search(username string) ([]model.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, model.BadRequest(msgUsernameQueryRequired)
	}
	return s.store.SearchUsers(username), nil
}

func (s *UserService) Create(dto model.UserCreateDto) (model.User, error) {
	if model.IsBlank(dto.Username) {
		return model.User{}, model.BadRequest(msgUsernameRequired)
	}
	return s.store.CreateUser(dto)
}

// Update checks existence before validating the body, so an unknown id is
// always a 404 even when the username is blank.
func (s *UserService) Update(id int, dto model.UserCreateDto) error {
	if _, err := s.store.GetUser(id); err != nil {
		return err
	}
	if model.IsBlank(dto.Username) {
		return model.BadRequest(msgUsernameRequired)
	}
	return s.store.UpdateUser(id, dto)
}

func (s *UserService) Delete(id int) error {
	return s.store.DeleteUser(id)
}
