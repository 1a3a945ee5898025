package service

import (
	"time"

	"fsanano/hello-api/internal/model"
	"fsanano/hello-api/internal/repository"
)

type ContactService struct {
	store *repository.Store
	now   func() time.Time
}

func NewContactService(store *repository.Store) *ContactService {
	return &ContactService{store: store, now: time.Now}
}

func (s *ContactService) List() []model.ContactSubmission {
	return s.store.ListContacts()
}

func (s *ContactService) Get(id int) (model.ContactSubmission, error) {
	return s.store.GetContact(id)
}

// Submit records a submission. Fields are stored as given; there is no validation.
func (s *ContactService) Submit(dto model.ContactCreateDto) model.ContactSubmission {
	return s.store.CreateContact(dto, s.now())
}
