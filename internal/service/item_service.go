package service

import (
	"fsanano/hello-api/internal/model"
	"fsanano/hello-api/internal/repository"
)

type ItemService struct {
	store *repository.Store
}

func NewItemService(store *repository.Store) *ItemService {
	return &ItemService{store: store}
}

func (s *ItemService) List() []model.Item {
	return s.store.ListItems()
}

func (s *ItemService) Get(id int) (model.Item, error) {
	return s.store.GetItem(id)
}

func (s *ItemService) Create(dto model.ItemCreateDto) model.Item {
	return s.store.CreateItem(dto)
}

func (s *ItemService) Update(id int, dto model.ItemCreateDto) error {
	return s.store.UpdateItem(id, dto)
}

func (s *ItemService) Delete(id int) error {
	return s.store.DeleteItem(id)
}
