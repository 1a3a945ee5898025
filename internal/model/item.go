package model

type Item struct {
	ID          int     `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ItemCreateDto is the body accepted by POST and PUT on /api/items.
// An id sent by the caller is ignored.
type ItemCreateDto struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
