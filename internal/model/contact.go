package model

import "time"

type ContactSubmission struct {
	ID         int       `json:"id"`
	Name       *string   `json:"name"`
	Email      *string   `json:"email"`
	Message    *string   `json:"message"`
	ReceivedAt time.Time `json:"receivedAt"`
}

type ContactCreateDto struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Message *string `json:"message"`
}
