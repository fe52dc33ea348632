package domain

import "time"

// UnknownStoreName é usado quando a loja é analisada sem nome informado
const UnknownStoreName = "알 수 없음"

type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateStoreRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
