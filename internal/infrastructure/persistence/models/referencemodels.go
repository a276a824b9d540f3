package models

import "time"

type ClientModel struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CNPJ       string    `json:"cnpj"`
	CNPJDigits string    `json:"cnpjDigits"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CategoryModel struct {
	ID        string    `json:"id"`
	Group     string    `json:"group"`
	Name      string    `json:"name"`
	Key       string    `json:"key"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type GroupModel struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Key       string    `json:"key"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
