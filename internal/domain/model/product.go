package model

import (
	"time"
)

type Product struct {
	ID          string    `json:"product_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Category    *string   `json:"category"`
	IsAvailable bool      `json:"is_available"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
