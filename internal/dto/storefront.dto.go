package dto

import (
	domain "github.com/BruksfildServices01/foodtruck-storefront/internal/domain/schedule"
)

// Payload público da vitrine: só o que o cliente final vê.

type PublicTruckDTO struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	Timezone    string `json:"timezone"`
}

type PublicMenuItemDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	PhotoURL    string  `json:"photo_url"`
}

type StorefrontDTO struct {
	Truck        PublicTruckDTO      `json:"truck"`
	Availability domain.Availability `json:"availability"`
	Schedule     []domain.DayGroup   `json:"schedule"`
	Menu         []PublicMenuItemDTO `json:"menu"`
}
