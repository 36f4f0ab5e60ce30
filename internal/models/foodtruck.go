package models

import "time"

type FoodTruck struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone       string `gorm:"size:20" json:"phone"`
	Description string `gorm:"size:255" json:"description"`
	LogoURL     string `gorm:"size:255" json:"logo_url"`

	// Fuso principal do truck; fallback dos dias sem fuso próprio.
	Timezone string `gorm:"size:64;default:'America/Sao_Paulo'" json:"timezone"`

	ScheduleTitle       string `gorm:"size:100" json:"schedule_title"`
	ScheduleDescription string `gorm:"size:255" json:"schedule_description"`

	SubscriptionStatus string     `gorm:"size:20;default:'trial'" json:"subscription_status"`
	SubscriptionRef    string     `gorm:"size:100" json:"-"`
	SubscribedAt       *time.Time `json:"subscribed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
