package models

import "time"

// Um registro por dia da semana e por truck. Day guarda o nome do dia
// ("Monday".."Sunday"), nunca índice numérico.
type ScheduleDay struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	FoodTruckID uint `gorm:"index:idx_truck_day,unique" json:"food_truck_id"`

	Day string `gorm:"size:10;not null;index:idx_truck_day,unique" json:"day"`

	Location string `gorm:"size:100" json:"location"`
	Address  string `gorm:"size:255" json:"address"`

	OpenTime  string `gorm:"size:5" json:"open_time"`
	CloseTime string `gorm:"size:5" json:"close_time"`

	IsClosed bool `gorm:"default:false" json:"is_closed"`

	// Preenchido somente pelo "fechar hoje"; o editor semanal nunca grava.
	ClosureTimestamp *time.Time `json:"closure_timestamp"`

	Timezone string `gorm:"size:64" json:"timezone"`

	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
