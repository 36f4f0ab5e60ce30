package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/foodtruck-storefront/internal/domain/schedule"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// FoodTruck
// --------------------------------------------------

func (r *ScheduleGormRepository) GetTruckByID(
	ctx context.Context,
	id uint,
) (*models.FoodTruck, error) {

	var truck models.FoodTruck
	if err := r.db.WithContext(ctx).First(&truck, id).Error; err != nil {
		return nil, err
	}
	return &truck, nil
}

func (r *ScheduleGormRepository) GetTruckBySlug(
	ctx context.Context,
	slug string,
) (*models.FoodTruck, error) {

	var truck models.FoodTruck
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&truck).Error; err != nil {
		return nil, err
	}
	return &truck, nil
}

// --------------------------------------------------
// Week (rows ⇄ domain values)
// --------------------------------------------------

func dayFromRow(row models.ScheduleDay) domain.Day {
	d := domain.Day{
		Day:              domain.Weekday(row.Day),
		Location:         row.Location,
		Address:          row.Address,
		OpenTime:         row.OpenTime,
		CloseTime:        row.CloseTime,
		IsClosed:         row.IsClosed,
		ClosureTimestamp: row.ClosureTimestamp,
		Timezone:         row.Timezone,
	}

	if row.Lat != nil && row.Lng != nil {
		d.Coordinates = &domain.Coordinates{Lat: *row.Lat, Lng: *row.Lng}
	}

	return d
}

func rowFromDay(truckID uint, d domain.Day) models.ScheduleDay {
	row := models.ScheduleDay{
		FoodTruckID:      truckID,
		Day:              string(d.Day),
		Location:         d.Location,
		Address:          d.Address,
		OpenTime:         d.OpenTime,
		CloseTime:        d.CloseTime,
		IsClosed:         d.IsClosed,
		ClosureTimestamp: d.ClosureTimestamp,
		Timezone:         d.Timezone,
	}

	if d.Coordinates != nil {
		lat, lng := d.Coordinates.Lat, d.Coordinates.Lng
		row.Lat = &lat
		row.Lng = &lng
	}

	return row
}

func (r *ScheduleGormRepository) LoadWeek(
	ctx context.Context,
	truck *models.FoodTruck,
) (domain.Week, error) {

	var rows []models.ScheduleDay
	if err := r.db.WithContext(ctx).
		Where("food_truck_id = ?", truck.ID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return domain.Week{}, err
	}

	week := domain.Week{
		Title:           truck.ScheduleTitle,
		Description:     truck.ScheduleDescription,
		PrimaryTimezone: truck.Timezone,
		Days:            make([]domain.Day, 0, len(rows)),
	}

	for _, row := range rows {
		week.Days = append(week.Days, dayFromRow(row))
	}

	return week, nil
}

// SaveClosureState grava só o par is_closed/closure_timestamp de cada
// dia. É o write-back da reconciliação e do "fechar hoje": escrita
// idempotente, duas requisições concorrentes convergem para o mesmo
// estado sem lock.
func (r *ScheduleGormRepository) SaveClosureState(
	ctx context.Context,
	truckID uint,
	week domain.Week,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, d := range week.Days {
			if err := tx.
				Model(&models.ScheduleDay{}).
				Where("food_truck_id = ? AND day = ?", truckID, string(d.Day)).
				Updates(map[string]any{
					"is_closed":         d.IsClosed,
					"closure_timestamp": d.ClosureTimestamp,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceWeek troca a semana inteira (editor semanal): apaga e recria
// numa transação, como o fluxo de working hours.
func (r *ScheduleGormRepository) ReplaceWeek(
	ctx context.Context,
	truckID uint,
	week domain.Week,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("food_truck_id = ?", truckID).
			Delete(&models.ScheduleDay{}).Error; err != nil {
			return err
		}

		if len(week.Days) == 0 {
			return nil
		}

		rows := make([]models.ScheduleDay, 0, len(week.Days))
		for _, d := range week.Days {
			rows = append(rows, rowFromDay(truckID, d))
		}

		return tx.Create(&rows).Error
	})
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
