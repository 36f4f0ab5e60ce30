package schedule

import (
	"context"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/models"
)

type Repository interface {
	// -------- FoodTruck --------
	GetTruckByID(
		ctx context.Context,
		id uint,
	) (*models.FoodTruck, error)

	GetTruckBySlug(
		ctx context.Context,
		slug string,
	) (*models.FoodTruck, error)

	// -------- Week --------
	LoadWeek(
		ctx context.Context,
		truck *models.FoodTruck,
	) (Week, error)

	// SaveClosureState grava de volta apenas is_closed e
	// closure_timestamp dos dias da semana (write-back da
	// reconciliação e do "fechar hoje").
	SaveClosureState(
		ctx context.Context,
		truckID uint,
		week Week,
	) error

	// ReplaceWeek troca a semana inteira numa transação (editor).
	ReplaceWeek(
		ctx context.Context,
		truckID uint,
		week Week,
	) error
}
