package employees

import (
	"context"

	"shifttracker/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.Employee) (*models.Employee, error)
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	GetByUsername(ctx context.Context, username string) (*models.Employee, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, e *models.Employee) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.Employee, error)
}
