package client

import (
	"context"

	"callbook/internal/domain"
)

type ClientRepository interface {
	GetAll(ctx context.Context) ([]domain.Client, error)
	Create(ctx context.Context, c *domain.Client) error
}
