package client

import (
	"context"

	"callbook/internal/domain"

	"github.com/google/uuid"
)

type Service struct {
	clients ClientRepository
}

func NewService(clients ClientRepository) *Service {
	return &Service{clients: clients}
}

func (s *Service) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clients.GetAll(ctx)
}

func (s *Service) CreateClient(ctx context.Context, req CreateClientRequest) (*domain.Client, error) {
	c := &domain.Client{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Phone: req.Phone,
	}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
