package repository

import (
	"context"

	"callbook/internal/domain"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

type clientModel struct {
	ID    string `gorm:"column:id;primaryKey"`
	Name  string `gorm:"column:name"`
	Phone string `gorm:"column:phone"`
}

func (clientModel) TableName() string { return "clients" }

func toDomainClient(m clientModel) domain.Client {
	return domain.Client{ID: m.ID, Name: m.Name, Phone: m.Phone}
}

func (r *ClientRepository) GetAll(ctx context.Context) ([]domain.Client, error) {
	var rows []clientModel
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Client, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainClient(m))
	}
	return out, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	var m clientModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	c := toDomainClient(m)
	return &c, nil
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	m := clientModel{ID: c.ID, Name: c.Name, Phone: c.Phone}
	return r.db.WithContext(ctx).Create(&m).Error
}
