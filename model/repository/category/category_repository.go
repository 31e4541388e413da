package category

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	entity "gudang.GO/model/entity"
)

// NotFoundError is returned when a category id does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Category with id %s not found", e.ID)
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.db.Create(cat).Error
}

func (r *CategoryRepository) FindAll() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.db.Order("id").Find(&cats).Error
	return cats, err
}

// FindByID returns the category or a NotFoundError carrying the requested id.
func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.db.First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{ID: fmt.Sprint(id)}
		}
		return nil, err
	}
	return &cat, nil
}
