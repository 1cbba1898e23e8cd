package repository

import (
	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftTemplateRepository handles database operations for shift templates
type ShiftTemplateRepository struct {
	db *gorm.DB
}

// NewShiftTemplateRepository creates a new shift template repository
func NewShiftTemplateRepository(db *gorm.DB) *ShiftTemplateRepository {
	return &ShiftTemplateRepository{db: db}
}

// Create creates a new shift template
func (r *ShiftTemplateRepository) Create(template *models.ShiftTemplate) error {
	return r.db.Create(template).Error
}

// GetByID retrieves a shift template by ID
func (r *ShiftTemplateRepository) GetByID(id uuid.UUID) (*models.ShiftTemplate, error) {
	var template models.ShiftTemplate
	err := r.db.First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// GetByAccountID retrieves all shift templates for an account
func (r *ShiftTemplateRepository) GetByAccountID(accountID uuid.UUID) ([]models.ShiftTemplate, error) {
	var templates []models.ShiftTemplate
	err := r.db.Where("account_id = ?", accountID).Order("label ASC").Find(&templates).Error
	return templates, err
}

// Update updates a shift template
func (r *ShiftTemplateRepository) Update(template *models.ShiftTemplate) error {
	return r.db.Save(template).Error
}

// Delete deletes a shift template
func (r *ShiftTemplateRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ShiftTemplate{}, "id = ?", id).Error
}
