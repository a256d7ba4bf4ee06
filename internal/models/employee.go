package models

// Employee email addresses are unique process-wide.
type Employee struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email          string `gorm:"type:varchar(255);not null;unique" json:"email" validate:"required,email"`
	OrganizationID uint   `gorm:"not null" json:"organization_id"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}

func (e *Employee) TableName() string {
	return "employees"
}
