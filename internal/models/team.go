package models

type Team struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	OrganizationID uint   `gorm:"not null" json:"organization_id"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}

func (t *Team) TableName() string {
	return "teams"
}
