package models

// Organization is the root of the tenancy hierarchy. Every other entity
// belongs to exactly one organization, directly or through its owner.
// Organizations are created at registration and never deleted in-band.
type Organization struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=1,max=255"`

	Users     []User     `gorm:"foreignKey:OrganizationID" json:"users,omitempty"`
	Employees []Employee `gorm:"foreignKey:OrganizationID" json:"employees,omitempty"`
	Teams     []Team     `gorm:"foreignKey:OrganizationID" json:"teams,omitempty"`
}

func (o *Organization) TableName() string {
	return "organizations"
}
