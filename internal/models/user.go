package models

// User is a login credential. Usernames are unique process-wide, not per
// organization. One admin user is created per organization at registration;
// there is no invite flow.
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Username       string `gorm:"type:varchar(100);not null;unique" json:"username" validate:"required"`
	PasswordHash   string `gorm:"type:varchar(255);not null" json:"-"`
	OrganizationID uint   `gorm:"not null" json:"organization_id"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}

func (u *User) TableName() string {
	return "users"
}
