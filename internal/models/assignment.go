package models

// EmployeeTeam is the many-to-many relation between employees and teams.
// The composite primary key makes duplicate assignments impossible; inserts
// use ON CONFLICT DO NOTHING so re-assigning is a no-op rather than an error.
type EmployeeTeam struct {
	EmployeeID uint `gorm:"primaryKey" json:"employee_id"`
	TeamID     uint `gorm:"primaryKey" json:"team_id"`
}

func (et *EmployeeTeam) TableName() string {
	return "employee_teams"
}

// Assignment is the read model for the assignment listing: one row per
// employee-team pair, joined with both sides and scoped to an organization.
type Assignment struct {
	EmployeeID   uint   `gorm:"column:emp_id" json:"emp_id"`
	EmployeeName string `gorm:"column:emp_name" json:"emp_name"`
	Email        string `gorm:"column:email" json:"email"`
	TeamID       uint   `gorm:"column:team_id" json:"team_id"`
	TeamName     string `gorm:"column:team_name" json:"team_name"`
}
