package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/workoflow/hrms-api/internal/database"
	"github.com/workoflow/hrms-api/internal/models"
)

// DirectoryService holds the tenant-scoped CRUD over employees, teams and
// employee-team assignments. Every query and mutation filters or joins on
// the caller's organization id; a row outside that organization is
// indistinguishable from a row that does not exist.
type DirectoryService struct {
	db    database.Database
	audit *AuditService
}

func NewDirectoryService(db database.Database, audit *AuditService) *DirectoryService {
	return &DirectoryService{
		db:    db,
		audit: audit,
	}
}

// Employees

func (s *DirectoryService) ListEmployees(ctx context.Context, orgID uint) ([]models.Employee, error) {
	var employees []models.Employee
	err := s.db.DB().WithContext(ctx).
		Where("organization_id = ?", orgID).
		Find(&employees).Error
	return employees, err
}

func (s *DirectoryService) GetEmployee(ctx context.Context, orgID, id uint) (*models.Employee, error) {
	var employee models.Employee
	err := s.db.DB().WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (s *DirectoryService) CreateEmployee(ctx context.Context, orgID, actorID uint, name, email string) (*models.Employee, error) {
	employee := models.Employee{
		Name:           name,
		Email:          email,
		OrganizationID: orgID,
	}
	if err := s.db.DB().WithContext(ctx).Create(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("email %q: %w", email, ErrConflict)
		}
		return nil, err
	}

	s.audit.Record(actorID, "added a new employee", fmt.Sprintf("with ID %d", employee.ID))
	return &employee, nil
}

func (s *DirectoryService) UpdateEmployee(ctx context.Context, orgID, actorID, id uint, name, email string) error {
	res := s.db.DB().WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ? AND organization_id = ?", id, orgID).
		Updates(map[string]interface{}{"name": name, "email": email})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("email %q: %w", email, ErrConflict)
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	s.audit.Record(actorID, fmt.Sprintf("updated employee %d", id), "")
	return nil
}

// DeleteEmployee removes the employee's team memberships first, then the
// employee row itself. The two statements are not one transaction; if the
// second fails the memberships stay gone. The scoped existence check up
// front keeps the membership cascade inside the caller's organization.
func (s *DirectoryService) DeleteEmployee(ctx context.Context, orgID, actorID, id uint) error {
	if _, err := s.GetEmployee(ctx, orgID, id); err != nil {
		return err
	}

	if err := s.db.DB().WithContext(ctx).
		Where("employee_id = ?", id).
		Delete(&models.EmployeeTeam{}).Error; err != nil {
		return err
	}

	res := s.db.DB().WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		Delete(&models.Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	s.audit.Record(actorID, fmt.Sprintf("deleted employee %d", id), "")
	return nil
}

// Teams

func (s *DirectoryService) ListTeams(ctx context.Context, orgID uint) ([]models.Team, error) {
	var teams []models.Team
	err := s.db.DB().WithContext(ctx).
		Where("organization_id = ?", orgID).
		Find(&teams).Error
	return teams, err
}

func (s *DirectoryService) GetTeam(ctx context.Context, orgID, id uint) (*models.Team, error) {
	var team models.Team
	err := s.db.DB().WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (s *DirectoryService) CreateTeam(ctx context.Context, orgID, actorID uint, name string) (*models.Team, error) {
	team := models.Team{
		Name:           name,
		OrganizationID: orgID,
	}
	if err := s.db.DB().WithContext(ctx).Create(&team).Error; err != nil {
		return nil, err
	}

	s.audit.Record(actorID, "added a new team", fmt.Sprintf("with ID %d", team.ID))
	return &team, nil
}

func (s *DirectoryService) UpdateTeam(ctx context.Context, orgID, actorID, id uint, name string) error {
	res := s.db.DB().WithContext(ctx).
		Model(&models.Team{}).
		Where("id = ? AND organization_id = ?", id, orgID).
		Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	s.audit.Record(actorID, fmt.Sprintf("updated team %d", id), "")
	return nil
}

// DeleteTeam cascades like DeleteEmployee: memberships first, then the
// scoped team row.
func (s *DirectoryService) DeleteTeam(ctx context.Context, orgID, actorID, id uint) error {
	if _, err := s.GetTeam(ctx, orgID, id); err != nil {
		return err
	}

	if err := s.db.DB().WithContext(ctx).
		Where("team_id = ?", id).
		Delete(&models.EmployeeTeam{}).Error; err != nil {
		return err
	}

	res := s.db.DB().WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		Delete(&models.Team{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	s.audit.Record(actorID, fmt.Sprintf("deleted team %d", id), "")
	return nil
}

// Assignments

func (s *DirectoryService) ListAssignments(ctx context.Context, orgID uint) ([]models.Assignment, error) {
	var rows []models.Assignment
	err := s.db.DB().WithContext(ctx).
		Table("employee_teams").
		Select("employees.id AS emp_id, employees.name AS emp_name, employees.email, teams.id AS team_id, teams.name AS team_name").
		Joins("JOIN employees ON employees.id = employee_teams.employee_id").
		Joins("JOIN teams ON teams.id = employee_teams.team_id").
		Where("employees.organization_id = ?", orgID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AssignTeam links an employee to a team. Both sides must exist in the
// caller's organization. Assigning an existing pair again is a no-op and
// does not produce a second audit entry.
func (s *DirectoryService) AssignTeam(ctx context.Context, orgID, actorID, employeeID, teamID uint) error {
	if _, err := s.GetEmployee(ctx, orgID, employeeID); err != nil {
		return err
	}
	if _, err := s.GetTeam(ctx, orgID, teamID); err != nil {
		return err
	}

	res := s.db.DB().WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.EmployeeTeam{EmployeeID: employeeID, TeamID: teamID})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected > 0 {
		s.audit.Record(actorID, fmt.Sprintf("assigned employee %d to team %d", employeeID, teamID), "")
	}
	return nil
}

// UnassignTeam removes the relation row. The employee ownership check keeps
// the delete inside the caller's organization.
func (s *DirectoryService) UnassignTeam(ctx context.Context, orgID, actorID, employeeID, teamID uint) error {
	if _, err := s.GetEmployee(ctx, orgID, employeeID); err != nil {
		return err
	}

	res := s.db.DB().WithContext(ctx).
		Where("employee_id = ? AND team_id = ?", employeeID, teamID).
		Delete(&models.EmployeeTeam{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	s.audit.Record(actorID, fmt.Sprintf("removed employee %d from team %d", employeeID, teamID), "")
	return nil
}
