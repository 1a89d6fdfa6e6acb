package services

import (
	"database/sql"

	"github.com/arvelin/staffdesk-be/internal/models"
)

// EmployeeInput holds the fields supplied by the client when creating a record.
type EmployeeInput struct {
	FullName   string `json:"fullName"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Address    string `json:"address"`
}

// EmployeeServiceProvider defines the interface for employee services.
type EmployeeServiceProvider interface {
	CreateEmployee(input EmployeeInput, ownerID int64) (int64, error)
	ListEmployeesByOwner(ownerID int64) ([]models.Employee, error)
	GetEmployeeByIDAndOwner(id, ownerID int64) (models.Employee, error)
}

// EmployeeService provides business logic for owner-scoped employee records.
type EmployeeService struct {
	db *sql.DB
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(db *sql.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

// CreateEmployee inserts a new record owned by the given user.
func (s *EmployeeService) CreateEmployee(input EmployeeInput, ownerID int64) (int64, error) {
	stmt, err := s.db.Prepare(`INSERT INTO employees (full_name, username, email, phone, department, address, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(input.FullName, input.Username, input.Email, input.Phone, input.Department, input.Address, ownerID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListEmployeesByOwner retrieves all records owned by the given user, newest first.
func (s *EmployeeService) ListEmployeesByOwner(ownerID int64) ([]models.Employee, error) {
	rows, err := s.db.Query(`SELECT id, full_name, username, email, phone, department, address, user_id, created_at
		FROM employees WHERE user_id = ? ORDER BY id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.FullName, &e.Username, &e.Email, &e.Phone, &e.Department, &e.Address, &e.OwnerID, &e.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// GetEmployeeByIDAndOwner retrieves a single record if it is owned by the
// given user. A record owned by someone else and a nonexistent record both
// yield ErrNotFound; the ownership filter lives in the query itself.
func (s *EmployeeService) GetEmployeeByIDAndOwner(id, ownerID int64) (models.Employee, error) {
	var e models.Employee
	row := s.db.QueryRow(`SELECT id, full_name, username, email, phone, department, address, user_id, created_at
		FROM employees WHERE id = ? AND user_id = ?`, id, ownerID)
	err := row.Scan(&e.ID, &e.FullName, &e.Username, &e.Email, &e.Phone, &e.Department, &e.Address, &e.OwnerID, &e.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Employee{}, ErrNotFound
		}
		return models.Employee{}, err
	}
	return e, nil
}
