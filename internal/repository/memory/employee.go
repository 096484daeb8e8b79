package memory

import (
	"context"
	"slices"

	"github.com/absencetrack/attendance-backend-go/internal/domain/employee"
)

// employeeRepository serves the static directory. Immutable after load.
type employeeRepository struct {
	employees []employee.Employee
}

func NewEmployeeRepository(employees []employee.Employee) employee.EmployeeRepository {
	return &employeeRepository{employees: employees}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id int) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	return slices.Clone(r.employees), nil
}
