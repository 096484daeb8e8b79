package employee

import "context"

// EmployeeRepository defines read access to the employee directory.
// The directory is static: loaded once from the seed document, never
// mutated within a running process.
type EmployeeRepository interface {
	// GetByID retrieves an employee by id.
	GetByID(ctx context.Context, id int) (Employee, error)

	// List retrieves the full directory in seed order.
	List(ctx context.Context) ([]Employee, error)
}
