package employee

import "context"

type EmployeeService interface {
	// List returns the directory for the selection form.
	List(ctx context.Context) (ListEmployeeResponse, error)
}

type ListEmployeeResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}
