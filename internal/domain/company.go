package domain

// Company is an employer that issues benefit cards to its employees.
// Companies authenticate with an API key.
type Company struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	APIKey string `json:"-"`
}

// Employee is a company employee that can hold one card per benefit type.
type Employee struct {
	ID        int64  `json:"id"`
	FullName  string `json:"full_name"`
	CPF       string `json:"cpf"`
	Email     string `json:"email"`
	CompanyID int64  `json:"company_id"`
}
