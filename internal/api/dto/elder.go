package dto

// CreateElderRequest represents the registration request. Required fields
// are pointers so that absent and null values reach validation as nil.
type CreateElderRequest struct {
	Name          *string `json:"name"`
	Age           *int    `json:"age"`
	GuardianName  *string `json:"guardian_name"`
	GuardianPhone *string `json:"guardian_phone"`
	PostalCode    *string `json:"postal_code"`
	Street        *string `json:"street"`
	Number        *string `json:"number"`
	Neighborhood  *string `json:"neighborhood"`
	City          *string `json:"city"`
	State         *string `json:"state"`
}

// CreateElderResponse is returned on 201
type CreateElderResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// ElderResponse represents a stored elder with every field populated
type ElderResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
	PostalCode    string `json:"postal_code"`
	Street        string `json:"street"`
	Number        string `json:"number"`
	Neighborhood  string `json:"neighborhood"`
	City          string `json:"city"`
	State         string `json:"state"`
}
