package domain

type Elder struct {
	ID            int64  `db:"id"`
	Name          string `db:"name"`
	Age           int    `db:"age"`
	GuardianName  string `db:"guardian_name"`
	GuardianPhone string `db:"guardian_phone"`
	PostalCode    string `db:"postal_code"`

	// Address fields are optional and stored as empty strings when absent
	Street       string `db:"street"`
	Number       string `db:"number"`
	Neighborhood string `db:"neighborhood"`
	City         string `db:"city"`
	State        string `db:"state"`
}

func NewElder(name string, age int, guardianName, guardianPhone, postalCode string, addr Address) *Elder {
	return &Elder{
		Name:          name,
		Age:           age,
		GuardianName:  guardianName,
		GuardianPhone: guardianPhone,
		PostalCode:    postalCode,
		Street:        addr.Street,
		Number:        addr.Number,
		Neighborhood:  addr.Neighborhood,
		City:          addr.City,
		State:         addr.State,
	}
}
