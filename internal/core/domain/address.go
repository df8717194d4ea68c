package domain

// Address is a normalized postal address as returned by the postal code lookup.
type Address struct {
	Street       string
	Number       string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
}
