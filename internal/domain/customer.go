package domain

// Customer holds data retrieved from the customer service. It is not an
// entity of this service's database.
type Customer struct {
	ID   int64
	Name string
}
