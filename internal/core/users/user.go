package users

// User represents a user account stored in the key-value store, keyed by
// username. Credential handling lives outside this core.
type User struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BirthDate string `json:"birthDate"`
}
