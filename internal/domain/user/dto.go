package user

// Identity carries the fields needed to provision a user row, whether
// they come from request claims or from a webhook event.
type Identity struct {
	ExternalID string
	Name       string
	Email      string
}
