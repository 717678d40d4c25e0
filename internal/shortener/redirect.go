package shortener

// Redirect maps a short code to its destination URL.
type Redirect struct {
	// Code is the lookup key. Assigned by Service.Store and never changed afterwards.
	Code string
	// URL is the destination. The core does not validate it.
	URL string
	// CreatedAt is the creation time in unix seconds, assigned by Service.Store.
	CreatedAt int64
}
