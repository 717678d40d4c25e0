package handlers

// CreateRedirectRequest carries the raw encoded redirect and its media type.
type CreateRedirectRequest struct {
	ContentType string `doc:"Media type of the body, selects the serializer" example:"application/json" header:"Content-Type"`
	RawBody     []byte
}

// CreateRedirectResponse carries the stored redirect encoded with the request's serializer.
type CreateRedirectResponse struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// RedirectRequest is the request for resolving a short code.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"3f2a9c4e1b7d8a60" path:"code"`
}

// RedirectResponse sends the client on to the stored URL.
type RedirectResponse struct {
	Status   int
	Location string `header:"Location"`
}
