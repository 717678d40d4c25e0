package shortener

// Serializer converts redirects to and from a wire format.
type Serializer interface {
	// Encode renders a fully populated redirect.
	Encode(redirect *Redirect) ([]byte, error)

	// Decode parses data into a redirect. Absent code and created_at fields
	// decode to their zero values; a missing url is an error.
	Decode(data []byte) (*Redirect, error)

	// ContentType is the media type written alongside encoded bodies.
	ContentType() string
}
