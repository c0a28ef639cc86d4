package dto

// ContactRequest is the payload submitted from the public contact form.
// Validation happens in the service layer, where rule order determines which
// message the client sees; the struct stays a plain transport shape.
type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Honeypot string `json:"honeypot"`
	Lang     string `json:"lang"`

	// Filled in by the transport, never by the client.
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

// ContactResult reports the outcome of a processed submission. Suppressed
// submissions carry no ticket; the caller still reports them as accepted.
type ContactResult struct {
	Ticket string
	Lang   string
	Status string
	Ack    string
}
