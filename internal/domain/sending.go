package domain

// OutboundMessage is the fully-resolved payload handed to the mail
// dispatcher. HTML is optional; a blank value means plaintext only.
type OutboundMessage struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Text       string   `json:"text"`
	HTML       string   `json:"html,omitempty"`
}

// Envelope is what a transport submits: an OutboundMessage plus the
// statically configured sender address.
type Envelope struct {
	From    string
	To      []string
	Subject string
	Text    string
	HTML    string
}

// HasHTML reports whether the envelope carries a rich-content part.
func (e Envelope) HasHTML() bool {
	return e.HTML != ""
}
