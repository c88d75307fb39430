package contact

import "time"

// Message is one inbound contact-form submission.
type Message struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Body      string
	Read      bool
	CreatedAt time.Time
}
