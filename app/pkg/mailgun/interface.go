package mailgun

import (
	"context"
	"fmt"
)

// Message is one transactional email as accepted by the messages endpoint.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

// DeliveryError carries the raw provider reply for server-side logging only.
type DeliveryError struct {
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("mailgun returned status %d", e.StatusCode)
}

type Sender interface {
	Send(ctx context.Context, message Message) error
}
