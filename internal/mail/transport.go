// Package mail delivers plain-text messages to the fixed feedback mailbox.
package mail

import "context"

// Message is the part of an email that varies per send. Sender, recipient and server
// are fixed by the transport's configuration.
type Message struct {
	Subject string
	Body    string
}

// Transport sends a message. Any failure is returned as-is for the caller to classify.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}
