package mvc

// Notification is a named event value broadcast through the View
type Notification interface {
	// Name identifies the notification; observers and commands are keyed by it
	Name() string

	// Body is an optional payload
	Body() any
	SetBody(body any)

	// Type is an optional discriminator carried alongside the name
	Type() string
	SetType(notificationType string)

	// ID is a correlation identifier unique to this notification instance
	ID() string

	String() string
}
