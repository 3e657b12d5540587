// Package httpapi exposes a facade over HTTP: notifications are posted by
// name and command or mediator registrations can be looked up.
package httpapi

import "time"

const shutdownTimeout = 5 * time.Second
