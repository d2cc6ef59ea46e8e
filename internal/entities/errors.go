// Package entities contains core business entities and errors.
package entities

import "errors"

// ErrInvalidArgument signals a request the transport layer cannot act on.
var ErrInvalidArgument = errors.New("invalid argument")
