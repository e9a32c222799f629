package handler

import "errors"

// errNoHandlersAreCreated means the server config names no transport.
var errNoHandlersAreCreated = errors.New("no handlers are created")
