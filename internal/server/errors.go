package server

import "errors"

var errBadRequest = errors.New("bad request")
