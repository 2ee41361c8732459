package snapshot

import "errors"

var ErrUnsupportedSchema = errors.New("unsupported snapshot schema")
