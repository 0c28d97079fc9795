package jsonx

import "errors"

var ErrNotArray = errors.New("json value is not an array")
