package cache

import "errors"

var ErrUnavailable = errors.New("redis is not configured")
