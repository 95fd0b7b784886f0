package mines

import "errors"

var ErrInvalidParams = errors.New("invalid game params")
