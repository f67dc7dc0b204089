package review

import "errors"

var ErrWrite = errors.New("review: cannot write review file")
