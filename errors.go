package optblock

import "strconv"

// A SizeError reports a block larger than the MaxSize option allows.
type SizeError struct {
	Size int
	Max  int
}

func (e *SizeError) Error() string {
	return "optblock: block of " + strconv.Itoa(e.Size) + " bytes exceeds limit of " + strconv.Itoa(e.Max) + " bytes"
}
