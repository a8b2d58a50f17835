package analyses

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrJobDescriptionEmpty = errors.New("job description is required")
)
