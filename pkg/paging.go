package pkg

import (
	"errors"
	"strconv"
)

var ErrInvalidPaging = errors.New("invalid page or size")

const MaxPageSize = 100

// PagingFromVars reads the {page} and {size} route vars, both 1-based and positive.
func PagingFromVars(vars map[string]string) (page, size int, err error) {
	page, err = strconv.Atoi(vars["page"])
	if err != nil || page < 1 {
		return 0, 0, ErrInvalidPaging
	}
	size, err = strconv.Atoi(vars["size"])
	if err != nil || size < 1 || size > MaxPageSize {
		return 0, 0, ErrInvalidPaging
	}
	return page, size, nil
}
