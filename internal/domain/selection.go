package domain

import (
	"strconv"
	"strings"
)

// ParseSelection turns raw form input into a Selection.
//
// A blank store or grain yields ok=false and no error: the submission is
// ignored and the caller keeps its previous Selection. A store that is not
// an integer yields an *InvalidStoreFormatError.
func ParseSelection(storeInput, grainInput string) (sel Selection, ok bool, err error) {
	storeInput = strings.TrimSpace(storeInput)
	grainInput = strings.TrimSpace(grainInput)
	if storeInput == "" || grainInput == "" {
		return Selection{}, false, nil
	}

	store, err := strconv.Atoi(storeInput)
	if err != nil {
		return Selection{}, false, &InvalidStoreFormatError{Input: storeInput, Err: err}
	}
	return Selection{Store: store, Grain: grainInput}, true, nil
}
