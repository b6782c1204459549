package rest

import (
	"fmt"
	"net/url"
)

// Query builds URL query values from a map. Keys with a nil value are
// omitted; all other values are stringified.
func Query(params map[string]any) url.Values {
	if len(params) == 0 {
		return nil
	}
	q := make(url.Values, len(params))
	for k, v := range params {
		if v == nil {
			continue
		}
		q.Set(k, fmt.Sprintf("%v", v))
	}
	return q
}
