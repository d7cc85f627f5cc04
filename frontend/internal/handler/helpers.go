package handler

import (
	"net/http"
	"strconv"
)

// pageParam reads ?page, treating anything missing or malformed as page 1.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
