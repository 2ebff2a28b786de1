package util

import (
	"io"
	"net/http"
)

// Request bodies here only ever carry a candidate password.
const maxBodySize = 64 << 10

func HttpBody(r *http.Request) []byte {
	body := r.Body
	defer body.Close()

	bodyb, err := io.ReadAll(io.LimitReader(body, maxBodySize))
	if err != nil {
		return nil
	}

	return bodyb
}
