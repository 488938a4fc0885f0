package attachment

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// FromRequest extracts one uploaded file from a multipart request. It returns
// nil (not an error) when the field is absent, so optional uploads fall
// through to the resolver's fallback.
func FromRequest(r *http.Request, field string) (*Upload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("read upload %s: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", field, err)
	}
	return &Upload{Filename: header.Filename, Data: data}, nil
}
