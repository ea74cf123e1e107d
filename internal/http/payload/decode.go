package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 16

var ErrEmptyBody = errors.New("request body is empty")

func DecodePayload(r *http.Request, object any) (err error) {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder.DisallowUnknownFields()

	err = decoder.Decode(object)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	if err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}
