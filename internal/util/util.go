package util

import (
	"encoding/json"
	"fmt"
	"io"
)

func Pprint(w io.Writer, i interface{}) error {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		return fmt.Errorf("could not encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(bytes))
	return err
}

func StringPtr(s string) *string {
	return &s
}
