package manifest

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"io"
)

var errNotObject = goerrors.New("expected a JSON object")

// DependencyNames returns the keys of the top-level "dependencies" object in
// the order they are declared. A document without that key yields an empty
// list. A repeated key keeps its first position, matching how the document
// would load into an insertion-ordered map.
func DependencyNames(r io.Reader) ([]string, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	names := []string{}
	for dec.More() {
		key, err := objectKey(dec)
		if err != nil {
			return nil, err
		}
		if key != "dependencies" {
			if err := skipValue(dec); err != nil {
				return nil, err
			}
			continue
		}
		if names, err = objectKeys(dec); err != nil {
			return nil, fmt.Errorf("dependencies: %w", err)
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, goerrors.New("unexpected data after top-level object")
	}
	return names, nil
}

func objectKeys(dec *json.Decoder) ([]string, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	keys := []string{}
	seen := make(map[string]bool)
	for dec.More() {
		key, err := objectKey(dec)
		if err != nil {
			return nil, err
		}
		if err := skipValue(dec); err != nil {
			return nil, err
		}
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys, expectDelim(dec, '}')
}

func objectKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("unexpected token %v", tok)
	}
	return key, nil
}

func skipValue(dec *json.Decoder) error {
	var raw json.RawMessage
	return dec.Decode(&raw)
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		if want == '{' {
			return errNotObject
		}
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
