package artifacts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"
)

var gzipMagic = []byte{0x1f, 0x8b}

// decode reads an artifact into a new T. Gzip input is detected by its magic
// bytes. JSON is tried first and YAML is the fallback format.
func decode[T any](r io.Reader) (*T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	if bytes.HasPrefix(data, gzipMagic) {
		if data, err = gunzip(data); err != nil {
			return nil, fmt.Errorf("%w: gzip: %w", ErrDecode, err)
		}
	}

	var primary T
	jsonErr := json.Unmarshal(data, &primary)
	if jsonErr == nil {
		return &primary, nil
	}

	var fallback T
	if yamlErr := yaml.Unmarshal(data, &fallback); yamlErr != nil {
		return nil, fmt.Errorf("%w: json: %v; yaml: %v", ErrDecode, jsonErr, yamlErr)
	}
	return &fallback, nil
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
