// Package seed turns a YAML document into the initial storefront state.
//
// Money is written as quoted strings ("14.99") and timestamps as RFC 3339.
// Unknown keys, unknown enum values and missing ids are rejected. The cart
// always starts empty.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jcmexdev/topup-storefront/internal/store"
)

//go:embed sample.yaml
var sample string

var ErrMissingID = errors.New("missing id")

// Default returns the bundled sample state.
func Default() (store.State, error) {
	return Load(strings.NewReader(sample))
}

// LoadFile reads and parses a seed document from path.
func LoadFile(path string) (store.State, error) {
	f, err := os.Open(path)
	if err != nil {
		return store.State{}, fmt.Errorf("seed: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes one seed document. An empty document yields an empty State.
func Load(r io.Reader) (store.State, error) {
	var doc document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return store.State{}, nil
		}
		return store.State{}, fmt.Errorf("seed: decode: %w", err)
	}

	return doc.state()
}
