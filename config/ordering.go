package config

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/treedec/elimination"
	"github.com/katalvlaran/treedec/hypergraph"
)

// OrderingFilePrefix marks an ordering read from a YAML file.
const OrderingFilePrefix = "file:"

// orderingFile is the on-disk ordering format:
//
//	ordering: [3, 1, 2]
type orderingFile struct {
	Ordering []uint32 `yaml:"ordering"`
}

// ReadOrdering decodes a YAML ordering document.
func ReadOrdering(r io.Reader) (elimination.Ordering, error) {
	var f orderingFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decode ordering")
	}
	out := make(elimination.Ordering, len(f.Ordering))
	for i, v := range f.Ordering {
		out[i] = hypergraph.Vertex(v)
	}

	return out, nil
}

// OrderingAlgorithm resolves a decompose.ordering value.
func OrderingAlgorithm(spec string) (elimination.OrderingAlgorithm, error) {
	if spec == "natural" {
		return elimination.NaturalOrdering{}, nil
	}
	path, ok := strings.CutPrefix(spec, OrderingFilePrefix)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidConfig, "ordering %q", spec)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open ordering")
	}
	defer fh.Close()
	seq, err := ReadOrdering(fh)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return elimination.FixedOrdering{Sequence: seq}, nil
}
