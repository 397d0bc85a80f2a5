package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/myrjola/liftplan/internal/program"
	"gopkg.in/yaml.v3"
)

//go:embed metadata.yaml
var seedMetadata []byte

// ErrInvalidMetadata is returned when a metadata document references unknown muscles or levels.
var ErrInvalidMetadata = errors.New("invalid exercise metadata")

// DefaultMetadata returns the metadata of the seed catalog.
func DefaultMetadata() (program.MetadataTable, error) {
	return LoadMetadata(bytes.NewReader(seedMetadata))
}

// LoadMetadata decodes a YAML document mapping exercise names to their metadata.
func LoadMetadata(r io.Reader) (program.MetadataTable, error) {
	var table program.MetadataTable
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}

	var errs []error
	seen := make(map[string]string, len(table))
	for _, name := range slices.Sorted(maps.Keys(table)) {
		folded := strings.ToLower(strings.TrimSpace(name))
		if other, ok := seen[folded]; ok {
			errs = append(errs, fmt.Errorf("%w: %q and %q differ only by case", ErrInvalidMetadata, other, name))
		}
		seen[folded] = name
	}
	for name, md := range table {
		if md.MinLevel != "" && md.MinLevel.Rank() == 0 {
			errs = append(errs, fmt.Errorf("%w: %s: unknown level %q", ErrInvalidMetadata, name, md.MinLevel))
		}
		for _, m := range append(append([]program.MuscleGroup{}, md.Primary...), md.Secondary...) {
			if _, ok := program.ParseMuscleGroup(string(m)); !ok {
				errs = append(errs, fmt.Errorf("%w: %s: unknown muscle group %q", ErrInvalidMetadata, name, m))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err //nolint:wrapcheck // joined errors already carry the context
	}
	return table, nil
}
