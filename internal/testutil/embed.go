package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

// TestdataFS holds the annotated-json fixtures. Every fixture is in the
// exact layout Stringify produces, so it must survive a round trip.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, path.Join("testdata", name))
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// TestDataNames returns the names of all embedded fixtures.
func TestDataNames() ([]string, error) {
	matches, err := fs.Glob(TestdataFS, "testdata/*.json")
	if err != nil {
		return nil, err
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = path.Base(m)
	}
	return names, nil
}
