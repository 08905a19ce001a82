package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/episaft/params"
	"github.com/katalvlaran/episaft/saft"
)

var (
	// ErrUnknownFormat indicates a database file with an unsupported extension.
	ErrUnknownFormat = errors.New("loader: unknown database format (want .json, .yaml or .yml)")
	// ErrComponentNotFound indicates a requested component missing from the database.
	ErrComponentNotFound = errors.New("loader: component not found in database")
	// ErrDuplicatePair indicates two binary entries covering the same pair.
	ErrDuplicatePair = errors.New("loader: duplicate binary entry for component pair")
)

// BinaryEntry is one row of a binary-parameter database: the two component
// identities plus the interaction record, flattened the way the files store it.
type BinaryEntry struct {
	ID1               saft.Identifier `json:"id1" yaml:"id1"`
	ID2               saft.Identifier `json:"id2" yaml:"id2"`
	saft.BinaryRecord `yaml:",inline"`
}

// ReadPureRecords decodes a pure-component database file.
func ReadPureRecords(path string) ([]saft.PureRecord, error) {
	var records []saft.PureRecord
	if err := readFile(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ReadBinaryEntries decodes a binary-parameter database file.
func ReadBinaryEntries(path string) ([]BinaryEntry, error) {
	var entries []BinaryEntry
	if err := readFile(path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// readFile dispatches on the file extension. JSON databases are the common
// case; YAML is accepted for hand-maintained files.
func readFile(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("loader: %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("loader: %s: %w", path, err)
		}
	default:
		return fmt.Errorf("loader: %s: %w", path, ErrUnknownFormat)
	}
	return nil
}

// Select picks components from a database by display name or CAS number,
// preserving the requested order. Matching is case-insensitive on names.
func Select(db []saft.PureRecord, components []string) ([]saft.PureRecord, error) {
	out := make([]saft.PureRecord, 0, len(components))
	for _, want := range components {
		idx := -1
		for i := range db {
			if matches(db[i].Identifier, want) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("loader: %q: %w", want, ErrComponentNotFound)
		}
		out = append(out, db[idx])
	}
	return out, nil
}

func matches(id saft.Identifier, want string) bool {
	return strings.EqualFold(id.Name, want) || id.CAS == want
}

// BinaryMatrixFor builds the dense binary matrix for the selected pure
// records from a sparse entry list. Entries whose identities are not both in
// the selection are skipped, as are entries carrying no parameters at all;
// two non-empty entries for one pair are an error.
func BinaryMatrixFor(pure []saft.PureRecord, entries []BinaryEntry) (*params.BinaryMatrix, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	matrix := params.NewBinaryMatrix(len(pure))
	filled := make(map[[2]int]bool)
	for _, e := range entries {
		if e.BinaryRecord.IsZero() {
			continue
		}
		i, ok1 := indexOf(pure, e.ID1)
		j, ok2 := indexOf(pure, e.ID2)
		if !ok1 || !ok2 {
			continue
		}
		key := [2]int{min(i, j), max(i, j)}
		if filled[key] {
			return nil, fmt.Errorf("loader: pair (%s, %s): %w",
				e.ID1.Name, e.ID2.Name, ErrDuplicatePair)
		}
		filled[key] = true
		matrix.SetSym(i, j, e.BinaryRecord)
	}
	return matrix, nil
}

func indexOf(pure []saft.PureRecord, id saft.Identifier) (int, bool) {
	for i := range pure {
		pid := pure[i].Identifier
		if id.CAS != "" && pid.CAS == id.CAS {
			return i, true
		}
		if id.Name != "" && strings.EqualFold(pid.Name, id.Name) {
			return i, true
		}
	}
	return 0, false
}

// NewSet is the one-call path: read the databases, select the components,
// assemble the binary matrix, and build the parameter Set. binaryPath may be
// empty when no binary parameters exist.
func NewSet(purePath, binaryPath string, components []string) (*params.Set, error) {
	db, err := ReadPureRecords(purePath)
	if err != nil {
		return nil, err
	}
	pure, err := Select(db, components)
	if err != nil {
		return nil, err
	}
	var matrix *params.BinaryMatrix
	if binaryPath != "" {
		entries, err := ReadBinaryEntries(binaryPath)
		if err != nil {
			return nil, err
		}
		if matrix, err = BinaryMatrixFor(pure, entries); err != nil {
			return nil, err
		}
	}
	return params.New(pure, matrix)
}
