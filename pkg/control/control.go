package control

import (
	"bufio"
	"strings"
)

// Field tags recognized in a control file. All other fields are skipped.
const (
	fieldPackage = "Package:"
	fieldDepends = "Depends:"
)

// Record is one package entry parsed from a control file.
// Records are immutable after parsing.
type Record struct {
	Name    string   // Package name, trimmed; the lookup key
	Depends []string // Direct dependency names, order-preserving and duplicate-free
}

// Parse scans raw control-file text into an ordered sequence of records.
//
// A blank line terminates the current record. A "Package:" line starts a new
// record; a "Depends:" line opens the dependency buffer; lines with leading
// whitespace fold into an open buffer (control-file field folding). All other
// fields are skipped.
//
// Parse never fails: malformed or out-of-order lines are tolerated silently
// so that the visualizer degrades gracefully on any repository snapshot.
func Parse(text string) []Record {
	var (
		records    []Record
		current    *Record
		depends    string
		hasDepends bool // a Depends value was seen for the current record
		buffering  bool // the Depends buffer still accepts folded lines
	)

	flush := func() {
		if current != nil {
			if hasDepends {
				current.Depends = ParseDepends(depends)
			}
			records = append(records, *current)
		}
		current = nil
		depends = ""
		hasDepends = false
		buffering = false
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		raw := scanner.Text()
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			flush()
		case buffering && len(raw) > 0 && (raw[0] == ' ' || raw[0] == '\t'):
			// Continuation of a folded Depends field.
			depends += " " + line
		case strings.HasPrefix(line, fieldPackage):
			current = &Record{Name: strings.TrimSpace(line[len(fieldPackage):])}
			depends = ""
			hasDepends = false
			buffering = false
		case strings.HasPrefix(line, fieldDepends):
			depends = strings.TrimSpace(line[len(fieldDepends):])
			hasDepends = true
			buffering = true
		default:
			// Any other field line ends an open Depends buffer, so folded
			// values of unmodeled fields never leak into the dependency list.
			buffering = false
		}
	}

	flush()
	return records
}

// Repository is an insertion-ordered index of records by package name.
//
// When two records share a name, the later one wins (overwrite-on-insert)
// while the name keeps its original position. Lookups for absent names are a
// defined miss, not an error.
type Repository struct {
	names   []string
	records map[string]Record
}

// NewRepository indexes a record sequence by package name.
func NewRepository(records []Record) *Repository {
	r := &Repository{records: make(map[string]Record, len(records))}
	for _, rec := range records {
		if _, exists := r.records[rec.Name]; !exists {
			r.names = append(r.names, rec.Name)
		}
		r.records[rec.Name] = rec
	}
	return r
}

// ParseRepository parses control-file text directly into a Repository.
func ParseRepository(text string) *Repository {
	return NewRepository(Parse(text))
}

// Lookup returns the record for name and whether it exists.
func (r *Repository) Lookup(name string) (Record, bool) {
	rec, ok := r.records[name]
	return rec, ok
}

// Names returns all package names in insertion order.
func (r *Repository) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of distinct packages in the repository.
func (r *Repository) Len() int { return len(r.records) }
