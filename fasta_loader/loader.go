// Package fasta_loader turns a folder of single-record FASTA .txt files into
// the ordered protein records analyzed by package composition.
package fasta_loader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/maruel/natural"

	"paacman_go/composition"
	common "paacman_go/utils"
)

// Extension of the input files; other files in the folder are ignored
const Extension = ".txt"

// Source is one input file of the corpus
type Source struct {
	Path string
	Name string // Protein name derived from the file name
}

// SortNatural orders names numerically aware and case-insensitively
// ("P2" before "p10"). Names equal under that rule fall back to byte order so
// the result is a total order.
func SortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})
}

func naturalLess(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if natural.Less(la, lb) {
		return true
	}
	if natural.Less(lb, la) {
		return false
	}
	return a < b
}

// ProteinName strips the .txt extension and a trailing "fasta" token
// (with an optional '.', '_' or '-' separator) from a file name.
func ProteinName(fileName string) string {
	name := strings.TrimSuffix(filepath.Base(fileName), Extension)
	if trimmed := strings.TrimSuffix(name, "fasta"); trimmed != name {
		name = strings.TrimRight(trimmed, "._-")
	}
	return name
}

// Discover lists the .txt files of dir in natural order
func Discover(dir string) ([]Source, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+Extension))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", m, err)
		}
		if info.Mode().IsRegular() {
			files = append(files, filepath.Base(m))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no FASTA %s files in %s: %w", Extension, dir, composition.ErrEmptyCorpus)
	}

	SortNatural(files)
	sources := make([]Source, 0, len(files))
	for _, f := range files {
		sources = append(sources, Source{Path: filepath.Join(dir, f), Name: ProteinName(f)})
	}
	return sources, nil
}

// Load reads every source of dir into a protein record, in natural order.
// Any malformed file aborts the whole load.
func Load(dir string) ([]composition.ProteinRecord, error) {
	sources, err := Discover(dir)
	if err != nil {
		return nil, err
	}
	records := make([]composition.ProteinRecord, 0, len(sources))
	for order, src := range sources {
		rec, err := LoadFile(src, order)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadFile reads one (optionally gzip-compressed) source file
func LoadFile(src Source, order int) (composition.ProteinRecord, error) {
	data, err := common.ReadMaybeGzip(src.Path)
	if err != nil {
		return composition.ProteinRecord{}, err
	}
	return ReadRecord(bytes.NewReader(data), src.Name, order)
}

// ReadRecord parses exactly one FASTA record from r. Zero or several header
// lines yield a *composition.MalformedSequenceError.
func ReadRecord(r io.Reader, name string, order int) (composition.ProteinRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return composition.ProteinRecord{}, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if headers := countHeaders(data); headers != 1 {
		return composition.ProteinRecord{}, &composition.MalformedSequenceError{Name: name, Headers: headers}
	}

	template := linear.NewSeq("", nil, alphabet.Protein)
	sc := seqio.NewScanner(fasta.NewReader(bytes.NewReader(data), template))
	var residues strings.Builder
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return composition.ProteinRecord{}, fmt.Errorf("%s: unexpected sequence type %T", name, sc.Seq())
		}
		residues.WriteString(s.Seq.String())
	}
	if err := sc.Error(); err != nil {
		return composition.ProteinRecord{}, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return composition.NewProteinRecord(name, residues.String(), order), nil
}

// countHeaders counts lines that open a FASTA record
func countHeaders(data []byte) int {
	headers := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		if bytes.HasPrefix(bytes.TrimSpace(scanner.Bytes()), []byte(">")) {
			headers++
		}
	}
	return headers
}
