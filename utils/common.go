// Common package contains helpers shared by the paacman loaders
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

// gzip member header
var gzipMagic = [2]byte{0x1F, 0x8B}

// IsGzip reports whether r starts with a gzip header, without consuming it
func IsGzip(r *bufio.Reader) bool {
	magic, err := r.Peek(2)
	return err == nil && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1]
}

// ReadMaybeGzip returns the contents of file. Gzipped files are detected
// by their header and decompressed, whatever their extension.
func ReadMaybeGzip(file string) ([]byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var reader io.Reader = br
	if IsGzip(br) {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		defer gr.Close()
		reader = gr
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	return data, nil
}
