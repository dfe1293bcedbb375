package project

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"

	"scaffold_ai_server/internal/types"
)

// BuildArchive serializes a file map into one zip archive. Placeholder
// entries are skipped, binary entries are base64-decoded, and members are
// written in sorted path order. Any member or serialization failure aborts
// the whole archive; no partial bytes are ever returned.
func BuildArchive(files types.FileMap) ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if strings.HasSuffix(path, types.PlaceholderSuffix) {
			continue
		}

		member, err := zw.Create(path)
		if err != nil {
			zw.Close()
			return nil, &ArchiveError{Err: fmt.Errorf("creating member %s: %w", path, err)}
		}

		entry := files[path]
		var data []byte
		if entry.Binary {
			data, err = base64.StdEncoding.DecodeString(entry.Base64)
			if err != nil {
				zw.Close()
				return nil, &ArchiveError{Err: fmt.Errorf("decoding binary member %s: %w", path, err)}
			}
		} else {
			data = []byte(entry.Content)
		}

		if _, err := member.Write(data); err != nil {
			zw.Close()
			return nil, &ArchiveError{Err: fmt.Errorf("writing member %s: %w", path, err)}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, &ArchiveError{Err: fmt.Errorf("finalizing archive: %w", err)}
	}
	return buf.Bytes(), nil
}
