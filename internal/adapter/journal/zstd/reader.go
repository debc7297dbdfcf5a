package zstdjournal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/klauspost/compress/zstd"

	"homestead/internal/app/ports"
)

// ReadFile decodes every entry of one journal file. A file reopened after a
// restart holds several zstd frames; the decoder reads them in sequence.
func ReadFile(path string) ([]ports.JournalEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	var out []ports.JournalEntry
	for sc.Scan() {
		var entry ports.JournalEntry
		if err := json.Unmarshal(sc.Bytes(), &entry); err != nil {
			return nil, fmt.Errorf("%s: unmarshal: %w", filepath.Base(path), err)
		}
		out = append(out, entry)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return out, nil
}

// ReadDir decodes all journal files with the given prefix in hour order.
func ReadDir(dir, prefix string) ([]ports.JournalEntry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, prefix+"-*.jsonl.zst"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var out []ports.JournalEntry
	for _, p := range paths {
		entries, err := ReadFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}
	return out, nil
}
