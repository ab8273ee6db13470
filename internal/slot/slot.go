// Package slot implements the durable storage slots backing the state
// container: one JSONL file per collection under the data directory.
// Loads are fail-open (a missing or corrupt slot is the empty
// collection); saves are full overwrites using the temp-file, fsync,
// rename pattern so a torn write is never visible.
package slot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/workos/pkg/types"
)

// maxRecordBytes caps a single slot line. The scanner default (64KB) is
// smaller than one long note body; hitting this cap still means the
// slot hydrates empty, so it is set well past any plausible record.
const maxRecordBytes = 16 * 1024 * 1024

// Path returns the file path of a collection's slot.
func Path(dataDir, key string) string {
	return filepath.Join(dataDir, key+".jsonl")
}

// Init creates the data directory and an empty slot file for every key
// that does not have one yet. Existing slots are left untouched.
func Init(dataDir string, keys []string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	for _, key := range keys {
		path := Path(dataDir, key)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
	}
	return nil
}

// Load reads a slot and returns its records in stored order. An absent
// file, an unreadable file, or any malformed line yields the empty
// collection: a corrupted slot is indistinguishable from a never-used
// one and must not block startup. The fallback is logged, never raised.
func Load[R any](dataDir, key string, log zerolog.Logger) []R {
	path := Path(dataDir, key)
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Str("slot", key).Err(err).Msg("slot unreadable, hydrating empty collection")
		}
		return nil
	}
	defer f.Close()

	var records []R
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec R
		if err := json.Unmarshal(line, &rec); err != nil {
			// A partial collection was never committed by any save, so a
			// half-readable slot hydrates empty rather than per-line.
			log.Warn().Str("slot", key).Err(err).Msg("slot corrupt, hydrating empty collection")
			return nil
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		log.Warn().Str("slot", key).Err(err).Msg("slot unreadable, hydrating empty collection")
		return nil
	}
	return records
}

// Save serializes the full collection and overwrites the slot. The
// write lands in full or not at all; failures are reported as a
// *types.StorageError and are never retried here.
func Save[R any](dataDir, key string, records []R) error {
	lines := make([][]byte, 0, len(records))
	for _, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			return &types.StorageError{Slot: key, Err: fmt.Errorf("marshaling record: %w", err)}
		}
		lines = append(lines, b)
	}
	if err := writeLines(Path(dataDir, key), lines); err != nil {
		return &types.StorageError{Slot: key, Err: err}
	}
	return nil
}

// writeLines atomically replaces path with one record per line.
func writeLines(path string, lines [][]byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".slot-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.Write(line); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
