package oeis

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// BaseURL is the public OEIS b-file mirror drivers fetch from; a caller
// running offline should pre-populate the sqlite Cache instead of calling
// Fetch (spec §2's "OEIS loader" is an external collaborator, not part of
// the core's contract).
const BaseURL = "https://oeis.org"

// ParseBFile parses a b-file's contents: lines of "<index> <value>",
// blank lines and "#"-prefixed comments ignored, returning the values in
// index order.
func ParseBFile(r io.Reader) ([]int64, error) {
	sc := bufio.NewScanner(r)
	type entry struct {
		index int
		value int64
	}
	var entries []entry
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("oeis: malformed b-file line %q", line)
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("oeis: malformed index in %q: %w", line, err)
		}
		val, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("oeis: malformed value in %q: %w", line, err)
		}
		entries = append(entries, entry{index: idx, value: val})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("oeis: reading b-file: %w", err)
	}
	out := make([]int64, len(entries))
	for i, e := range entries {
		out[i] = e.value
		_ = e.index // b-files are already index-ordered; kept for clarity
	}
	return out, nil
}

// Fetch downloads and parses id's b-file from BaseURL (e.g. "A000079" ->
// "https://oeis.org/A000079/b000079.txt"), with a 30s client timeout.
func Fetch(id string) ([]int64, error) {
	url, err := bFileURL(id)
	if err != nil {
		return nil, err
	}
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("oeis: fetching %s: %w", id, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oeis: fetching %s: HTTP %d", id, resp.StatusCode)
	}
	return ParseBFile(resp.Body)
}

func bFileURL(id string) (string, error) {
	digits := strings.TrimPrefix(strings.ToUpper(id), "A")
	if len(digits) != 6 {
		return "", fmt.Errorf("oeis: malformed sequence id %q", id)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("oeis: malformed sequence id %q", id)
		}
	}
	return fmt.Sprintf("%s/A%s/b%s.txt", BaseURL, digits, digits), nil
}

// Loader resolves a sequence's terms, consulting cache before falling
// back to a network Fetch and populating the cache on a miss.
type Loader struct {
	Cache *Cache
}

// Load returns up to n terms of sequence id.
func (l *Loader) Load(id string, n int) ([]int64, error) {
	if l.Cache != nil {
		if terms, ok, err := l.Cache.Get(id); err != nil {
			return nil, err
		} else if ok {
			return clip(terms, n), nil
		}
	}
	terms, err := Fetch(id)
	if err != nil {
		return nil, err
	}
	if l.Cache != nil {
		if err := l.Cache.Put(id, terms); err != nil {
			return nil, err
		}
	}
	return clip(terms, n), nil
}

func clip(terms []int64, n int) []int64 {
	if n <= 0 || n >= len(terms) {
		return terms
	}
	return terms[:n]
}
