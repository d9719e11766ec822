package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load parses a line-oriented lexicon into a Memory resolver.
//
// Each line is: word [feature=value]... phoneme [phoneme]...
// Fields are whitespace-separated; feature preferences carry an '=' and
// must precede the first phoneme. Repeated lines for one word append
// candidates in file order, which fixes their storage rank. '#' starts a
// comment; blank lines are skipped.
func Load(r io.Reader, caseSensitive bool) (*Memory, error) {
	m := NewMemory(caseSensitive)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("lexicon line %d: want word and phonemes, got %q", lineNo, line)
		}

		word := fields[0]
		preferred := make(map[string]string)
		phonemes := make([]string, 0, len(fields)-1)
		for _, f := range fields[1:] {
			if len(phonemes) == 0 && strings.Contains(f, "=") {
				k, v, _ := strings.Cut(f, "=")
				if k == "" || v == "" {
					return nil, fmt.Errorf("lexicon line %d: bad feature preference %q", lineNo, f)
				}
				preferred[k] = v
				continue
			}
			phonemes = append(phonemes, f)
		}
		if len(phonemes) == 0 {
			return nil, fmt.Errorf("lexicon line %d: no phonemes for %q", lineNo, word)
		}

		m.Add(word, phonemes, preferred)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	return m, nil
}

// LoadFile loads a lexicon from disk.
func LoadFile(path string, caseSensitive bool) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()

	m, err := Load(f, caseSensitive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
