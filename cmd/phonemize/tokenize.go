package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/example/go-phonemize/internal/text"
	"github.com/spf13/cobra"
)

// tokenWire is the per-token record emitted by the tokenize subcommand.
type tokenWire struct {
	Text      string            `json:"text"`
	Index     int               `json:"index"`
	IsWord    bool              `json:"is_word"`
	Features  map[string]string `json:"features,omitempty"`
	Break     string            `json:"break,omitempty"`
	PronIndex int               `json:"pron_index,omitempty"`
}

// sentenceWire is the per-sentence record emitted by the tokenize subcommand.
type sentenceWire struct {
	Raw    string      `json:"raw_text"`
	Break  string      `json:"break"`
	Tokens []tokenWire `json:"tokens"`
}

func newTokenizeCmd() *cobra.Command {
	var inputText string
	var pretty bool

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Split text into normalized sentences and tokens",
		Long: "Reads lines from stdin (or --text) and prints one JSON record per " +
			"sentence with its normalized tokens.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			svc, _, err := buildService(cfg)
			if err != nil {
				return err
			}

			enc := newEncoder(cmd.OutOrStdout(), pretty)
			return forEachLine(inputText, cmd.InOrStdin(), func(line string) error {
				for _, s := range svc.Tokenize(line) {
					if err := enc.Encode(sentenceWire{
						Raw:    s.Raw,
						Break:  s.Break.String(),
						Tokens: wireTokens(s),
					}); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&inputText, "text", "", "Text to tokenize (if empty, read lines from stdin)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON output")

	return cmd
}

func wireTokens(s *text.Sentence) []tokenWire {
	out := make([]tokenWire, 0, len(s.Tokens))
	for _, tok := range s.Tokens {
		tw := tokenWire{
			Text:      tok.Text,
			Index:     tok.Index,
			IsWord:    tok.IsWord,
			Features:  tok.Features,
			PronIndex: tok.PronIndex,
		}
		if !tok.IsWord {
			tw.Break = tok.Break.String()
		}
		out = append(out, tw)
	}
	return out
}

func newEncoder(w io.Writer, pretty bool) *json.Encoder {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc
}

// forEachLine feeds fn either the --text value or each non-empty stdin
// line.
func forEachLine(inputText string, stdin io.Reader, fn func(string) error) error {
	if strings.TrimSpace(inputText) != "" {
		return fn(inputText)
	}

	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
