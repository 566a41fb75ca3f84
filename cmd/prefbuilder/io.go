package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/worldpref/codec/bitstring"
	"github.com/katalvlaran/worldpref/codec/jsoncodec"
	"github.com/katalvlaran/worldpref/codec/ranklist"
	"github.com/katalvlaran/worldpref/parser"
	"github.com/katalvlaran/worldpref/preference"
)

// inputFlags selects where a command reads a preference from.
type inputFlags struct {
	from  string
	raw   bool
	ranks int
}

func (in *inputFlags) register(cmd *cobra.Command, def string) {
	cmd.Flags().StringVar(&in.from, "from", def, "Input format: json, worldlist or ranklist")
	cmd.Flags().BoolVar(&in.raw, "raw", false, "Binary input is raw bytes instead of 0/1 text")
	cmd.Flags().IntVar(&in.ranks, "ranks", 0, "Rank count for ranklist input (0 to infer)")
}

// readPreference decodes a preference from the file named by args[0], or
// stdin when args is empty or "-".
func (a *app) readPreference(cmd *cobra.Command, in inputFlags, args []string) (preference.WorldPreference, error) {
	format, err := parser.ParseFormat(in.from)
	if err != nil {
		return preference.WorldPreference{}, err
	}
	data, source, err := readInput(cmd, args)
	if err != nil {
		return preference.WorldPreference{}, err
	}
	if format.Binary() && !in.raw {
		data, err = bitstring.Parse(string(data))
		if err != nil {
			return preference.WorldPreference{}, fmt.Errorf("%s: %w", source, err)
		}
	}
	if format == parser.JSON {
		data = []byte(strings.TrimSpace(string(data)))
	}

	f := parser.New(a.sig, a.mode)
	var p preference.WorldPreference
	if format == parser.Ranklist && in.ranks > 0 {
		p, err = f.FromBinaryRanklist(data, ranklist.WithRankCount(in.ranks))
	} else {
		p, err = f.Parse(format, data)
	}
	if err != nil {
		a.logger.Debug("decode failed",
			zap.String("source", source),
			zap.Stringer("format", format),
			zap.Int("bytes", len(data)),
			zap.Error(err))
		return preference.WorldPreference{}, fmt.Errorf("%s: %w", source, err)
	}
	a.logger.Debug("decoded preference",
		zap.String("source", source),
		zap.Stringer("format", format),
		zap.Int("ranks", p.RankCount()))

	return p, nil
}

func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "stdin", fmt.Errorf("reading stdin: %w", err)
		}
		return data, "stdin", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, args[0], fmt.Errorf("reading input: %w", err)
	}

	return data, args[0], nil
}

// writePreference prints p in format; binary formats as 0/1 text unless raw.
func (a *app) writePreference(cmd *cobra.Command, p preference.WorldPreference, format parser.Format, raw bool) error {
	var (
		b   []byte
		err error
	)
	if format == parser.JSON && a.cfg.Indent > 0 {
		b, err = jsoncodec.Encode(p, jsoncodec.WithIndent(strings.Repeat(" ", a.cfg.Indent)))
	} else {
		b, err = parser.Encode(p, format)
	}
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if format.Binary() && raw {
		_, err = out.Write(b)
		return err
	}
	if format.Binary() {
		b = []byte(bitstring.Format(b))
	}
	_, err = fmt.Fprintln(out, string(b))

	return err
}

// outputFormat returns the --to override or the configured format.
func (a *app) outputFormat(to string) (parser.Format, error) {
	if to == "" {
		return a.format, nil
	}

	return parser.ParseFormat(to)
}
