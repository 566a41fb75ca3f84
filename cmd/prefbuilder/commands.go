package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/worldpref/internal/session"
	"github.com/katalvlaran/worldpref/preference"
	"github.com/katalvlaran/worldpref/signature"
)

// newInitCmd creates the "init" command.
func newInitCmd(a *app) *cobra.Command {
	var (
		to  string
		raw bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Print the initial preference of the signature",
		Long:  "Init prints the preference with a single rank holding every world.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat(to)
			if err != nil {
				return err
			}
			return a.writePreference(cmd, preference.Initial(a.sig), format, raw)
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Output format (default from config)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Write binary formats as raw bytes")

	return cmd
}

// newConvertCmd creates the "convert" command.
func newConvertCmd(a *app) *cobra.Command {
	var (
		in     inputFlags
		to     string
		rawOut bool
	)
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a preference between encodings",
		Long:  "Convert decodes a preference from a file or stdin in one encoding, validates it against the signature and prints it in another.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat(to)
			if err != nil {
				return err
			}
			p, err := a.readPreference(cmd, in, args)
			if err != nil {
				return err
			}
			return a.writePreference(cmd, p, format, rawOut)
		},
	}
	in.register(cmd, "json")
	cmd.Flags().StringVar(&to, "to", "", "Output format (default from config)")
	cmd.Flags().BoolVar(&rawOut, "raw-out", false, "Write binary formats as raw bytes")

	return cmd
}

// newMoveCmd creates the "move" command.
func newMoveCmd(a *app) *cobra.Command {
	var (
		in    inputFlags
		input string
		to    string
	)
	cmd := &cobra.Command{
		Use:   "move WORLD RANK",
		Short: "Move a world to another rank",
		Long: `Move relocates WORLD to rank RANK and prints the result.
WORLD is an index or an assignment such as "a,!b". The starting preference is
read with --input (use - for stdin) or is the initial one.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat(to)
			if err != nil {
				return err
			}
			w, err := parseWorld(a.sig, args[0])
			if err != nil {
				return err
			}
			target, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rank %q: %w", args[1], err)
			}

			s, err := session.New(a.sig, a.mode, session.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if input != "" {
				p, err := a.readPreference(cmd, in, []string{input})
				if err != nil {
					return err
				}
				if _, err := s.Apply(session.ReplacePreference{Preference: p}); err != nil {
					return err
				}
			}
			st, err := s.Apply(session.MoveWorld{World: w, Target: target})
			if err != nil {
				return err
			}
			a.logger.Info("world moved",
				zap.Uint32("world", uint32(w)),
				zap.Int("rank", target),
				zap.Int("ranks", st.Preference.RankCount()))

			return a.writePreference(cmd, st.Preference, format, false)
		},
	}
	in.register(cmd, "json")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Starting preference file (- for stdin)")
	cmd.Flags().StringVar(&to, "to", "", "Output format (default from config)")

	return cmd
}

// newShowCmd creates the "show" command.
func newShowCmd(a *app) *cobra.Command {
	var in inputFlags
	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "List the ranks of a preference with their worlds",
		Long:  "Show prints one line per world: its rank, index and assignment. Without a file it reads stdin; with --initial it shows the initial preference.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := preference.Initial(a.sig)
			if initial, _ := cmd.Flags().GetBool("initial"); !initial {
				var err error
				if p, err = a.readPreference(cmd, in, args); err != nil {
					return err
				}
			}
			return writeRanks(cmd, p)
		},
	}
	in.register(cmd, "json")
	cmd.Flags().Bool("initial", false, "Show the initial preference instead of reading one")

	return cmd
}

func writeRanks(cmd *cobra.Command, p preference.WorldPreference) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tWORLD\tASSIGNMENT")
	sig := p.Signature()
	for r, worlds := range p.Ranks() {
		if len(worlds) == 0 {
			fmt.Fprintf(tw, "%d\t-\t(empty)\n", r)
			continue
		}
		for _, w := range worlds {
			as, err := sig.Assignment(w)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%d\t%d\t%s\n", r, w, as)
		}
	}

	return tw.Flush()
}

// newConfigCmd creates the "config" command.
func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

// parseWorld reads a world index or an assignment like "a,!b".
func parseWorld(sig signature.Signature, s string) (signature.World, error) {
	if n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32); err == nil {
		w := signature.World(n)
		if !sig.Contains(w) {
			return 0, fmt.Errorf("world %d: %w", w, signature.ErrWorldOutOfRange)
		}
		return w, nil
	}

	return sig.ParseWorld(s)
}
