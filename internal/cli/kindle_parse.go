package cli

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/mrlokans/clippings/internal/config"
	"github.com/mrlokans/clippings/internal/kindle"
	"github.com/mrlokans/clippings/internal/render"
)

// ParseCommand parses a Kindle My Clippings.txt file and prints the entries.
type ParseCommand struct {
	ClippingsPath string
	Format        config.OutputFormat
	Summary       bool
	Verbose       bool
}

func newParseCommand(opts *rootOptions) *cobra.Command {
	var (
		format  string
		summary bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "parse [FILE]",
		Short: "Parse a Kindle 'My Clippings.txt' file",
		Long: `Parse a Kindle 'My Clippings.txt' file and print every highlight, note and
bookmark in file order.

The clippings file is typically found at:
  /Volumes/Kindle/documents/My Clippings.txt

Parsing is all or nothing: the first malformed entry aborts the run and no
entries are printed.

Environment variables:
  CLIPPINGS_PATH   File parsed when FILE is omitted
  OUTPUT_FORMAT    Default output format: text, json, yaml (default: text)`,
		Example: `  clippings parse "/Volumes/Kindle/documents/My Clippings.txt"
  clippings parse "My Clippings.txt" --format json
  clippings parse --summary`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.envFile)
			if err != nil {
				return err
			}

			pc := &ParseCommand{
				ClippingsPath: cfg.Clippings.Path,
				Format:        cfg.Clippings.OutputFormat,
				Summary:       summary,
				Verbose:       verbose,
			}
			if len(args) == 1 {
				pc.ClippingsPath = args[0]
			}
			if cmd.Flags().Changed("format") {
				pc.Format = config.OutputFormat(format)
			}

			return pc.Run(cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(config.DefaultOutputFormat), "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print the number of entries per book")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	return cmd
}

func (pc *ParseCommand) Run(out, errOut io.Writer) error {
	clippings := config.Clippings{Path: pc.ClippingsPath, OutputFormat: pc.Format}
	if err := clippings.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	logger := log.New(io.Discard, "", log.LstdFlags)
	if pc.Verbose {
		logger.SetOutput(errOut)
	}

	logger.Printf("Reading clippings from %s", pc.ClippingsPath)

	entries, err := kindle.NewParser().ParseFile(pc.ClippingsPath)
	if err != nil {
		return fmt.Errorf("failed to parse clippings: %w", err)
	}

	logger.Printf("Parsed %d entries", len(entries))

	if err := render.Entries(out, pc.Format, entries); err != nil {
		return fmt.Errorf("failed to render entries: %w", err)
	}

	if pc.Summary {
		// keep stdout machine readable for json and yaml
		summaryOut := out
		if pc.Format != config.OutputFormatText {
			summaryOut = errOut
		}
		if err := render.Summary(summaryOut, entries); err != nil {
			return fmt.Errorf("failed to render summary: %w", err)
		}
	}

	return nil
}
