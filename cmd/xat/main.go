// Package main provides the CLI entry point for xat.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/niumlaque/xat/pkg/xat"
	"github.com/niumlaque/xat/pkg/xat/models"
	"github.com/niumlaque/xat/pkg/xat/output"
	"github.com/niumlaque/xat/pkg/xat/parser"
)

var version = "dev"

type cliOptions struct {
	separator     string
	eol           string
	printEmptyRow bool
	printRowNum   bool
	password      string
	encoding      string
	outputPath    string
	listSheets    bool
	verbose       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts cliOptions

	rootCmd := &cobra.Command{
		Use:   "xat [flags] <file> [sheet]",
		Short: "Print a worksheet as delimited text",
		Long: `xat prints one worksheet of an Excel workbook (.xlsx, .xlsm) as lines of
separator-joined cells, ready for grep, awk, cut and friends.

The first sheet is used when no sheet name is given. Sheet names are
case-sensitive. Use "-" as <file> to read the workbook from standard input.`,
		Args:          cobra.RangeArgs(1, 2),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.separator, "separator", "s", models.DefaultSeparator, `Column separator (escape sequences such as "\t" are accepted)`)
	flags.StringVar(&opts.eol, "eol", models.DefaultEOL(), `Line terminator (escape sequences such as "\r\n" are accepted)`)
	flags.BoolVar(&opts.printEmptyRow, "print-empty-row", false, "Print rows whose cells are all empty")
	flags.BoolVar(&opts.printRowNum, "print-row-num", false, "Prefix each line with its 1-based worksheet row number")
	flags.StringVarP(&opts.password, "password", "p", "", "Password of an encrypted workbook")
	flags.StringVar(&opts.encoding, "encoding", "utf-8", "Output encoding (e.g. utf-8, shift_jis, windows-1252)")
	flags.StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVarP(&opts.listSheets, "list-sheets", "l", false, "List sheet names and exit")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")

	return rootCmd
}

func run(stdout io.Writer, cli cliOptions, args []string) (err error) {
	inputPath := args[0]

	log.SetFlags(0)
	log.SetPrefix("xat: ")
	if !cli.verbose {
		log.SetOutput(io.Discard)
	}

	opts := xat.DefaultOptions()
	opts.Password = cli.password
	if len(args) == 2 {
		opts.SheetName = args[1]
	}
	opts.Output = models.OutputConfig{
		Separator:      unescape(cli.separator),
		EOL:            unescape(cli.eol),
		KeepEmptyRows:  cli.printEmptyRow,
		PrintRowNumber: cli.printRowNum,
		Encoding:       cli.encoding,
	}

	// Reject a bad encoding before the workbook is decoded.
	if _, err := output.NewEncodingWriter(io.Discard, opts.Output.Encoding); err != nil {
		return err
	}

	if cli.listSheets {
		names, err := xat.ListSheets(inputPath, opts)
		if err != nil {
			return err
		}
		w := bufio.NewWriter(stdout)
		for _, name := range names {
			fmt.Fprintln(w, name)
		}
		return w.Flush()
	}

	sheet, err := xat.SelectSheet(inputPath, opts)
	if err != nil {
		return err
	}
	log.Printf("sheet %q: range %s, %d rows, %d columns", sheet.Name, parser.UsedRange(sheet), len(sheet.Rows), sheet.Width)

	out := stdout
	if cli.outputPath != "" {
		f, createErr := os.Create(cli.outputPath)
		if createErr != nil {
			return fmt.Errorf("failed to create output: %w", createErr)
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		out = f
	}

	if err := xat.WriteSheet(out, sheet, opts.Output); err != nil {
		return err
	}
	log.Printf("wrote sheet %q", sheet.Name)
	return nil
}

// unescape interprets Go escape sequences in s. Values that are not valid
// escaped strings are returned unchanged.
func unescape(s string) string {
	if s == "" {
		return s
	}
	u, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return s
	}
	return u
}
