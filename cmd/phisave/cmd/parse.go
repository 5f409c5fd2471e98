package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/stewi1014/phisave/interchange"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <kind> <file>",
	Short: "Decode a record into a document",
	Long: `Decode a bit-packed save record into a JSON or MessagePack document.
The file - reads standard input.

Example:
  phisave parse game_record gameRecord.bin
  phisave parse summary summary.b64 --base64 --format msgpack -o summary.msgpack`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: interchange.KindNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := parseFile(cmd.InOrStdin(), args[0], args[1], opts)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), opts.out, doc)
	},
}

// parseFile reads the record of the given kind from path, returning its document.
func parseFile(stdin io.Reader, kind, path string, opts options) ([]byte, error) {
	k, err := interchange.Lookup(kind)
	if err != nil {
		return nil, err
	}

	data, err := readInput(stdin, path)
	if err != nil {
		return nil, err
	}
	if opts.base64 {
		if data, err = decodeBase64(data); err != nil {
			return nil, err
		}
	}

	doc, err := k.Decode(data, opts.codec)
	if err != nil {
		return nil, err
	}
	slog.Info("parsed record", "kind", kind, "bytes", len(data), "format", opts.codec.Name())

	if _, ok := opts.codec.(interchange.JSON); ok {
		doc = append(doc, '\n')
	}
	return doc, nil
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
