package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/stewi1014/phisave/interchange"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build <kind> <file>",
	Short: "Encode a document into a record",
	Long: `Encode a JSON or MessagePack document into a bit-packed save record.
Length fields are computed from the document. The file - reads standard input.

Example:
  phisave build game_key gameKey.json -o gameKey.bin
  phisave build user user.msgpack --format msgpack --base64`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: interchange.KindNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := buildFile(cmd.InOrStdin(), args[0], args[1], opts)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), opts.out, data)
	},
}

// buildFile reads the document of the given kind from path, returning its record.
func buildFile(stdin io.Reader, kind, path string, opts options) ([]byte, error) {
	k, err := interchange.Lookup(kind)
	if err != nil {
		return nil, err
	}

	doc, err := readInput(stdin, path)
	if err != nil {
		return nil, err
	}

	data, err := k.Encode(doc, opts.codec)
	if err != nil {
		return nil, err
	}
	slog.Info("built record", "kind", kind, "bytes", len(data), "format", opts.codec.Name())

	if opts.base64 {
		data = encodeBase64(data)
	}
	return data, nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
