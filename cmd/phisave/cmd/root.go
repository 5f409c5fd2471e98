package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stewi1014/phisave/config"
	"github.com/stewi1014/phisave/interchange"
)

// options are the settings shared by the subcommands, resolved from the config file and flags.
type options struct {
	codec  interchange.Codec
	base64 bool
	out    string
}

var opts options

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "phisave",
	Short: "phisave - save record transcoder",
	Long: `phisave converts the bit-packed records of a game save to JSON or
MessagePack documents, and back.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		conf, err := resolveConfig(cmd.Flags())
		if err != nil {
			return err
		}

		level, err := conf.LogLevel()
		if err != nil {
			return err
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

		codec, err := interchange.CodecByName(conf.Format, conf.Pretty)
		if err != nil {
			return err
		}

		b64, _ := cmd.Flags().GetBool("base64")
		out, _ := cmd.Flags().GetString("out")
		opts = options{
			codec:  codec,
			base64: b64,
			out:    out,
		}

		slog.Debug("resolved options", "format", codec.Name(), "pretty", conf.Pretty, "base64", b64, "out", out)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// resolveConfig loads the config file named by --config, or the default config file if there is one,
// and applies the flags that were set over it.
func resolveConfig(flags *pflag.FlagSet) (*config.Config, error) {
	conf := config.DefaultConfig()

	path, _ := flags.GetString("config")
	if path == "" && config.ConfigExists(config.GetDefaultConfigPath()) {
		path = config.GetDefaultConfigPath()
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		conf = loaded
	}

	if flags.Changed("format") {
		conf.Format, _ = flags.GetString("format")
	}
	if flags.Changed("pretty") {
		conf.Pretty, _ = flags.GetBool("pretty")
	}
	if flags.Changed("log-level") {
		conf.Logging.Level, _ = flags.GetString("log-level")
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("bad options: %w", err)
	}
	return conf, nil
}

// addFlags defines the global flags on flags.
func addFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "Config file (default "+config.GetDefaultConfigPath()+" if it exists)")
	flags.StringP("format", "f", "json", "Document format; json or msgpack")
	flags.Bool("pretty", true, "Indent JSON documents")
	flags.String("log-level", "warn", "Log level; debug, info, warn or error")
	flags.StringP("out", "o", "-", "Output file, - for stdout")
	flags.Bool("base64", false, "Records are base64 text rather than raw bytes")
}

func init() {
	addFlags(rootCmd.PersistentFlags())
}
