package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stewi1014/phisave/config"
	"github.com/stewi1014/phisave/interchange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRecord = []byte{0x01, 0x02, 'h', 'i', 0x01, 'A', 0x00}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestParseAndBuild(t *testing.T) {
	testCases := []struct {
		desc string
		opts options
	}{
		{desc: "json", opts: options{codec: interchange.JSON{}}},
		{desc: "pretty json", opts: options{codec: interchange.JSON{Indent: "  "}}},
		{desc: "msgpack", opts: options{codec: interchange.MsgPack{}}},
		{desc: "base64", opts: options{codec: interchange.JSON{}, base64: true}},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			record := userRecord
			if tC.opts.base64 {
				record = encodeBase64(userRecord)
			}

			doc, err := parseFile(nil, "user", writeTemp(t, "user.bin", record), tC.opts)
			require.NoError(t, err)

			got, err := buildFile(nil, "user", writeTemp(t, "user.doc", doc), tC.opts)
			require.NoError(t, err)
			assert.Equal(t, record, got)
		})
	}
}

func TestParseStdin(t *testing.T) {
	doc, err := parseFile(bytes.NewReader(userRecord), "user", "-", options{codec: interchange.JSON{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"show_player_id":true,"self_intro":"hi","avatar":"A","background":""}`, string(doc))
	assert.True(t, strings.HasSuffix(string(doc), "\n"))
}

func TestParseErrors(t *testing.T) {
	jsonOpts := options{codec: interchange.JSON{}}

	_, err := parseFile(nil, "settings", "-", jsonOpts)
	assert.ErrorIs(t, err, interchange.ErrUnknownKind)

	_, err = parseFile(nil, "user", filepath.Join(t.TempDir(), "missing.bin"), jsonOpts)
	assert.Error(t, err)

	_, err = parseFile(nil, "user", writeTemp(t, "user.bin", userRecord[:3]), jsonOpts)
	assert.Error(t, err)

	_, err = parseFile(nil, "user", writeTemp(t, "user.b64", []byte("!!!")), options{codec: interchange.JSON{}, base64: true})
	assert.Error(t, err)

	_, err = buildFile(nil, "user", writeTemp(t, "user.json", []byte("{")), jsonOpts)
	assert.Error(t, err)
}

func TestResolveConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.SaveConfig(&config.Config{
		Format:  "msgpack",
		Logging: config.Logging{Level: "info"},
	}, configPath))

	testCases := []struct {
		desc string
		args []string
		want *config.Config
		err  bool
	}{
		{
			desc: "config file",
			args: []string{"--config", configPath},
			want: &config.Config{Format: "msgpack", Logging: config.Logging{Level: "info"}},
		},
		{
			desc: "flags override config file",
			args: []string{"--config", configPath, "--format", "json", "--pretty", "--log-level", "debug"},
			want: &config.Config{Format: "json", Pretty: true, Logging: config.Logging{Level: "debug"}},
		},
		{
			desc: "bad format",
			args: []string{"--config", configPath, "-f", "xml"},
			err:  true,
		},
		{
			desc: "missing config file",
			args: []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")},
			err:  true,
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			addFlags(flags)
			require.NoError(t, flags.Parse(tC.args))

			got, err := resolveConfig(flags)
			if tC.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tC.want, got)
		})
	}
}

func TestExecute(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.SaveConfig(config.DefaultConfig(), configPath))
	input := writeTemp(t, "user.bin", userRecord)
	output := filepath.Join(t.TempDir(), "user.json")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	defer rootCmd.SetArgs(nil)

	rootCmd.SetArgs([]string{"kinds"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "game_key\ngame_progress\ngame_record\nsummary\nuser\n", stdout.String())

	rootCmd.SetArgs([]string{"parse", "user", input, "--config", configPath, "--format", "json", "--base64=false", "-o", output})
	require.NoError(t, rootCmd.Execute())

	doc, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(doc), `"self_intro": "hi"`)

	stdout.Reset()
	rootCmd.SetArgs([]string{"build", "user", output, "--config", configPath, "--format", "json", "--base64", "-o", "-"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, string(encodeBase64(userRecord)), stdout.String())

	rootCmd.SetArgs([]string{"parse", "user"})
	assert.Error(t, rootCmd.Execute())
}
