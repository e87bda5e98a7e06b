// Command cborscan inspects and produces CBOR with the token-level runtime.
//
//	cborscan diag msg.cbor          # diagnostic notation, one item per line
//	echo 'a16161 01' | cborscan check --hex
//	echo '{"a":1}' | cborscan encode --hex
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// CLI defines the cborscan command-line interface.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose diagnostics"`

	Diag   diagCmd   `cmd:"" help:"Print CBOR items in RFC 8949 diagnostic notation."`
	Check  checkCmd  `cmd:"" help:"Scan CBOR token by token and report the first error."`
	Encode encodeCmd `cmd:"" help:"Convert a JSON document to CBOR."`
}

// env carries what every command needs. Tests substitute the streams.
type env struct {
	log    *zap.Logger
	stdin  io.Reader
	stdout io.Writer
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cborscan"),
		kong.Description("Inspect and produce CBOR (RFC 8949) one token at a time."),
		kong.UsageOnError(),
	)

	log := lo.Must(newLogger(cli.Verbose))
	defer func() { _ = log.Sync() }()

	err := ctx.Run(&env{log: log, stdin: os.Stdin, stdout: os.Stdout})
	ctx.FatalIfErrorf(err)
}
