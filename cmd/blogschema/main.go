// Command blogschema inspects the blog API contracts: it checks the error
// identifier registry and the endpoint groups, lists and decodes
// identifiers, exports endpoint schemas and validates sample requests.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"
)

type CLI struct {
	LogLevel  string `help:"Log level." default:"info" enum:"trace,debug,info,warn,error"`
	LogFormat string `help:"Log format." default:"text" enum:"text,json"`
	Format    string `short:"f" help:"Output format." default:"json" enum:"json,yaml"`

	Check     CheckCmd     `cmd:"" help:"Check identifier uniqueness and every endpoint group."`
	IDs       IDsCmd       `cmd:"" name:"ids" help:"List registered error identifiers."`
	Decode    DecodeCmd    `cmd:"" help:"Decode encoded identifiers such as \"2001|Username must be at least 3 characters\"."`
	Endpoints EndpointsCmd `cmd:"" help:"List endpoints with their statuses."`
	Schema    SchemaCmd    `cmd:"" help:"Export endpoint schemas."`
	Validate  ValidateCmd  `cmd:"" help:"Validate a request against an endpoint and print the failure envelope."`
}

// env is bound to every command's Run method.
type env struct {
	log *log.Logger
	out *printer
}

func newLogger(level, format string, w io.Writer) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	switch format {
	case "json":
		l.SetFormatter(&log.JSONFormatter{})
	default:
		l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}
	if lvl, err := log.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	} else {
		l.SetLevel(log.InfoLevel)
		l.Warnf("invalid log level %q, fallback to info", level)
	}
	return l
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blogschema"),
		kong.Description("Inspect the blog API contracts."),
		kong.UsageOnError(),
	)
	e := &env{
		log: newLogger(cli.LogLevel, cli.LogFormat, os.Stderr),
		out: &printer{w: os.Stdout, format: cli.Format},
	}
	ctx.FatalIfErrorf(ctx.Run(e))
}
