package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-posts/internal/adapter"
	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/atotto/clipboard"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errNoOperation = errors.New("no operation given, use -op <name> or -op version")

// command is one client invocation parsed from the command line.
type command struct {
	op     string
	body   string
	toClip bool
}

func main() {
	var cmd command
	flag.StringVar(&cmd.op, "op", "", "Post operation, e.g. show_by_id, or version")
	flag.StringVar(&cmd.body, "body", "{}", "JSON request body")
	flag.BoolVar(&cmd.toClip, "copy", false, "Copy the response to the clipboard")

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("go-posts-client", cfg.App.LogFile)
	logger.SetLevel(cfg.App.LogLevel)
	log.Info().
		Str("build_version", buildVersion).
		Str("build_date", buildDate).
		Str("build_commit", buildCommit).
		Msg("client started")

	client, err := adapter.NewHTTPPostsClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create posts client")
	}

	if err = run(context.Background(), client, cmd, os.Stdout, clipboard.WriteAll); err != nil {
		log.Err(err).Str("operation", cmd.op).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes cmd against client and prints the answer to out. With toClip
// set the answer is also handed to copyFn.
func run(ctx context.Context, client adapter.PostsClient, cmd command, out io.Writer, copyFn func(string) error) error {
	var answer string

	switch cmd.op {
	case "":
		return errNoOperation
	case "version":
		version, err := client.Version(ctx)
		if err != nil {
			return err
		}
		answer = version
	default:
		resp, err := client.Call(ctx, cmd.op, []byte(cmd.body))
		if err != nil {
			return err
		}
		answer = string(resp)
	}

	fmt.Fprintln(out, answer)

	if cmd.toClip {
		if err := copyFn(answer); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}

	return nil
}
