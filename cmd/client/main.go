package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/adrianliechti/flowgenius/config"
	"github.com/adrianliechti/flowgenius/pkg/client"
	"github.com/adrianliechti/flowgenius/pkg/otel"
	"github.com/adrianliechti/flowgenius/pkg/source"
	"github.com/adrianliechti/flowgenius/pkg/workflow"
)

func main() {
	configFlag := flag.String("config", "config.yaml", "config file")
	validateFlag := flag.Bool("validate", false, "validate credentials and exit")

	urlFlag := flag.String("url", "", "remote server url")
	tokenFlag := flag.String("token", "", "remote server token")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config config.yaml | -url http://localhost:8080] [-validate] note.md\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := otel.Setup(ctx, "flowgenius-client"); err != nil {
		fmt.Fprintln(os.Stderr, "telemetry:", err)
	}

	if *urlFlag != "" {
		remote(ctx, client.New(*urlFlag, client.WithToken(*tokenFlag)), *validateFlag)
		return
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *validateFlag {
		validate(ctx, cfg.Engine)
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	output := os.Stdout

	var url string

	// outcome notices are logged by the engine
	cfg.Engine.Execute(ctx, source.NewFile(flag.Arg(0)),
		func(message string) {
			if message != "" {
				output.WriteString(message + "\n")
			}
		},
		func(val string) {
			url = val
		},
	)

	state := cfg.Engine.State()

	if state.Phase != workflow.PhaseComplete {
		os.Exit(1)
	}

	output.WriteString("\n")
	output.WriteString("Prompt: " + state.Prompt + "\n")
	output.WriteString("Image:  " + url + "\n")
}

func validate(ctx context.Context, engine *workflow.Engine) {
	result := engine.ValidateConfiguration(ctx)

	if result.Valid {
		fmt.Println("All credentials are valid")
		return
	}

	for _, e := range result.Errors {
		fmt.Fprintln(os.Stderr, e)
	}

	os.Exit(1)
}

func remote(ctx context.Context, c *client.Client, validate bool) {
	if validate {
		result, err := c.Workflow.Validate(ctx)

		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if result.Valid {
			fmt.Println("All credentials are valid")
			return
		}

		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, e)
		}

		os.Exit(1)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	content, err := source.NewFile(flag.Arg(0)).Content(ctx)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Generating background...")

	result, err := c.Backgrounds.New(ctx, client.BackgroundRequest{
		Content: content,
	})

	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to generate background:", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Prompt: " + result.Prompt)
	fmt.Println("Image:  " + result.URL)
}
