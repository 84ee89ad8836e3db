package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	uec "github.com/uecformat/uec"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger().Level(zerolog.WarnLevel)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "validate":
		validateCmd(os.Args[2:])
	case "convert":
		convertCmd(os.Args[2:])
	case "diff":
		diffCmd(os.Args[2:])
	case "lint":
		lintCmd(os.Args[2:])
	case "fmt":
		fmtCmd(os.Args[2:])
	case "new":
		newCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `uec CLI

Usage:
  uec validate [-strict] [-at version] <file|->
  uec convert -to <1.0|2.0> [-keep-rules] [-pretty] <file|->
  uec diff <fileA> <fileB>
  uec lint <file|->
  uec fmt [-pretty] <file|->
  uec new -kind <character|persona> [-v2] [-id id]

Files named "-" are read from stdin.`)
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	strict := fs.Bool("strict", false, "require the strict field set")
	at := fs.String("at", "", "additionally require this schema version")
	verbose := fs.Bool("v", false, "enable verbose logs")
	_ = fs.Parse(args)
	setVerbose(*verbose)

	value := readValue(fs.Arg(0))

	var result uec.ValidationResult
	if *at != "" {
		result = uec.ValidateAtVersion(value, *at, *strict)
	} else {
		result = uec.Validate(value, *strict)
	}

	if !result.OK {
		for _, line := range result.Errors.Strings() {
			fmt.Fprintln(os.Stderr, line)
		}
		os.Exit(1)
	}
	fmt.Println("ok")
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	to := fs.String("to", uec.VersionV2, "target schema version")
	keepRules := fs.Bool("keep-rules", false, "do not synthesize an empty rules array on downgrade")
	pretty := fs.Bool("pretty", true, "pretty-print output")
	verbose := fs.Bool("v", false, "enable verbose logs")
	_ = fs.Parse(args)
	setVerbose(*verbose)

	value := readValue(fs.Arg(0))

	var out map[string]any
	switch *to {
	case uec.VersionV1:
		result, err := uec.Downgrade(value, uec.VersionV1, *keepRules)
		if err != nil {
			fatalf("downgrade: %v", err)
		}
		for _, warning := range result.Warnings {
			log.Warn().Msg(warning)
		}
		out = result.Card
	case uec.VersionV2:
		converted, err := uec.Upgrade(value, uec.VersionV2)
		if err != nil {
			fatalf("upgrade: %v", err)
		}
		out = converted
	default:
		fatalf("unsupported target version: %s", *to)
	}

	printCard(out, *pretty)
}

func diffCmd(args []string) {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	_ = fs.Parse(args)
	if fs.NArg() != 2 {
		fatalf("diff requires two files")
	}

	a := readValue(fs.Arg(0))
	b := readValue(fs.Arg(1))

	entries := uec.Diff(a, b)
	for _, entry := range entries {
		switch entry.Type {
		case uec.ChangeAdded:
			fmt.Printf("+ %s = %v\n", entry.Path, entry.After)
		case uec.ChangeRemoved:
			fmt.Printf("- %s = %v\n", entry.Path, entry.Before)
		default:
			fmt.Printf("~ %s: %v -> %v\n", entry.Path, entry.Before, entry.After)
		}
	}
	if len(entries) > 0 {
		os.Exit(1)
	}
}

func lintCmd(args []string) {
	fs := flag.NewFlagSet("lint", flag.ExitOnError)
	_ = fs.Parse(args)

	value := readValue(fs.Arg(0))
	result := uec.Lint(value)
	for _, warning := range result.Warnings {
		fmt.Fprintln(os.Stderr, warning)
	}
	if !result.OK {
		os.Exit(1)
	}
	fmt.Println("ok")
}

func fmtCmd(args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	pretty := fs.Bool("pretty", true, "pretty-print output")
	_ = fs.Parse(args)

	value := readValue(fs.Arg(0))
	printCard(value, *pretty)
}

func newCmd(args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	kind := fs.String("kind", string(uec.KindCharacter), "document kind")
	v2 := fs.Bool("v2", false, "emit a v2 card")
	id := fs.String("id", "", "payload id (generated when empty)")
	_ = fs.Parse(args)

	if *id == "" {
		*id = uec.NewID()
	}

	payload := map[string]any{"id": *id}
	switch uec.Kind(*kind) {
	case uec.KindCharacter:
		payload["name"] = "New Character"
	case uec.KindPersona:
		payload["title"] = "New Persona"
	default:
		fatalf("unsupported kind: %s", *kind)
	}

	opts := uec.CreateOptions{}
	if *v2 {
		opts.Schema = map[string]any{"version": uec.VersionV2}
	}
	card, err := uec.New(uec.Kind(*kind), payload, opts)
	if err != nil {
		fatalf("new: %v", err)
	}
	printCard(card, true)
}

func setVerbose(verbose bool) {
	if verbose {
		log = log.Level(zerolog.DebugLevel)
	}
}

func readValue(name string) any {
	if name == "" {
		usage()
		os.Exit(2)
	}

	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		fatalf("reading input: %v", err)
	}
	log.Debug().Str("input", name).Int("bytes", len(data)).Msg("read card")

	res := uec.Parse(string(data), false)
	if !res.OK {
		for _, line := range res.Errors.Strings() {
			fmt.Fprintln(os.Stderr, line)
		}
		os.Exit(1)
	}
	return res.Value
}

func printCard(v any, pretty bool) {
	out, err := uec.Serialize(v, pretty)
	if err != nil {
		fatalf("serialize: %v", err)
	}
	fmt.Println(out)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
