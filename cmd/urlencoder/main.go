package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"urlencoder/batch"
	"urlencoder/encoding"
	"urlencoder/logging"
)

const usage = `Usage: urlencoder [-e|-d] [-form] [-lenient] [-allow chars] <text>
       urlencoder [-e|-d] [-form] [-lenient] [-allow chars] -stdin
Encode and decode URL components defensively.
  -e        encode (default)
  -d        decode
  -form     use '+' for spaces, and leave '~' unescaped
  -lenient  with -d, keep malformed escapes as is instead of failing
  -allow    extra ASCII characters to leave unescaped when encoding
  -stdin    transform each line of standard input
  -workers  number of concurrent workers for -stdin (default: one per CPU)
  -loglevel one of: debug, info, warn, error (default: error)`

// maxLineLength is the longest line -stdin accepts.
const maxLineLength = 1024 * 1024

type mainResult struct {
	output string
	status int
}

// A command line utility to encode and decode URL components
func main() {
	result, err := processMain(os.Args[1:], os.Stdin, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "urlencoder: %v\n", err)
		os.Exit(1)
	}

	if result.status != 0 {
		fmt.Fprintln(os.Stderr, result.output)
	} else {
		fmt.Println(result.output)
	}
	os.Exit(result.status)
}

// processMain runs the command for the given args. Usage errors produce the usage text with status 1, and malformed input produces an error.
func processMain(args []string, stdin io.Reader, stderr io.Writer) (mainResult, error) {
	result := mainResult{output: usage, status: 1}
	if len(args) == 0 || args[0] == "" {
		return result, nil
	}

	fs := flag.NewFlagSet("urlencoder", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	encodeArg := fs.Bool("e", false, "")
	decodeArg := fs.Bool("d", false, "")
	formArg := fs.Bool("form", false, "")
	lenientArg := fs.Bool("lenient", false, "")
	allowArg := fs.String("allow", "", "")
	stdinArg := fs.Bool("stdin", false, "")
	workersArg := fs.Int("workers", 0, "")
	logLevelArg := fs.String("loglevel", "error", "")
	if err := fs.Parse(args); err != nil {
		return result, nil
	}

	if *encodeArg && *decodeArg || *lenientArg && !*decodeArg {
		return result, nil
	}
	if *stdinArg && fs.NArg() != 0 || !*stdinArg && fs.NArg() != 1 {
		return result, nil
	}

	logger := logging.NewLogger(*logLevelArg, stderr)

	opts := encoding.Component.Options()
	if *formArg {
		opts = encoding.Query.Options()
	}
	opts.Allow = *allowArg
	codec := encoding.NewCodec(opts)

	if !*stdinArg {
		if *lenientArg {
			result.output = codec.DecodeLenient(fs.Arg(0))
		} else if *decodeArg {
			s, err := codec.Decode(fs.Arg(0))
			if err != nil {
				return mainResult{}, err
			}
			result.output = s
		} else {
			result.output = codec.Encode(fs.Arg(0))
		}
		result.status = 0
		return result, nil
	}

	var lines []string
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return mainResult{}, err
	}
	logger.Debug().Int("lines", len(lines)).Bool("decode", *decodeArg).Msg("Read lines from stdin")

	var out []string
	var err error
	if *lenientArg {
		out = make([]string, len(lines))
		for i, line := range lines {
			out[i] = codec.DecodeLenient(line)
		}
	} else if *decodeArg {
		out, err = batch.Decode(context.Background(), codec, lines, *workersArg)
	} else {
		out, err = batch.Encode(context.Background(), codec, lines, *workersArg)
	}
	if err != nil {
		if ierr, ok := err.(*batch.ItemError); ok {
			return mainResult{}, fmt.Errorf("line %d: %v", ierr.Index+1, ierr.Err)
		}
		return mainResult{}, err
	}

	result.output = strings.Join(out, "\n")
	result.status = 0
	return result, nil
}
