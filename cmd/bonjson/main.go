// Command bonjson bridges textual JSON and the BONJSON wire format
// over stdin/stdout, for ad-hoc conversion and conformance-suite
// wiring.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bonjson-codec/bonjson"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:])
	case "decode":
		err = runDecode(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "bonjson: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: bonjson encode|decode [flags]")
}

// runEncode reads JSON from stdin and writes BONJSON bytes to stdout.
func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	dec := json.NewDecoder(bufio.NewReader(os.Stdin))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("reading JSON from stdin: %w", err)
	}

	v, err := jsonToValue(raw)
	if err != nil {
		return fmt.Errorf("converting JSON to BONJSON value: %w", err)
	}

	w := bufio.NewWriter(os.Stdout)
	if err := bonjson.ToWriter(w, v); err != nil {
		return fmt.Errorf("encoding BONJSON: %w", err)
	}

	return w.Flush()
}

// runDecode reads BONJSON bytes from stdin and writes JSON to stdout.
func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	indent := fs.Bool("pretty", false, "pretty-print the output JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return fmt.Errorf("reading BONJSON from stdin: %w", err)
	}

	v, err := bonjson.FromSlice(raw)
	if err != nil {
		return fmt.Errorf("decoding BONJSON: %w", err)
	}

	jv, err := valueToJSON(v)
	if err != nil {
		return fmt.Errorf("converting BONJSON value to JSON: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	if *indent {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(jv)
}
