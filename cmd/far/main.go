// Package main provides the Far runtime inspection CLI.
//
// The reshape subcommand builds a sequentially numbered source array,
// runs the runtime's RESHAPE operation on it, and prints the result
// element by element. It exists for eyeballing fill orders while
// debugging generated code.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/farlang/far/descriptor"
	"github.com/farlang/far/internal/logging"
	"github.com/farlang/far/transform"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	switch os.Args[1] {
	case "version":
		fmt.Printf("Far runtime %s\n", version)
	case "reshape":
		runReshape(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("Far runtime tools")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  reshape    Reshape a numbered source array and print the result")
	fmt.Println("")
	fmt.Println("Example:")
	fmt.Println("  far reshape --shape 2,3 --order 2,1 --n 6")
}

func runReshape(args []string) {
	flags := pflag.NewFlagSet("reshape", pflag.ExitOnError)
	shapeArg := flags.String("shape", "", "comma-separated result extents (required)")
	orderArg := flags.String("order", "", "comma-separated fill order, a permutation of 1..rank")
	padArg := flags.String("pad", "", "comma-separated pad values, consumed cyclically")
	n := flags.Int("n", 0, "source element count, numbered 1..n (default: product of shape)")
	verbose := flags.BoolP("verbose", "v", false, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		os.Exit(2)
	}

	if *shapeArg == "" {
		fmt.Fprintln(os.Stderr, "reshape: --shape is required")
		os.Exit(2)
	}
	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			logging.SetLogger(logger)
			defer logger.Sync() //nolint:errcheck
		}
	}

	extents := parseInts(*shapeArg)
	if *n == 0 {
		*n = 1
		for _, e := range extents {
			*n = *n * int(e)
		}
	}

	values := make([]int64, *n)
	for i := range values {
		values[i] = int64(i + 1)
	}
	source := mustVector(values)
	shape := mustVector(extents)

	var pad, order *descriptor.Descriptor
	if *padArg != "" {
		pad = mustVector(parseInts(*padArg))
	}
	if *orderArg != "" {
		order = mustVector(parseInts(*orderArg))
	}

	result := transform.Reshape(source, shape, pad, order)
	fmt.Println(result)

	sub := make([]int64, result.Rank())
	result.GetLowerBounds(sub)
	for i := int64(0); i < result.Elements(); i++ {
		fmt.Printf("  (%s) = %d\n", formatSubscripts(sub), descriptor.DecodeInt64(result.Element(sub), result.ElementBytes()))
		result.IncrementSubscripts(sub, nil)
	}
}

func mustVector(values []int64) *descriptor.Descriptor {
	d, err := descriptor.NewIntegerVector(8, values)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reshape: %v\n", err)
		os.Exit(1)
	}
	return d
}

func parseInts(s string) []int64 {
	parts := strings.Split(s, ",")
	values := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reshape: bad integer %q: %v\n", p, err)
			os.Exit(2)
		}
		values = append(values, v)
	}
	return values
}

func formatSubscripts(sub []int64) string {
	parts := make([]string, len(sub))
	for i, s := range sub {
		parts[i] = strconv.FormatInt(s, 10)
	}
	return strings.Join(parts, ",")
}
