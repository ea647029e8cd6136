package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dendrascience/sorts/util"
)

// tokens splits positional arguments on whitespace and commas, so
// "3,1,2" and "3 1 2" read the same.
func tokens(args []string) []string {
	var out []string
	for _, a := range args {
		out = append(out, strings.FieldsFunc(a, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})...)
	}
	return out
}

// readTokens returns the value tokens for a command: positional arguments
// first, otherwise whitespace-separated words from r.
func readTokens(r io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return tokens(args), nil
	}
	words := []string{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		words = append(words, tokens([]string{sc.Text()})...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading values: %w", err)
	}
	return words, nil
}

// readInts resolves the integer sequence for cmd from args, the --input
// dataset, or stdin, in that order. An empty source yields an empty,
// non-nil slice so the algorithms report it as empty input.
func readInts(cmd *cobra.Command, args []string, inputPath string) ([]int, error) {
	if len(args) == 0 && inputPath != "" {
		d, err := util.LoadDataset(inputPath)
		if err != nil {
			return nil, err
		}
		return d.Values, nil
	}
	words, err := readTokens(cmd.InOrStdin(), args)
	if err != nil {
		return nil, err
	}
	values := make([]int, 0, len(words))
	for _, w := range words {
		v, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", w)
		}
		values = append(values, v)
	}
	return values, nil
}

// readFloats is readInts for floating-point input. Dataset values are
// converted.
func readFloats(cmd *cobra.Command, args []string, inputPath string) ([]float64, error) {
	if len(args) == 0 && inputPath != "" {
		d, err := util.LoadDataset(inputPath)
		if err != nil {
			return nil, err
		}
		values := make([]float64, len(d.Values))
		for i, v := range d.Values {
			values[i] = float64(v)
		}
		return values, nil
	}
	words, err := readTokens(cmd.InOrStdin(), args)
	if err != nil {
		return nil, err
	}
	values := make([]float64, 0, len(words))
	for _, w := range words {
		v, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", w)
		}
		values = append(values, v)
	}
	return values, nil
}

func writeInts(w io.Writer, values []int) error {
	bw := bufio.NewWriter(w)
	for i, v := range values {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(v))
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
