// Command huffstat reads line-oriented text from the named files (or from
// stdin when no files are given) and prints entropy and Huffman code-length
// statistics for each non-empty line.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/huffstat"
)

var flagJSON = flag.Bool("json", false, "emit one JSON object per line instead of a text report")

func main() {
	flag.Parse()

	exitCode := 0
	args := flag.Args()
	if len(args) == 0 {
		if err := analyzeReader(os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "huffstat: stdin: %v\n", err)
			exitCode = 1
		}
	}
	for _, name := range args {
		if err := analyzeFile(name); err != nil {
			fmt.Fprintf(os.Stderr, "huffstat: %s: %v\n", name, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func analyzeFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return analyzeReader(file)
}

func analyzeReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if err := report(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func report(line string) error {
	r, err := huffstat.Analyze(line)
	if err != nil {
		return err
	}

	if *flagJSON {
		raw, err := json.Marshal(r)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", raw)
		return nil
	}

	fmt.Printf("Input string: %s\n", line)
	fmt.Printf("First-order entropy: %.6f\n", r.FirstOrderEntropy)
	fmt.Printf("Second-order entropy: %.6f\n", r.SecondOrderEntropy)
	fmt.Printf("Average codeword length: %.6f\n", r.AverageCodeLength)
	fmt.Printf("Joint average codeword length: %.6f\n", r.JointAverageCodeLength)
	fmt.Println()
	return nil
}
