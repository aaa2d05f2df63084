// Command hashkey prompts for an API key and prints its Argon2id hash for
// use as API_KEY_HASH.
//
// Usage:
//
//	go run ./cmd/hashkey
//	echo -n "$KEY" | go run ./cmd/hashkey -stdin
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zapponejosh/worldcal-api/internal/auth"
)

func main() {
	fromStdin := flag.Bool("stdin", false, "Read the key from standard input instead of prompting")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hashkey [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Prints an Argon2id hash of an API key for API_KEY_HASH.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	key, err := readKey(*fromStdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	hash, err := auth.HashKey(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing key: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}

func readKey(fromStdin bool) (string, error) {
	fd := int(os.Stdin.Fd())
	if fromStdin || !term.IsTerminal(fd) {
		return readAll(os.Stdin)
	}

	key, err := prompt(fd, "Enter API key:   ")
	if err != nil {
		return "", err
	}
	confirm, err := prompt(fd, "Confirm API key: ")
	if err != nil {
		return "", err
	}
	if key != confirm {
		return "", errors.New("keys do not match")
	}
	if key == "" {
		return "", errors.New("key cannot be empty")
	}
	return key, nil
}

func prompt(fd int, label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read key: %w", err)
	}
	return string(b), nil
}

func readAll(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read key: %w", err)
	}
	key := strings.TrimRight(line, "\r\n")
	if key == "" {
		return "", errors.New("key cannot be empty")
	}
	return key, nil
}
