package main

import (
	"fmt"
	goio "io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func getStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func getInt64(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// parseAssignment splits a NAME=VALUE argument.
func parseAssignment(text string) (name string, value int64, err error) {
	name, number, ok := strings.Cut(text, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		err = errors.Errorf("%v: expected NAME=VALUE", text)
		return
	}

	value, err = strconv.ParseInt(strings.TrimSpace(number), 0, 64)
	if err != nil {
		err = errors.Wrapf(err, "%v", text)
	}

	return
}

// parseAddress parses a memory address argument.
func parseAddress(text string) (addr int64, err error) {
	addr, err = strconv.ParseInt(strings.TrimSpace(text), 0, 64)
	if err != nil {
		err = errors.Wrapf(err, "address %v", text)
		return
	}
	if addr < 0 {
		err = errors.Errorf("address %v: negative", text)
	}

	return
}

// parseValues parses a comma separated list of values.
func parseValues(text string) (values []int64, err error) {
	for _, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		var value int64
		value, err = strconv.ParseInt(field, 0, 64)
		if err != nil {
			err = errors.Wrapf(err, "value %v", field)
			return nil, err
		}
		values = append(values, value)
	}

	return
}

// openInput opens a named input, where "-" is the command's stdin.
func openInput(cmd *cobra.Command, name string) (r goio.Reader, closer func() error, err error) {
	closer = func() error { return nil }
	if name == "-" {
		r = cmd.InOrStdin()
		return
	}

	inf, err := os.Open(name)
	if err != nil {
		err = errors.Wrap(err, "input")
		return
	}

	r = inf
	closer = inf.Close
	return
}

// openOutput creates a named output, where "-" is the command's stdout.
func openOutput(cmd *cobra.Command, name string) (w goio.Writer, closer func() error, err error) {
	closer = func() error { return nil }
	if name == "-" {
		w = cmd.OutOrStdout()
		return
	}

	ouf, err := os.Create(name)
	if err != nil {
		err = errors.Wrap(err, "output")
		return
	}

	w = ouf
	closer = ouf.Close
	return
}
