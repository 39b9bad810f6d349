package main

import (
	"errors"
	"fmt"
	"os"

	"jot/internal/notes"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

func userMessage(err error) string {
	if errors.Is(err, notes.ErrEmptyField) {
		return notes.EmptyFieldAlert
	}
	return fmt.Sprintf("error: %v", err)
}
