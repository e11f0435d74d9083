package main

import (
	"fmt"
	"os"
)

// stdoutNotifier prints the notifications the client emits for mutating
// calls, standing in for the platform's toast messages.
type stdoutNotifier struct{}

func (n *stdoutNotifier) Success(msg string) {
	fmt.Println(msg)
}

func (n *stdoutNotifier) Error(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}
