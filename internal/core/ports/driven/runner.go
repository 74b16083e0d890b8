package driven

import "context"

// CommandRunner executes external commands.
// Extractors and recognisers that shell out take a CommandRunner so tests
// can substitute canned output.
type CommandRunner interface {
	// Run executes name with args and returns its standard output.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// StdinCommandRunner is an optional extension for commands that read input
// from standard input.
type StdinCommandRunner interface {
	CommandRunner

	// RunWithInput executes name with args, writing input to its standard input.
	RunWithInput(ctx context.Context, input []byte, name string, args ...string) ([]byte, error)
}
