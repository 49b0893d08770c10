package execshell

// Lifecycle is the contract shared by both executors.
type Lifecycle interface {
	// CloseStdin closes the parent's end of the child's stdin, if any.
	CloseStdin() error
	// CloseStdout closes the parent's end of the child's stdout, if any.
	CloseStdout() error
	// CloseStderr closes the parent's end of the child's stderr, if any.
	CloseStderr() error
	// IsRunning polls the child without blocking.
	IsRunning() (bool, error)
	// Wait closes stdin and blocks until the child exits. It is terminal.
	Wait() error
}

var (
	_ Lifecycle = (*CapturingExecutor)(nil)
	_ Lifecycle = (*TransparentExecutor)(nil)
)
