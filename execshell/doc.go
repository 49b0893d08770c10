// Package execshell spawns child processes and manages their standard streams.
//
// A CommandBuilder is created from an explicit path (NewWithPath), a name
// searched in PATH (NewWithName), or an inline command line executed through
// the user's shell (NewWithShell). Spawning produces one of two executors:
//
//   - CapturingExecutor pipes stdin, stdout and stderr through the parent. It
//     implements io.Reader (stdout) and io.Writer (stdin), and reports the
//     captured stderr in a ChildError when the child fails.
//   - TransparentExecutor lets the child write directly to the parent's stdout
//     and stderr. A failing child yields an ExecError carrying the exit code.
//
// Both executors implement Lifecycle. Wait and the Collect conversions are
// terminal: afterwards the executor reports ErrExecutorConsumed.
//
// The package never starts goroutines. A caller that writes large input
// without draining stdout can deadlock against the child's pipe buffers.
package execshell
