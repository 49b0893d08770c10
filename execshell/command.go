package execshell

// CommandDetails describes how a child process is launched.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
}

// ShellCommand identifies a child process for logging and event observers.
type ShellCommand struct {
	Executable string
	Details    CommandDetails
}
