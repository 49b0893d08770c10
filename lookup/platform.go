package lookup

const (
	searchPathVariableNameConstant     = "PATH"
	preferredShellVariableNameConstant = "SHELL"
)

// platformConventions captures the compiled-in behavior that differs between
// operating system families.
type platformConventions struct {
	executableSuffix string
	defaultShellName string
}

var execstringArgumentTable = map[string][]string{
	"powershell.exe": {"-executionpolicy", "bypass", "&"},
	"bash":           {"-c"},
	"zsh":            {"-c"},
	"sh":             {"-c"},
}
