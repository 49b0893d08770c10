//go:build windows

package lookup

var currentPlatform = platformConventions{
	executableSuffix: ".exe",
	defaultShellName: "powershell.exe",
}
