//go:build !windows

package lookup

var currentPlatform = platformConventions{
	executableSuffix: "",
	defaultShellName: "sh",
}
