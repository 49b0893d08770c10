package pathutils_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/runshell/internal/utils/path"
)

const (
	testProjectDirectoryNameConstant = "project"
	testPlainFileNameConstant        = "notes.txt"
)

func TestHomeExpanderExpand(testInstance *testing.T) {
	homeDirectory := testInstance.TempDir()
	expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return homeDirectory, nil
	})

	testCases := []struct {
		name         string
		input        string
		expectedPath string
	}{
		{name: "bare_tilde", input: "~", expectedPath: homeDirectory},
		{name: "tilde_prefix", input: "~/project", expectedPath: filepath.Join(homeDirectory, testProjectDirectoryNameConstant)},
		{name: "other_user", input: "~alice/project", expectedPath: "~alice/project"},
		{name: "absolute", input: "/var/tmp", expectedPath: "/var/tmp"},
		{name: "empty", input: "", expectedPath: ""},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedPath, expander.Expand(testCase.input))
		})
	}
}

func TestHomeExpanderProviderFailureKeepsPath(testInstance *testing.T) {
	expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return "", errors.New("home unavailable")
	})
	require.Equal(testInstance, "~/project", expander.Expand("~/project"))
}

func TestWorkingDirectoryResolverResolve(testInstance *testing.T) {
	homeDirectory := testInstance.TempDir()
	projectDirectory := filepath.Join(homeDirectory, testProjectDirectoryNameConstant)
	require.NoError(testInstance, os.MkdirAll(projectDirectory, 0o755))
	plainFilePath := filepath.Join(homeDirectory, testPlainFileNameConstant)
	require.NoError(testInstance, os.WriteFile(plainFilePath, []byte("notes"), 0o600))

	resolver := pathutils.NewWorkingDirectoryResolver(pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return homeDirectory, nil
	}))

	testCases := []struct {
		name         string
		input        string
		expectedPath string
		expectError  bool
	}{
		{name: "blank_inherits", input: "  ", expectedPath: ""},
		{name: "home_relative", input: "~/project", expectedPath: projectDirectory},
		{name: "absolute", input: projectDirectory, expectedPath: projectDirectory},
		{name: "missing", input: filepath.Join(homeDirectory, "absent"), expectError: true},
		{name: "regular_file", input: plainFilePath, expectError: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			resolvedPath, resolveError := resolver.Resolve(testCase.input)
			if testCase.expectError {
				require.Error(testInstance, resolveError)
				return
			}
			require.NoError(testInstance, resolveError)
			require.Equal(testInstance, testCase.expectedPath, resolvedPath)
		})
	}
}
