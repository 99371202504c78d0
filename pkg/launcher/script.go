package launcher

import (
	"fmt"
	"path/filepath"
	"strings"

	"limeal.fr/vlauncher/pkg/utils"
)

// quoteToken wraps a command token in double quotes when it would otherwise
// split at a space once the shell runs the script. Install roots like
// "Application Support/vlauncher" reach the script through the game
// directory, the classpath and the natives dir.
func quoteToken(token string, windows bool) string {
	if !strings.ContainsAny(token, " \t") {
		return token
	}
	if windows {
		return `"` + token + `"`
	}
	return `"` + strings.ReplaceAll(token, `"`, `\"`) + `"`
}

// WriteLaunchScript serializes the synthesized command into a runnable
// script at the install root, overwriting any existing one. When javaPath is
// empty the bare binary name is used and resolution is left to the PATH.
func WriteLaunchScript(root string, platform Platform, javaPath string, jvmArgs []string, mainClass string, gameArgs []string, versionID string) (string, error) {
	if javaPath == "" {
		javaPath = platform.JavaBinaryName()
	}

	command := []string{javaPath}
	command = append(command, jvmArgs...)
	command = append(command, mainClass)
	command = append(command, gameArgs...)
	for i, token := range command {
		command[i] = quoteToken(token, platform.IsWindows())
	}

	var script strings.Builder
	if platform.IsWindows() {
		script.WriteString("@echo off\r\n")
		fmt.Fprintf(&script, "echo Starting %s using vlauncher!\r\n", versionID)
		script.WriteString(strings.Join(command, " "))
		script.WriteString("\r\n")
	} else {
		script.WriteString("#!/bin/sh\n")
		fmt.Fprintf(&script, "echo \"Starting %s using vlauncher!\"\n", versionID)
		script.WriteString(strings.Join(command, " "))
		script.WriteString("\n")
	}

	path := filepath.Join(root, platform.ScriptName())
	if err := utils.WriteFileAtomic(path, []byte(script.String()), 0755); err != nil {
		return "", fmt.Errorf("failed to write launch script: %w", err)
	}

	return path, nil
}
