package internal

import (
	"fmt"
	"os/exec"
)

// ValidateCliInstalled checks if the 1Password CLI is installed
func ValidateCliInstalled() error {
	_, err := exec.LookPath("op")
	if err != nil {
		return fmt.Errorf("1Password CLI not found\nInstall from: https://developer.1password.com/docs/cli/get-started/")
	}
	return nil
}
