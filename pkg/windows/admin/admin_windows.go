//go:build windows

package admin

import (
	"os"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// IsAdmin reports whether the current process token is elevated. Writing
// under HKLM requires elevation.
func IsAdmin() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// MustRunWithAdmin relaunches the program through UAC when not elevated and
// exits the current process. Returns only when already elevated.
func MustRunWithAdmin() {
	if IsAdmin() {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		os.Exit(1)
	}
	cwd, _ := os.Getwd()
	args := strings.Join(os.Args[1:], " ")

	verb, _ := syscall.UTF16PtrFromString("runas")
	exePtr, _ := syscall.UTF16PtrFromString(exe)
	cwdPtr, _ := syscall.UTF16PtrFromString(cwd)
	argPtr, _ := syscall.UTF16PtrFromString(args)
	_ = windows.ShellExecute(0, verb, exePtr, argPtr, cwdPtr, windows.SW_NORMAL)
	os.Exit(0)
}
