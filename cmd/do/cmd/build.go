package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	wasmOut     = "assets/wasm/client.wasm"
	wasmExecOut = "assets/js/wasm_exec.js"
)

func BuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build commands",
	}

	cmd.AddCommand(buildWasmCmd())
	return cmd
}

func buildWasmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wasm",
		Short: "Build the browser client into assets/wasm",
		RunE: func(cmd *cobra.Command, args []string) error {
			return buildWasm()
		},
	}
}

func buildWasm() error {
	step("Building client for js/wasm...")
	build := exec.Command("go", "build", "-trimpath", "-ldflags", "-s -w", "-o", wasmOut, "./cmd/client")
	build.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		return fmt.Errorf("wasm build failed: %w", err)
	}

	step("Copying wasm_exec.js...")
	out, err := exec.Command("go", "env", "GOROOT").Output()
	if err != nil {
		return fmt.Errorf("failed to locate GOROOT: %w", err)
	}
	goroot := strings.TrimSpace(string(out))

	// lib/wasm since Go 1.24, misc/wasm before
	var src string
	for _, dir := range []string{"lib/wasm", "misc/wasm"} {
		candidate := filepath.Join(goroot, dir, "wasm_exec.js")
		if _, err := os.Stat(candidate); err == nil {
			src = candidate
			break
		}
	}
	if src == "" {
		return fmt.Errorf("wasm_exec.js not found under %s", goroot)
	}
	if err := copyFile(src, wasmExecOut); err != nil {
		return fmt.Errorf("failed to copy wasm_exec.js: %w", err)
	}

	info, err := os.Stat(wasmOut)
	if err == nil {
		step(fmt.Sprintf("Done! %s (%d KiB)", wasmOut, info.Size()/1024))
	}
	return nil
}

func step(msg string) {
	fmt.Println(color.New(color.FgCyan).Sprint("==>"), msg)
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
