package cmd

import (
	"archive/tar"
	"fmt"
	"io"
	"io/fs"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/templui/folio/internal/config"
)

type deployTarget struct {
	host     string
	port     string
	keyPath  string
	dir      string
	insecure bool
}

func DeployCmd() *cobra.Command {
	var t deployTarget

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Upload the exported site (EXPORT_DIR) to a host over SSH",
		Long: "Streams EXPORT_DIR as a tar archive into `tar -x` on the remote host.\n" +
			"Run `do export` first. Files not in the export are left in place.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if t.host == "" {
				return fmt.Errorf("--host is required or set SSH_HOST env")
			}
			cfg := config.Load()
			return deploy(t, cfg.ExportDir)
		},
	}

	cmd.Flags().StringVar(&t.host, "host", os.Getenv("SSH_HOST"), "SSH host (user@host) or set SSH_HOST env")
	cmd.Flags().StringVar(&t.port, "port", "22", "SSH port")
	cmd.Flags().StringVar(&t.keyPath, "key", "", "Path to SSH private key (default: ~/.ssh/id_ed25519)")
	cmd.Flags().StringVar(&t.dir, "dir", "/var/www/folio", "Remote directory the site is served from")
	cmd.Flags().BoolVar(&t.insecure, "insecure", false, "Skip host key verification against ~/.ssh/known_hosts")
	return cmd
}

func deploy(t deployTarget, exportDir string) error {
	if _, err := os.Stat(filepath.Join(exportDir, "index.html")); err != nil {
		return fmt.Errorf("%s has no index.html, run `do export` first", exportDir)
	}

	client, err := sshConnect(t)
	if err != nil {
		return err
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return err
	}
	defer session.Close()

	pr, pw := io.Pipe()
	defer pr.Close()
	session.Stdin = pr
	session.Stderr = os.Stderr

	written := make(chan int, 1)
	go func() {
		n, err := writeTar(pw, exportDir)
		pw.CloseWithError(err)
		written <- n
	}()

	step(fmt.Sprintf("Uploading %s to %s:%s...", exportDir, parseHost(t.host), t.dir))
	remote := fmt.Sprintf("mkdir -p %[1]s && tar -xf - -C %[1]s", shellQuote(t.dir))
	if err := session.Run(remote); err != nil {
		return fmt.Errorf("remote extract failed: %w", err)
	}

	fmt.Println(color.New(color.FgGreen).Sprint("DEPLOYED"), <-written, "files")
	return nil
}

// writeTar archives every regular file under dir with slash-separated
// relative names and returns how many were written.
func writeTar(w io.Writer, dir string) (int, error) {
	tw := tar.NewWriter(w)
	files := 0

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.Type().IsRegular() {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := io.Copy(tw, f); err != nil {
			return err
		}
		files++
		return nil
	})
	if err != nil {
		return files, err
	}
	return files, tw.Close()
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func sshConnect(t deployTarget) (*ssh.Client, error) {
	authMethods, err := getAuthMethods(t.keyPath)
	if err != nil {
		return nil, err
	}

	hostKeys, err := hostKeyCallback(t.insecure)
	if err != nil {
		return nil, err
	}

	clientConfig := &ssh.ClientConfig{
		User:            parseUser(t.host),
		Auth:            authMethods,
		HostKeyCallback: hostKeys,
	}

	addr := net.JoinHostPort(parseHost(t.host), t.port)
	client, err := ssh.Dial("tcp", addr, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	return client, nil
}

func hostKeyCallback(insecure bool) (ssh.HostKeyCallback, error) {
	if insecure {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home dir: %w", err)
	}
	cb, err := knownhosts.New(filepath.Join(home, ".ssh", "known_hosts"))
	if err != nil {
		return nil, fmt.Errorf("load known_hosts (or pass --insecure): %w", err)
	}
	return cb, nil
}

func getAuthMethods(keyPath string) ([]ssh.AuthMethod, error) {
	// Try ssh-agent first
	if sock := os.Getenv("SSH_AUTH_SOCK"); sock != "" && keyPath == "" {
		conn, err := net.Dial("unix", sock)
		if err == nil {
			agentClient := agent.NewClient(conn)
			keys, err := agentClient.List()
			if err == nil && len(keys) > 0 {
				return []ssh.AuthMethod{ssh.PublicKeysCallback(agentClient.Signers)}, nil
			}

			// No keys in agent, try to add one
			if err := runSSHAdd(); err != nil {
				return nil, fmt.Errorf("ssh-add failed: %w", err)
			}

			conn, err = net.Dial("unix", sock)
			if err == nil {
				agentClient = agent.NewClient(conn)
				return []ssh.AuthMethod{ssh.PublicKeysCallback(agentClient.Signers)}, nil
			}
		}
	}

	// Fall back to key file
	var key []byte
	var err error

	if keyPath != "" {
		key, err = os.ReadFile(keyPath)
		if err != nil {
			return nil, fmt.Errorf("read key %s: %w", keyPath, err)
		}
	} else {
		key, _, err = findSSHKey()
		if err != nil {
			return nil, err
		}
	}

	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("parse key (use ssh-add to load passphrase-protected keys): %w", err)
	}

	return []ssh.AuthMethod{ssh.PublicKeys(signer)}, nil
}

func runSSHAdd() error {
	fmt.Println("No keys in ssh-agent, running ssh-add...")
	cmd := exec.Command("ssh-add")
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func findSSHKey() ([]byte, string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("get home dir: %w", err)
	}

	keyNames := []string{"id_ed25519", "id_rsa", "id_ecdsa"}
	for _, name := range keyNames {
		path := filepath.Join(home, ".ssh", name)
		key, err := os.ReadFile(path)
		if err == nil {
			return key, path, nil
		}
	}

	return nil, "", fmt.Errorf("no SSH key found in ~/.ssh (tried: %v)", keyNames)
}

func parseUser(host string) string {
	if user, _, ok := strings.Cut(host, "@"); ok {
		return user
	}
	return "root"
}

func parseHost(host string) string {
	if _, h, ok := strings.Cut(host, "@"); ok {
		return h
	}
	return host
}
