package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// APIKeyName is the secret and environment variable name of the credential.
const APIKeyName = "OPENAI_API_KEY"

// Credential sources, in priority order.
const (
	SourceSecrets = "secrets"
	SourceEnv     = "env"
	SourcePrompt  = "prompt"
)

// PromptFunc asks the user for the credential interactively.
type PromptFunc func() (string, error)

// LoadDotEnv loads the first .env file found; missing files are not an error.
func LoadDotEnv(paths ...string) (string, bool) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// ResolveCredential looks the API key up in the secrets file, then the
// environment, then prompt (when non-nil). It returns an empty key and
// no error when none of them has one; callers report MissingCredential.
func ResolveCredential(secretsFile string, prompt PromptFunc) (key, source string, err error) {
	if secretsFile != "" {
		key, err = readSecret(secretsFile, APIKeyName)
		if err != nil {
			return "", "", err
		}
		if key != "" {
			return key, SourceSecrets, nil
		}
	}
	if key = strings.TrimSpace(os.Getenv(APIKeyName)); key != "" {
		return key, SourceEnv, nil
	}
	if prompt != nil {
		key, err = prompt()
		if err != nil {
			return "", "", fmt.Errorf("read credential: %w", err)
		}
		if key = strings.TrimSpace(key); key != "" {
			return key, SourcePrompt, nil
		}
	}
	return "", "", nil
}

// readSecret reads name from a YAML (or JSON) map file.
func readSecret(path, name string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read secrets file: %w", err)
	}
	secrets := map[string]string{}
	if err := yaml.Unmarshal(data, &secrets); err != nil {
		return "", fmt.Errorf("parse secrets file %s: %w", path, err)
	}
	return strings.TrimSpace(secrets[name]), nil
}

// TerminalPrompt asks for the key with echo disabled. It returns nil when
// in is not a terminal, so non-interactive runs never block.
func TerminalPrompt(in *os.File, out io.Writer) PromptFunc {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	return func() (string, error) {
		fmt.Fprint(out, "OpenAI API Key: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// ReaderPrompt reads the key from the first line of r.
func ReaderPrompt(r io.Reader) PromptFunc {
	return func() (string, error) {
		line, err := bufio.NewReader(r).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return line, nil
	}
}
