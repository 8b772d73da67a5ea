// Package credentials derives precomputed login records for the initial
// controller user by running an external hashing script.
package credentials

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultScript is the hashing script looked up relative to the working
// directory.
const DefaultScript = "./generate-hash.sh"

// Deriver turns an email and password into an opaque credential record.
type Deriver interface {
	// Derive returns the credential line for email. ok is false when the
	// collaborator produced no such line.
	Derive(ctx context.Context, email, password string) (record string, ok bool, err error)
}

// ScriptDeriver runs an executable as `<script> <email> <password>` and
// picks the credential line out of its stdout.
type ScriptDeriver struct {
	script string
}

// NewScriptDeriver creates a ScriptDeriver for script, resolved to an absolute
// path. An empty script means DefaultScript.
func NewScriptDeriver(script string) (*ScriptDeriver, error) {
	if script == "" {
		script = DefaultScript
	}
	abs, err := filepath.Abs(script)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve hash script path: %w", err)
	}
	return &ScriptDeriver{script: abs}, nil
}

// Script returns the absolute path of the executable.
func (d *ScriptDeriver) Script() string {
	return d.script
}

// Derive implements Deriver.
func (d *ScriptDeriver) Derive(ctx context.Context, email, password string) (string, bool, error) {
	log.Debug().Str("script", d.script).Str("email", email).Msg("running hash script")

	cmd := exec.CommandContext(ctx, d.script, email, password)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg != "" {
			return "", false, fmt.Errorf("hash script %s failed: %s", d.script, errMsg)
		}
		return "", false, fmt.Errorf("hash script %s failed: %w", d.script, err)
	}

	record, ok := FindCredentialLine(stdout.String(), email)
	return record, ok, nil
}

// FindCredentialLine returns the first line of output that starts with email.
func FindCredentialLine(output, email string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, email) {
			return line, true
		}
	}
	return "", false
}
