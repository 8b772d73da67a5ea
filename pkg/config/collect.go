package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/jaspreet-dot-casa/controller-cloud-init/pkg/credentials"
	"github.com/jaspreet-dot-casa/controller-cloud-init/pkg/tui"
)

// ErrNoCredential is returned when the hash script printed no line for the
// initial user's email.
var ErrNoCredential = errors.New("hash script produced no credential line")

// Collect asks the operator every question for a controller document, in
// order, and returns the answers.
func Collect(ctx context.Context, p tui.Prompter, deriver credentials.Deriver) (*Answers, error) {
	a := &Answers{}
	var err error

	if a.ControllerHostname, err = p.Input("Controller hostname: "); err != nil {
		return nil, err
	}
	if a.SiteID, err = p.Input("Site ID (leave blank to auto-generate): ", tui.AutoGenerate()); err != nil {
		return nil, err
	}
	if a.SyncPSK, err = p.Input("Sync PSK (leave blank to auto-generate): ", tui.AutoGenerate()); err != nil {
		return nil, err
	}

	if err := collectSSHKey(p, a); err != nil {
		return nil, err
	}
	if err := collectSSO(p, a); err != nil {
		return nil, err
	}
	if err := collectInitUser(ctx, p, deriver, a); err != nil {
		return nil, err
	}
	if err := collectJoin(p, a); err != nil {
		return nil, err
	}

	return a, nil
}

func collectSSHKey(p tui.Prompter, a *Answers) error {
	var err error
	if a.Features.SSHKey, err = p.Confirm("Do you want to include an SSH key?"); err != nil || !a.Features.SSHKey {
		return err
	}
	a.PublicSSHKey, err = p.Input("Public SSH key (e.g.: ssh-ed25519 AAAA bowtie): ")
	return err
}

func collectSSO(p tui.Prompter, a *Answers) error {
	var err error
	if a.Features.SSO, err = p.Confirm("Do you want to use SSO for user authentication?"); err != nil || !a.Features.SSO {
		return err
	}

	fields := []struct {
		label string
		dest  *string
		opts  []tui.InputOption
	}{
		{"IDP type (leave blank to use oidc): ", &a.IDP.Type, []tui.InputOption{tui.Optional(), tui.Default(DefaultIDPType)}},
		{"IDP ID (e.g.: gitlab): ", &a.IDP.ID, nil},
		{"IDP Name (e.g.: Gitlab): ", &a.IDP.Name, nil},
		{"IDP Issuer URL (e.g.: https://gitlab.com): ", &a.IDP.IssuerURL, nil},
		{"IDP Client ID (found in the Oauth application console): ", &a.IDP.ClientID, nil},
		{"IDP Client Secret (found in the Oauth application console): ", &a.IDP.ClientSecret, nil},
	}
	for _, f := range fields {
		if *f.dest, err = p.Input(f.label, f.opts...); err != nil {
			return err
		}
	}
	return nil
}

func collectInitUser(ctx context.Context, p tui.Prompter, deriver credentials.Deriver, a *Answers) error {
	var err error
	if a.Features.InitUsers, err = p.Confirm("Do you want to generate an initial admin user?"); err != nil || !a.Features.InitUsers {
		return err
	}

	if a.InitUserEmail, err = p.Input("Initial user email: "); err != nil {
		return err
	}
	password, err := p.Sensitive("Initial user password: ")
	if err != nil {
		return err
	}

	record, ok, err := deriver.Derive(ctx, a.InitUserEmail, password)
	if err != nil {
		return fmt.Errorf("failed to derive initial user credentials: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoCredential, a.InitUserEmail)
	}
	a.InitUserCredentials = record
	return nil
}

func collectJoin(p tui.Prompter, a *Answers) error {
	var err error
	if a.Features.ShouldJoin, err = p.Confirm("Do you want to join this controller to an existing cluster?"); err != nil || !a.Features.ShouldJoin {
		return err
	}
	hostname, err := p.Input("Existing controller hostname: ")
	if err != nil {
		return err
	}
	a.FirstControllerHostname = FormatEntrypoint(hostname)
	return nil
}
