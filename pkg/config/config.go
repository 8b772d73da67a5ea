// Package config holds the answers an operator gives for a controller
// cloud-init document and turns them into template replacements.
package config

import (
	"strings"

	"github.com/jaspreet-dot-casa/controller-cloud-init/pkg/generator"
)

// Placeholder names the template must use verbatim.
const (
	KeyControllerHostname      = "CONTROLLER_HOSTNAME"
	KeyIDPType                 = "IDP_TYPE"
	KeyIDPID                   = "IDP_ID"
	KeyIDPName                 = "IDP_NAME"
	KeyIDPIssuerURL            = "IDP_ISSUER_URL"
	KeyIDPClientID             = "IDP_CLIENT_ID"
	KeyIDPClientSecret         = "IDP_CLIENT_SECRET"
	KeySiteID                  = "SITE_ID"
	KeySyncPSK                 = "SYNC_PSK"
	KeyInitUserCredentials     = "INIT_USER_CREDENTIALS"
	KeyFirstControllerHostname = "FIRST_CONTROLLER_HOSTNAME"
	KeyPublicSSHKey            = "PUBLIC_SSH_KEY"
)

// DefaultIDPType is used when the operator leaves the IDP type empty.
const DefaultIDPType = "oidc"

// IdentityProvider holds the SSO identity provider settings.
type IdentityProvider struct {
	Type         string
	ID           string
	Name         string
	IssuerURL    string
	ClientID     string
	ClientSecret string
}

// Answers is everything collected from the operator for one document.
// Values of disabled features stay empty.
type Answers struct {
	ControllerHostname string
	SiteID             string
	SyncPSK            string

	Features generator.Features

	PublicSSHKey string
	IDP          IdentityProvider

	InitUserEmail       string
	InitUserCredentials string

	FirstControllerHostname string // already formatted as an entrypoint
}

// Replacements returns the placeholder mapping for the template.
func (a *Answers) Replacements() map[string]string {
	return map[string]string{
		KeyControllerHostname:      a.ControllerHostname,
		KeyIDPType:                 a.IDP.Type,
		KeyIDPID:                   a.IDP.ID,
		KeyIDPName:                 a.IDP.Name,
		KeyIDPIssuerURL:            a.IDP.IssuerURL,
		KeyIDPClientID:             a.IDP.ClientID,
		KeyIDPClientSecret:         a.IDP.ClientSecret,
		KeySiteID:                  a.SiteID,
		KeySyncPSK:                 a.SyncPSK,
		KeyInitUserCredentials:     a.InitUserCredentials,
		KeyFirstControllerHostname: a.FirstControllerHostname,
		KeyPublicSSHKey:            a.PublicSSHKey,
	}
}

// FormatEntrypoint normalizes a cluster join target into a quoted HTTPS URL.
func FormatEntrypoint(entrypoint string) string {
	entrypoint = strings.Trim(entrypoint, `"`)
	if !strings.HasPrefix(entrypoint, "https://") {
		entrypoint = "https://" + entrypoint
	}
	return `"` + entrypoint + `"`
}
