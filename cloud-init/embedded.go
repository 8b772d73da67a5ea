// Package cloudinit provides the embedded sample controller template.
package cloudinit

import _ "embed"

// Template is a sample controller template with {{ NAME }} placeholders and
// the four optional blocks. It documents the template contract and backs the
// end-to-end tests.
//
//go:embed controller.template.yaml
var Template string
