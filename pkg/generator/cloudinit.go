// Package generator turns a controller cloud-init template into the final
// cloud-config document.
package generator

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Names of the optional blocks a template may carry. They are matched
// literally, including the inner space of "ssh key".
const (
	BlockSSO        = "sso"
	BlockInitUsers  = "init-users"
	BlockShouldJoin = "should-join"
	BlockSSHKey     = "ssh key"
)

// CloudConfigHeader is the one comment line that survives comment removal.
const CloudConfigHeader = "#cloud-config"

// Features holds the feature decisions that gate optional blocks.
type Features struct {
	SSO        bool
	SSHKey     bool
	InitUsers  bool
	ShouldJoin bool
}

// disabledBlocks returns the blocks to strip, in removal order.
func (f Features) disabledBlocks() []string {
	var blocks []string
	if !f.SSO {
		blocks = append(blocks, BlockSSO)
	}
	if !f.InitUsers {
		blocks = append(blocks, BlockInitUsers)
	}
	if !f.ShouldJoin {
		blocks = append(blocks, BlockShouldJoin)
	}
	if !f.SSHKey {
		blocks = append(blocks, BlockSSHKey)
	}
	return blocks
}

// placeholderPattern matches {{ NAME }} tokens left in a document.
var placeholderPattern = regexp.MustCompile(`\{\{ ([A-Za-z0-9_]+) \}\}`)

// Transform runs the full pipeline over a template document.
//
// Blocks go first so placeholders inside removed blocks never need a value,
// and comments go last so the header is only judged after substitution.
func Transform(document string, features Features, replacements map[string]string) string {
	result := document

	for _, block := range features.disabledBlocks() {
		result = RemoveBlock(result, block)
		log.Debug().Str("block", block).Msg("removed optional block")
	}

	result = Substitute(result, replacements)

	if unresolved := UnresolvedPlaceholders(result); len(unresolved) > 0 {
		log.Debug().Strs("placeholders", unresolved).Msg("placeholders left unresolved")
	}

	result = RemoveEmptyLines(result)
	result = RemoveComments(result)

	return result
}

// RemoveBlock deletes the span between the start and end markers of the named
// block, markers included. A start marker without an end marker is left alone.
func RemoveBlock(document, name string) string {
	quoted := regexp.QuoteMeta(name)
	pattern := regexp.MustCompile(`(?s)# start ` + quoted + ` block #.*?# end ` + quoted + ` block #`)
	return pattern.ReplaceAllLiteralString(document, "")
}

// Substitute replaces every {{ KEY }} occurrence with its mapped value.
// Placeholders without a mapping entry are kept verbatim. The document is
// scanned once, so a value that itself looks like a placeholder is never
// expanded.
func Substitute(document string, replacements map[string]string) string {
	keys := make([]string, 0, len(replacements))
	for key := range replacements {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, key := range keys {
		pairs = append(pairs, "{{ "+key+" }}", replacements[key])
	}
	return strings.NewReplacer(pairs...).Replace(document)
}

// RemoveEmptyLines drops every line that is empty once trimmed.
func RemoveEmptyLines(document string) string {
	lines := strings.Split(document, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// RemoveComments drops comment lines, keeping the #cloud-config header
// wherever it appears.
func RemoveComments(document string) string {
	lines := strings.Split(document, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, CloudConfigHeader) || !strings.HasPrefix(trimmed, "#") {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// UnresolvedPlaceholders lists the distinct placeholder names still present
// in a document, sorted.
func UnresolvedPlaceholders(document string) []string {
	seen := make(map[string]struct{})
	for _, match := range placeholderPattern.FindAllStringSubmatch(document, -1) {
		seen[match[1]] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateTemplate checks that the template path exists and is a file.
func ValidateTemplate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("template not found: %s", path)
		}
		return fmt.Errorf("cannot access template: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("template path is a directory: %s", path)
	}
	return nil
}
