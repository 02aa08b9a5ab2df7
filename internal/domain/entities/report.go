package entities

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/ssh"
)

const (
	reportHeading   = "Thanks for pushing some code!"
	reportRuleWidth = 63
)

// Report is the fixed-format summary printed at the start of every run.
type Report struct {
	invocation Invocation
	settings   ReportSettings
}

// NewReport creates the report for an invocation.
func NewReport(invocation Invocation, settings ReportSettings) Report {
	return Report{invocation: invocation, settings: settings}
}

// String renders the report, including its leading and trailing blank lines.
func (it Report) String() string {
	inv := it.invocation

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(reportHeading + "\n")
	b.WriteString(strings.Repeat("=", reportRuleWidth) + "\n")
	fmt.Fprintf(&b, "You are user: %s\n", inv.User)
	fmt.Fprintf(&b, "You pushed to repo: %s\n", inv.Repo)
	fmt.Fprintf(&b, "You came from: %s\n", inv.Remote)
	fmt.Fprintf(&b, "The repo name is: %s\n", inv.Name)
	fmt.Fprintf(&b, "Your public key is: %s...\n", inv.KeyPrefix(it.settings.KeyPrefixLength))
	if it.settings.Fingerprint {
		if fingerprint, ok := keyFingerprint(inv.Key); ok {
			fmt.Fprintf(&b, "Your key fingerprint is: %s\n", fingerprint)
		}
	}
	if inv.HasTags() {
		fmt.Fprintf(&b, "Tags pushed: %s\n", strings.Join(inv.tags, ", "))
	}
	b.WriteString("\n")
	return b.String()
}

// WriteTo writes the rendered report to w.
func (it Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, it.String())
	return int64(n), err
}

// keyFingerprint parses an authorized_keys formatted key and returns its
// SHA256 fingerprint.
func keyFingerprint(key string) (string, bool) {
	pub, _, _, _, err := ssh.ParseAuthorizedKey([]byte(key))
	if err != nil {
		return "", false
	}
	return ssh.FingerprintSHA256(pub), true
}
