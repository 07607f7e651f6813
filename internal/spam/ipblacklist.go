package spam

import (
	"os"
	"path/filepath"
	"strings"
)

// IPBlacklist rejects submitters whose address appears in an
// operator-maintained directory: one empty file per banned IP.
type IPBlacklist struct {
	Dir string
}

func (IPBlacklist) Name() string { return "ip-blacklist" }

func (f IPBlacklist) IsSpam(c *Candidate) bool {
	if c == nil || f.Dir == "" || c.IP == "" {
		return false
	}
	// A forged address must not escape the blacklist directory.
	if strings.ContainsAny(c.IP, `/\`) {
		return false
	}
	_, err := os.Stat(filepath.Join(f.Dir, c.IP))
	return err == nil
}
