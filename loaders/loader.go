// Package loaders implements the per-loader acquisition strategies and the
// orchestrator that sequences index resolution, version selection and
// artifact download/installation.
package loaders

import (
	"fmt"
	"strings"

	"github.com/nowuX/ams/structs"
)

// Kind is the closed set of server loader families the installer knows how
// to provision. It is chosen once per run.
type Kind int

const (
	KindVanilla Kind = iota
	KindFabric
	KindForge
	KindQuilt
	KindCarpet112
	KindPaper
)

var kindNames = map[Kind]string{
	KindVanilla:   "vanilla",
	KindFabric:    "fabric",
	KindForge:     "forge",
	KindQuilt:     "quilt",
	KindCarpet112: "carpet112",
	KindPaper:     "paper",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return name
}

// Kinds lists every supported loader, in menu order.
func Kinds() []Kind {
	return []Kind{KindVanilla, KindFabric, KindForge, KindQuilt, KindCarpet112, KindPaper}
}

// ParseKind maps user input to a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for kind, name := range kindNames {
		if name == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown loader %q", s)
}

// Loader is the acquisition strategy for one loader family. The orchestrator
// drives the three phases in order; families without a remote index implement
// FetchIndex as a no-op.
type Loader interface {
	// Validate rejects a malformed version request before any network use.
	Validate(request string) error
	// FetchIndex loads the family's remote version index.
	FetchIndex() error
	// SelectVersion resolves request ("" means latest) against the fetched
	// index to a concrete version id. Families that delegate the choice to
	// their external installer may return request unchanged.
	SelectVersion(request string) (string, error)
	// Acquire downloads and, where needed, runs the family's installer,
	// leaving exactly one usable server artifact in the install dir.
	Acquire(version string) (structs.Descriptor, error)
}
