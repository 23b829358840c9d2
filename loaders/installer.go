package loaders

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"github.com/nowuX/ams/meta"
	"github.com/nowuX/ams/structs"
)

// State tracks where an installation run is in its lifecycle. Done and
// Failed are terminal; a failed run is never retried internally.
type State int

const (
	StateIdle State = iota
	StateIndexResolved
	StateVersionSelected
	StateAcquiring
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateIndexResolved:
		return "index-resolved"
	case StateVersionSelected:
		return "version-selected"
	case StateAcquiring:
		return "acquiring"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options carries the orchestrator-level knobs the strategies share.
type Options struct {
	// Timeout bounds every index and metadata request.
	Timeout time.Duration
	// ForgeLatest picks the latest promotion channel over recommended.
	ForgeLatest bool
	// FabricLoader optionally pins the Fabric loader version.
	FabricLoader string
}

// DefaultTimeout bounds index calls when the caller does not say otherwise.
const DefaultTimeout = 30 * time.Second

// Orchestrator sequences index -> select -> acquire for a chosen loader kind
// and reports a terminal result.
type Orchestrator struct {
	InstallDir string
	Opts       Options

	client *meta.Client
	state  State
}

func NewOrchestrator(installDir string, opts Options) *Orchestrator {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Orchestrator{
		InstallDir: installDir,
		Opts:       opts,
		client:     meta.NewClient(opts.Timeout),
		state:      StateIdle,
	}
}

// State reports the orchestrator's current lifecycle state.
func (o *Orchestrator) State() State { return o.state }

// loaderFor builds the strategy for kind. An unrecognized kind is a
// programming error, not user input, so it panics.
func (o *Orchestrator) loaderFor(kind Kind) Loader {
	switch kind {
	case KindVanilla:
		return &Vanilla{InstallDir: o.InstallDir, Client: o.client}
	case KindFabric:
		return &Fabric{InstallDir: o.InstallDir, LoaderVersion: o.Opts.FabricLoader}
	case KindForge:
		return &Forge{InstallDir: o.InstallDir, Client: o.client, Latest: o.Opts.ForgeLatest}
	case KindQuilt:
		return &Quilt{InstallDir: o.InstallDir, Client: o.client}
	case KindCarpet112:
		return &Carpet112{InstallDir: o.InstallDir}
	case KindPaper:
		return &Paper{InstallDir: o.InstallDir, Client: o.client}
	default:
		panic(fmt.Sprintf("loaders: no strategy for kind %d", int(kind)))
	}
}

// Install runs a full acquisition for kind. The request may be empty to mean
// the latest available version. All failures are terminal; the caller
// decides whether to re-run.
func (o *Orchestrator) Install(kind Kind, request string) (structs.Descriptor, error) {
	o.state = StateIdle
	loader := o.loaderFor(kind)

	if err := loader.Validate(request); err != nil {
		return o.fail(err)
	}

	if err := loader.FetchIndex(); err != nil {
		return o.fail(err)
	}
	o.state = StateIndexResolved

	version, err := loader.SelectVersion(request)
	if err != nil {
		return o.fail(err)
	}
	o.state = StateVersionSelected
	if version == "" {
		pterm.Info.Printfln("Installing %s, version: latest", kind)
	} else {
		pterm.Info.Printfln("Installing %s, version: %s", kind, version)
	}

	o.state = StateAcquiring
	descriptor, err := loader.Acquire(version)
	if err != nil {
		return o.fail(err)
	}

	o.state = StateDone
	return descriptor, nil
}

func (o *Orchestrator) fail(err error) (structs.Descriptor, error) {
	o.state = StateFailed
	return structs.Descriptor{}, err
}
