// Package generator turns the base container spec assembled by the package
// manager into the final launch configuration.
//
// The work is split into small stages that run in a fixed order. Each stage
// receives its own copy of the document and either returns it augmented or
// fails, in which case the whole launch is aborted and the caller still
// holds the untouched input.
package generator

import (
	"github.com/DeJeune/llbox/runtime/config"
	"github.com/DeJeune/llbox/runtime/pkg/host"
	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Func augments doc in place. doc is always a private copy.
type Func func(doc *specs.Spec, snap *host.Snapshot) error

// Stage is one named entry of the pipeline.
type Stage struct {
	Name     string
	Generate Func
}

// Apply runs the stage against a copy of doc and returns the copy. On error
// doc is left as it was and nil is returned.
func (s Stage) Apply(doc *specs.Spec, snap *host.Snapshot) (*specs.Spec, error) {
	if err := config.CheckVersion(doc); err != nil {
		return nil, errors.WithMessagef(err, "generator %s", s.Name)
	}
	out, err := config.Clone(doc)
	if err != nil {
		return nil, errors.WithMessagef(err, "generator %s", s.Name)
	}
	if err := s.Generate(out, snap); err != nil {
		return nil, errors.WithMessagef(err, "generator %s", s.Name)
	}
	return out, nil
}

// Pipeline executes stages strictly in the declared order.
type Pipeline struct {
	stages []Stage
}

// New builds a pipeline from stages, in the given order.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Default returns the pipeline used for every application launch.
//
// Identity mapping and base initialization come first, host bridges next and
// the legacy compatibility mounts last so nothing can shadow them.
func Default() *Pipeline {
	return New(
		Stage{Name: "00-id-mapping", Generate: IdentityMapping},
		Stage{Name: "05-initialize", Generate: Initialize},
		Stage{Name: "10-basics", Generate: Basics},
		Stage{Name: "20-devices", Generate: Devices},
		Stage{Name: "25-host-env", Generate: HostEnvironment},
		Stage{Name: "25-host-statics", Generate: HostStatics},
		Stage{Name: "30-user-home", Generate: UserHome},
		Stage{Name: "40-host-ipc", Generate: HostIPC},
		Stage{Name: "45-xdg-runtime-dir", Generate: XDGRuntimeDir},
		Stage{Name: "90-legacy", Generate: Legacy},
	)
}

// Names lists the stages in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.stages))
	for _, s := range p.stages {
		names = append(names, s.Name)
	}
	return names
}

// Stage looks up a stage by name.
func (p *Pipeline) Stage(name string) (Stage, bool) {
	for _, s := range p.stages {
		if s.Name == name {
			return s, true
		}
	}
	return Stage{}, false
}

// Run feeds doc through every stage. The first failing stage aborts the run;
// there is no partial result. doc itself is never modified.
func (p *Pipeline) Run(doc *specs.Spec, snap *host.Snapshot) (*specs.Spec, error) {
	cur := doc
	for _, s := range p.stages {
		log := logrus.WithField("generator", s.Name)
		log.Debug("running generator")
		next, err := s.Apply(cur, snap)
		if err != nil {
			log.WithError(err).Error("generator failed, aborting launch")
			return nil, err
		}
		log.WithField("mounts", len(next.Mounts)-len(cur.Mounts)).Debug("generator done")
		cur = next
	}
	return cur, nil
}
