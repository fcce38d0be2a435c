package config

import (
	"github.com/opencontainers/runtime-spec/specs-go"
)

// Type represents the type of a mount.
type Type string

// Type constants
const (
	// TypeBind is the type for mounting host dir
	TypeBind Type = "bind"
	// TypeTmpfs is the type for mounting tmpfs
	TypeTmpfs Type = "tmpfs"
	// TypeProc mounts procfs for the new pid namespace
	TypeProc Type = "proc"
	// TypeDevpts mounts a private devpts instance
	TypeDevpts Type = "devpts"
	// TypeMqueue mounts a POSIX message queue filesystem
	TypeMqueue Type = "mqueue"
)

// Mount options shared by the generators.
const (
	OptRbind  = "rbind"
	OptRO     = "ro"
	OptNodev  = "nodev"
	OptNosuid = "nosuid"
	OptNoexec = "noexec"
)

// Bind describes a recursive read-write bind of source onto destination.
func Bind(source, destination string) specs.Mount {
	return specs.Mount{
		Destination: destination,
		Type:        string(TypeBind),
		Source:      source,
		Options:     []string{OptRbind},
	}
}

// BindRO describes a recursive read-only bind of source onto destination.
func BindRO(source, destination string) specs.Mount {
	return specs.Mount{
		Destination: destination,
		Type:        string(TypeBind),
		Source:      source,
		Options:     []string{OptRbind, OptRO},
	}
}

// Tmpfs describes a private tmpfs on destination.
func Tmpfs(destination string, options ...string) specs.Mount {
	return specs.Mount{
		Destination: destination,
		Type:        string(TypeTmpfs),
		Source:      string(TypeTmpfs),
		Options:     append([]string{OptNodev, OptNosuid}, options...),
	}
}

// AddMounts appends mounts after every entry created by earlier stages.
// Mount order is significant, entries are never reordered or removed.
func AddMounts(doc *specs.Spec, mounts ...specs.Mount) {
	doc.Mounts = append(doc.Mounts, mounts...)
}
