package utils

// 沙箱内外约定的目录
const (
	// LinglongDataDir is the per-user directory holding app private state,
	// relative to $HOME.
	LinglongDataDir = ".linglong"
	// RuntimeDirFormat is the only accepted XDG_RUNTIME_DIR layout.
	RuntimeDirFormat = "/run/user/%d"
	// AppFilesFormat is where an application's files appear in the sandbox.
	AppFilesFormat = "/opt/apps/%s/files"
	// RuntimeMountPoint is where the runtime layer appears in the sandbox.
	RuntimeMountPoint = "/runtime"
	// HostRoot is the prefix under which host-only resources are exposed.
	HostRoot = "/run/host"
	// DefaultHostname is the UTS name given to every sandbox.
	DefaultHostname = "linglong"
	// DefaultPath is the PATH given to processes that arrive without one.
	DefaultPath = "/runtime/bin:/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin"
)
