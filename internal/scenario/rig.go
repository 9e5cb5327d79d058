package scenario

import (
	"io"

	"home_patterns/internal/home"
	"home_patterns/internal/logger"
	"home_patterns/internal/remote"
	"home_patterns/internal/repository"
	"home_patterns/internal/service"
)

// RemoteRig is a remote service wired to its own receivers.
type RemoteRig struct {
	Devices *home.Devices
	Service service.Remote
}

// RigOptions configures NewRemoteRig.
type RigOptions struct {
	InitialC   float64
	MaxHistory int
	Log        *logger.Logger
}

// NewRemoteRig builds devices and a journaling remote that print to console
// and record into repos.
func NewRemoteRig(console io.Writer, repos *repository.Repository, opts RigOptions) RemoteRig {
	devices := home.NewDevices(console, opts.InitialC)
	ctl := remote.New(
		remote.WithConsole(console),
		remote.WithLogger(opts.Log),
		remote.WithMaxHistory(opts.MaxHistory),
	)
	svc := service.NewService(repos, ctl, devices, opts.Log)
	return RemoteRig{Devices: devices, Service: svc.Remote}
}
