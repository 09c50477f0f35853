// Package discovery publishes the docs dev server over mDNS/DNS-SD so the
// site can be opened from other machines on the local network.
package discovery

import (
	"fmt"

	"github.com/grandcat/zeroconf"
	"github.com/rafters-ui/rafters/internal/logging"
	"go.uber.org/zap"
)

const (
	// ServiceType is the mDNS service type the docs server advertises as
	ServiceType = "_http._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// instancePrefix namespaces the advertised instance name so rafters
	// servers are recognizable among other _http._tcp services
	instancePrefix = "rafters-docs"
)

// Announcer keeps an mDNS registration alive until Shutdown.
type Announcer struct {
	server *zeroconf.Server
}

// Announce registers the docs server on the local network. The instance
// name carries the site title so browsers with mDNS discovery show
// something meaningful.
func Announce(title string, port int) (*Announcer, error) {
	instance := instancePrefix
	if title != "" {
		instance = fmt.Sprintf("%s (%s)", instancePrefix, title)
	}

	server, err := zeroconf.Register(
		instance,
		ServiceType,
		ServiceDomain,
		port,
		[]string{"app=rafters", "title=" + title},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	logging.Info("Announced docs server over mDNS",
		zap.String("instance", instance),
		zap.Int("port", port),
	)

	return &Announcer{server: server}, nil
}

// Shutdown withdraws the mDNS registration.
func (a *Announcer) Shutdown() {
	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
	}
}
