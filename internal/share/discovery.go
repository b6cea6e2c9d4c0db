package share

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

const serviceType = "_shapeboard._tcp"

// Advertise announces a running host on the local network. Callers should
// Shutdown the returned server on exit.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(
		host,
		serviceType,
		"", // domain, defaults to .local
		"", // hostname, defaults to the OS hostname
		port,
		nil, // IPs auto-detected
		[]string{"ShapeBoard"},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// Discover looks for a host on the local network and returns its share
// link. The lookup runs for mdns' default query window; if nothing
// answers in that time the search fails.
func Discover() (string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	found := make(chan string, 1)
	go func() {
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			select {
			case found <- fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port):
			default:
			}
		}
	}()

	if err := mdns.Lookup(serviceType, entries); err != nil {
		return "", fmt.Errorf("mDNS lookup failed: %w", err)
	}

	select {
	case addr := <-found:
		return Scheme + addr, nil
	case <-time.After(100 * time.Millisecond):
		return "", errors.New("no ShapeBoard host found on the local network")
	}
}
