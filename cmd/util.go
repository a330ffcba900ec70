package cmd

import (
	"errors"
	"fmt"
	"net"

	"github.com/vishvananda/netlink"
)

func getVal(i interface{}, err error) interface{} {
	if err != nil {
		panic(err)
	}

	return i
}

// resolveSourceIP parses the --source flag. The literal "auto" resolves
// the primary IPv4 address of the default-route interface via netlink;
// anything else must be a valid IPv4 address.
func resolveSourceIP(s string) (net.IP, error) {

	if s != "auto" {
		ip := net.ParseIP(s)
		if ip == nil || ip.To4() == nil {
			return nil, fmt.Errorf("source %q is not a valid IPv4 address", s)
		}
		return ip, nil
	}

	routes, err := netlink.RouteList(nil, netlink.FAMILY_V4)
	if err != nil {
		return nil, err
	}

	for _, r := range routes {
		if r.Dst != nil { // Only the default route.
			continue
		}

		link, err := netlink.LinkByIndex(r.LinkIndex)
		if err != nil {
			return nil, err
		}

		addrs, err := netlink.AddrList(link, netlink.FAMILY_V4)
		if err != nil {
			return nil, err
		}

		if len(addrs) > 0 {
			return addrs[0].IP, nil
		}
	}

	return nil, errors.New("failed to find a default-route interface with an IPv4 address")
}

func parseTarget(s string) (net.IP, error) {

	ip := net.ParseIP(s)
	if ip == nil || ip.To4() == nil {
		return nil, fmt.Errorf("target %q is not a valid IPv4 address", s)
	}

	return ip, nil
}
