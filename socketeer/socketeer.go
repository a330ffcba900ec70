// Package socketeer wraps the raw IPv4 sockets the attack runners send
// through. Linux only, like the rest of the tool.
package socketeer

import (
	"errors"
	"fmt"
	"net"

	"golang.org/x/sys/unix"

	"github.com/nsrg-lab/attackgen/config"
)

// ErrPrivilege reports that raw socket creation was denied. It is fatal
// to the whole campaign: the caller aborts immediately and records no
// statistics for the run.
var ErrPrivilege = errors.New("raw socket creation requires root privileges")

// PayloadSender is the send path handed to an attack runner. Open must
// be called once before Send, and Close must run on every exit path
// before the next campaign begins.
type PayloadSender interface {
	Open() error
	Send(payload []byte) error
	Close() error
}

type RawSocketeer struct {
	socketFd int
	dest     unix.SockaddrInet4

	options *config.SocketeerOptions

	addLog   func(string) bool
	addError func(error) bool
}

func NewRawSocketeer(o *config.SocketeerOptions, logFunc func(string) bool, errFunc func(error) bool) *RawSocketeer {

	s := RawSocketeer{
		socketFd: -1,
		options:  o,
		addLog:   logFunc,
		addError: errFunc,
	}

	return &s
}

// Open creates the raw socket. A permission failure is wrapped in
// ErrPrivilege so callers can distinguish it from transient trouble.
func (s *RawSocketeer) Open() error {

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_RAW, s.options.Protocol)

	if err != nil {
		if errors.Is(err, unix.EPERM) || errors.Is(err, unix.EACCES) {
			return fmt.Errorf("%w: %v", ErrPrivilege, err)
		}
		return err
	}

	if s.options.IncludeIPHeader {
		if err = unix.SetsockoptInt(fd, unix.IPPROTO_IP, unix.IP_HDRINCL, 1); err != nil {
			_ = unix.Close(fd)
			return err
		}
	}

	target := s.options.TargetIP.To4()
	if target == nil {
		_ = unix.Close(fd)
		return fmt.Errorf("target %v is not an IPv4 address", s.options.TargetIP)
	}

	s.socketFd = fd
	copy(s.dest.Addr[:], target)

	s.addLog(fmt.Sprintf("opened raw socket (protocol %d) for %s", s.options.Protocol, s.options.TargetIP))

	return nil
}

// Send writes one packet toward the target. Errors are returned to the
// runner, which counts them; nothing here retries.
func (s *RawSocketeer) Send(payload []byte) error {
	return unix.Sendto(s.socketFd, payload, 0, &s.dest)
}

func (s *RawSocketeer) Close() error {

	if s.socketFd < 0 {
		return nil
	}

	err := unix.Close(s.socketFd)
	s.socketFd = -1

	return err
}

// NewTCPSender returns a sender for hand-built IP+TCP packets
// (IP_HDRINCL set, the kernel leaves the IP header alone).
func NewTCPSender(targetIP net.IP, logFunc func(string) bool, errFunc func(error) bool) *RawSocketeer {
	return NewRawSocketeer(&config.SocketeerOptions{
		Protocol:        unix.IPPROTO_TCP,
		IncludeIPHeader: true,
		TargetIP:        targetIP,
	}, logFunc, errFunc)
}

// NewICMPSender returns a sender for ICMP packets; the kernel builds
// the IP header.
func NewICMPSender(targetIP net.IP, logFunc func(string) bool, errFunc func(error) bool) *RawSocketeer {
	return NewRawSocketeer(&config.SocketeerOptions{
		Protocol: unix.IPPROTO_ICMP,
		TargetIP: targetIP,
	}, logFunc, errFunc)
}
