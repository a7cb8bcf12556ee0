package main

import (
	"bufio"
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"strings"
)

type row struct {
	text          string
	id            uint64
	originalIndex int // line number in the source, 1-based
}

func newRow(text string, index int) row {
	r := row{text: text, originalIndex: index}
	r.id = r.ComputeID()
	return r
}

func (r row) ComputeID() uint64 {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(r.text))))
	return h.Sum64()
}

func (r row) String() string { return r.text }

// readRows reads one row per non-empty line.
func readRows(rd io.Reader) ([]row, error) {
	var rows []row
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, newRow(line, n))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, nil
}

func loadRowsFile(path string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()
	rows, err := readRows(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%q has no rows", path)
	}
	return rows, nil
}

func sampleRows() []row {
	lines := []string{
		"2025-11-02 09:14:03 host-a sshd accepted publickey for deploy",
		"2025-11-02 09:14:09 host-a systemd started nightly backup",
		"2025-11-02 09:15:41 host-b kernel eth0 link up 1000Mbps",
		"2025-11-02 09:16:02 host-c nginx 502 upstream timed out",
		"2025-11-02 09:16:30 host-b dhcpd lease renewed 10.0.4.17",
		"2025-11-02 09:17:12 host-a cron job rotate-logs finished",
		"2025-11-02 09:18:55 host-c nginx reload requested",
		"2025-11-02 09:19:20 host-d postgres checkpoint complete",
		"2025-11-02 09:20:01 host-d postgres autovacuum on events",
		"2025-11-02 09:21:44 host-b sshd failed password for root",
		"2025-11-02 09:22:10 host-a docker pulled image api:1.42",
		"2025-11-02 09:23:37 host-c nginx upstream recovered",
	}
	rows := make([]row, len(lines))
	for i, l := range lines {
		rows[i] = newRow(l, i+1)
	}
	return rows
}
