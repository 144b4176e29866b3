package git

import (
	"fmt"
	"strings"
)

// Result is the outcome of a single git query. A zero Err means Value is what
// git printed, which may legitimately be empty.
type Result struct {
	Value string
	Err   error
}

func (r Result) Available() bool {
	return r.Err == nil
}

// Metadata is serialized as the git_info section of the report. Every field is
// always present; unavailable queries serialize as "".
type Metadata struct {
	RemoteURL     string `json:"remote_url"`
	CurrentBranch string `json:"current_branch"`
	LatestTag     string `json:"latest_tag"`
	Contributors  string `json:"contributors"`

	results map[string]Result
}

// Unavailable lists the fields whose query failed, in report order, each with
// the reason git gave.
func (m Metadata) Unavailable() []string {
	var out []string
	for _, field := range fields {
		r, ok := m.results[field]
		if !ok || r.Available() {
			continue
		}
		out = append(out, fmt.Sprintf("%s (%v)", field, r.Err))
	}
	return out
}

// Result returns the raw query result backing field, e.g. "latest_tag".
func (m Metadata) Result(field string) (Result, bool) {
	r, ok := m.results[field]
	return r, ok
}

func (m *Metadata) set(field string, r Result) {
	if m.results == nil {
		m.results = make(map[string]Result, len(fields))
	}
	m.results[field] = r

	switch field {
	case FieldRemoteURL:
		m.RemoteURL = r.Value
	case FieldCurrentBranch:
		m.CurrentBranch = r.Value
	case FieldLatestTag:
		m.LatestTag = r.Value
	case FieldContributors:
		m.Contributors = r.Value
	}
}

// trimOutput drops the single line terminator git appends.
func trimOutput(out []byte) string {
	s := strings.TrimSuffix(string(out), "\n")
	return strings.TrimSuffix(s, "\r")
}
