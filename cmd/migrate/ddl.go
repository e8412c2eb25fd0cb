package main

import (
	"fmt"
	"regexp"
	"strings"
)

var createTable = regexp.MustCompile(`(?i)^\s*CREATE\s+TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?` + "`?" + `(\w+)`)

// databaseRef is a parsed projects/<p>/instances/<i>/databases/<d> path.
type databaseRef struct {
	Project  string
	Instance string
	Database string
}

func parseDatabasePath(path string) (databaseRef, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "instances" || parts[4] != "databases" {
		return databaseRef{}, fmt.Errorf("invalid database path %q", path)
	}
	for _, p := range []string{parts[1], parts[3], parts[5]} {
		if p == "" {
			return databaseRef{}, fmt.Errorf("invalid database path %q", path)
		}
	}
	return databaseRef{Project: parts[1], Instance: parts[3], Database: parts[5]}, nil
}

func (d databaseRef) ProjectPath() string  { return "projects/" + d.Project }
func (d databaseRef) InstancePath() string { return d.ProjectPath() + "/instances/" + d.Instance }
func (d databaseRef) Path() string         { return d.InstancePath() + "/databases/" + d.Database }

func splitDDLStatements(content string) []string {
	// Remove comments and empty lines
	var cleaned []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	var result []string
	for _, stmt := range strings.Split(strings.Join(cleaned, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			result = append(result, stmt)
		}
	}
	return result
}

// existingTables returns the lower-cased names of the tables statements create.
func existingTables(statements []string) map[string]bool {
	out := make(map[string]bool)
	for _, stmt := range statements {
		if m := createTable.FindStringSubmatch(stmt); m != nil {
			out[strings.ToLower(m[1])] = true
		}
	}
	return out
}

// pendingStatements drops CREATE TABLE statements for tables in existing.
func pendingStatements(statements []string, existing map[string]bool) []string {
	var out []string
	for _, stmt := range statements {
		if m := createTable.FindStringSubmatch(stmt); m != nil && existing[strings.ToLower(m[1])] {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
