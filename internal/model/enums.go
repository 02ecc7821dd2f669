package model

import (
	"fmt"
	"strings"
)

// ProjectCategory values mirror the category column on projects.
type ProjectCategory string

const (
	CategoryWeb       ProjectCategory = "Web"
	CategoryMobile    ProjectCategory = "Mobile"
	CategoryDesign    ProjectCategory = "Design"
	CategoryECommerce ProjectCategory = "E-Commerce"
)

// ParseProjectCategory converts a raw string to a ProjectCategory,
// returning an error for unknown values.
func ParseProjectCategory(s string) (ProjectCategory, error) {
	c := ProjectCategory(s)
	switch c {
	case CategoryWeb, CategoryMobile, CategoryDesign, CategoryECommerce:
		return c, nil
	}
	return "", fmt.Errorf("unknown project category %q", s)
}

// JobType values mirror the type column on jobs.
type JobType string

const (
	JobFullTime   JobType = "Full-time"
	JobPartTime   JobType = "Part-time"
	JobContract   JobType = "Contract"
	JobFreelance  JobType = "Freelance"
	JobInternship JobType = "Internship"
)

// ParseJobType converts a raw string to a JobType, returning an error for
// unknown values.
func ParseJobType(s string) (JobType, error) {
	t := JobType(s)
	switch t {
	case JobFullTime, JobPartTime, JobContract, JobFreelance, JobInternship:
		return t, nil
	}
	return "", fmt.Errorf("unknown job type %q", s)
}

// SplitLines turns a textarea-style block into an ordered requirements list:
// one entry per line, trimmed, blank lines dropped.
func SplitLines(s string) []string {
	out := make([]string, 0)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
