package main

import "testing"

func TestParseCommand(t *testing.T) {
	cases := []struct {
		line     string
		expected command
	}{
		{"d 10 1", command{pin: 10, value: 1}},
		{"d 7 0", command{pin: 7, value: 0}},
		{"a 9 255", command{analog: true, pin: 9, value: 255}},
		{"a 9 0", command{analog: true, pin: 9, value: 0}},
	}
	for _, c := range cases {
		got, err := parseCommand(c.line)
		if err != nil {
			t.Errorf("parseCommand(%q) failed: %v", c.line, err)
			continue
		}
		if got != c.expected {
			t.Errorf("parseCommand(%q) = %+v, expected %+v", c.line, got, c.expected)
		}
	}
}

func TestParseCommandRejects(t *testing.T) {
	for _, line := range []string{
		"",
		"d 10",
		"x 10 1",
		"d ten 1",
		"d 10 one",
		"d 10 2",
		"a 9 256",
		"a 9 300",
		"a 9 -1",
	} {
		if _, err := parseCommand(line); err == nil {
			t.Errorf("parseCommand(%q) succeeded, expected error", line)
		}
	}
}
