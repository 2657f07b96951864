package main

import "testing"

func TestIsConfig(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"foo.config", true},
		{"a.config", true},
		{"config", false},
		{".config", false},
		{"foo.conf", false},
	}
	for _, test := range tests {
		if got := isConfig(test.s); got != test.want {
			t.Errorf("isConfig(%q) = %v, want %v", test.s, got, test.want)
		}
	}
}

func TestConfigNum(t *testing.T) {
	tests := []struct {
		args []string
		want int
	}{
		{[]string{"blocksort", "check"}, 0},
		{[]string{"blocksort", "check", "a.config"}, 1},
		{[]string{"blocksort", "check", "a.config", "b.config"}, 2},
		{[]string{"blocksort", "check", "--Flag", "1", "a.config"}, 1},
	}
	for _, test := range tests {
		if got := configNum(test.args); got != test.want {
			t.Errorf("configNum(%v) = %d, want %d", test.args, got, test.want)
		}
	}
}

func TestGetFlags(t *testing.T) {
	args := []string{"blocksort", "gen", "--Length", "10", "a.config"}
	flags := getFlags(args)
	want := []string{"--Length", "10"}
	if len(flags) != len(want) {
		t.Fatalf("got %v, want %v", flags, want)
	}
	for i := range want {
		if flags[i] != want[i] {
			t.Errorf("flags[%d] = %q, want %q", i, flags[i], want[i])
		}
	}
}

func TestGetConfigNoGlobalEnv(t *testing.T) {
	args := []string{"blocksort", "check", "global.config", "check.config"}
	name, ok := getConfig(args)
	if !ok || name != "check.config" {
		t.Errorf("getConfig(%v) = (%q, %v), want (\"check.config\", true)", args, name, ok)
	}
}

func TestGetConfigNoneGiven(t *testing.T) {
	args := []string{"blocksort", "check"}
	_, ok := getConfig(args)
	if ok {
		t.Errorf("getConfig(%v) reported a config file when none was given", args)
	}
}
