package portfolio

import (
	"strings"
	"testing"
)

func TestSkillIconURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"known skill", "React", "devicon/icons/react/react-original.svg"},
		{"case insensitive", "REDIS", "devicon/icons/redis/redis-original.svg"},
		{"trims whitespace", "  go  ", "devicon/icons/go/go-original.svg"},
		{"unknown gets placeholder", "Figma", "ui-avatars.com/api/?size=64&name=Figma"},
		{"placeholder escapes name", "F# Async", "ui-avatars.com/api/?size=64&name=F%23+Async"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SkillIconURL(tt.in)
			if !strings.Contains(got, tt.want) {
				t.Errorf("SkillIconURL(%q) = %q, want it to contain %q", tt.in, got, tt.want)
			}
		})
	}
}
