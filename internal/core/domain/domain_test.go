package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/subenv/internal/core/domain"
)

func TestParseStorePaths(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []domain.StorePath
	}{
		{
			name:   "empty output",
			output: "",
			want:   []domain.StorePath{},
		},
		{
			name:   "trailing newline",
			output: "/nix/store/aaa-hello\n",
			want:   []domain.StorePath{"/nix/store/aaa-hello"},
		},
		{
			name:   "blank lines and duplicates",
			output: "/nix/store/aaa-hello\n\n/nix/store/bbb-glibc\n/nix/store/aaa-hello\n",
			want:   []domain.StorePath{"/nix/store/aaa-hello", "/nix/store/bbb-glibc"},
		},
		{
			name:   "surrounding whitespace",
			output: "  /nix/store/aaa-hello \r\n",
			want:   []domain.StorePath{"/nix/store/aaa-hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseStorePaths(tt.output))
		})
	}
}

func TestUniquePaths_PreservesFirstSeenOrder(t *testing.T) {
	in := []domain.StorePath{"/b", "", "/a", "/b", "/c", "/a"}
	assert.Equal(t, []domain.StorePath{"/b", "/a", "/c"}, domain.UniquePaths(in))
}

func TestStorePath_BinDir(t *testing.T) {
	assert.Equal(t, "/nix/store/aaa-hello/bin", domain.StorePath("/nix/store/aaa-hello").BinDir())
}

func TestNewEnviron(t *testing.T) {
	env := domain.NewEnviron([]string{
		"HOME=/home/user",
		"EMPTY=",
		"EQUALS=a=b",
		"HOME=/ignored",
		"NOEQUALS",
		"=novalue",
	})

	home, ok := env.Lookup("HOME")
	assert.True(t, ok)
	assert.Equal(t, "/home/user", home)

	empty, ok := env.Lookup("EMPTY")
	assert.True(t, ok)
	assert.Empty(t, empty)

	equals, ok := env.Lookup("EQUALS")
	assert.True(t, ok)
	assert.Equal(t, "a=b", equals)

	_, ok = env.Lookup("NOEQUALS")
	assert.False(t, ok)

	assert.Equal(t, 3, env.Len())
}

func TestEnvironFromMap_Copies(t *testing.T) {
	src := map[string]string{"FOO": "bar"}
	env := domain.EnvironFromMap(src)
	src["FOO"] = "changed"

	v, ok := env.Lookup("FOO")
	assert.True(t, ok)
	assert.Equal(t, "bar", v)
}

func TestEnviron_ZeroValue(t *testing.T) {
	var env domain.Environ
	_, ok := env.Lookup("HOME")
	assert.False(t, ok)
	assert.Equal(t, 0, env.Len())
}

func TestDefaultConfigPath(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "xdg config home wins",
			env:  map[string]string{"XDG_CONFIG_HOME": "/xdg", "HOME": "/home/u"},
			want: "/xdg/subenv/config.yaml",
		},
		{
			name: "falls back to home",
			env:  map[string]string{"HOME": "/home/u"},
			want: "/home/u/.config/subenv/config.yaml",
		},
		{
			name: "empty xdg is ignored",
			env:  map[string]string{"XDG_CONFIG_HOME": "", "HOME": "/home/u"},
			want: "/home/u/.config/subenv/config.yaml",
		},
		{
			name: "nothing set",
			env:  map[string]string{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DefaultConfigPath(domain.EnvironFromMap(tt.env)))
		})
	}
}

func TestConfig_AttrPath(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, "pkgs.hello", cfg.AttrPath("hello"))
	assert.Equal(t, []string{"pkgs.a", "pkgs.b"}, cfg.AttrPaths([]string{"a", "b"}))

	cfg.AttrPrefix = ""
	assert.Equal(t, "hello", cfg.AttrPath("hello"))
}
